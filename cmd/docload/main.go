package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	httpserver "largebnb_seeder/internal/adapters/http_server"
	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/dataset"
	"largebnb_seeder/internal/projector/mongodoc"
	"largebnb_seeder/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	reg := observability.InitRegistry()

	ops := httpserver.New(cfg.OpsAddr, reg, log.Logger)
	ops.Start()
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = ops.Shutdown(shutCtx)
	}()

	ds, err := dataset.Load(cfg.ArtifactDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.ArtifactDir).Msg("loading artifacts failed")
	}

	store, err := mongodoc.NewStore(ctx, cfg.MongoURI, cfg.MongoDB, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo store init failed")
	}
	defer func() { _ = store.Close(ctx) }()

	if err := store.LoadAll(ctx, ds); err != nil {
		log.Fatal().Err(err).Msg("document load failed")
	}
	log.Info().Str("db", cfg.MongoDB).Msg("document load completed")
}
