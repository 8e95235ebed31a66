package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	httpserver "largebnb_seeder/internal/adapters/http_server"
	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/dataset"
	"largebnb_seeder/internal/projector/neograph"
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

	store, err := neograph.NewStore(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPass, neograph.Config{
		NodeBatchSize: cfg.NodeBatchSize,
		RelBatchSize:  cfg.RelBatchSize,
		BoostFraction: cfg.BoostFraction,
		Seed:          cfg.Seed,
	}, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("neo4j store init failed")
	}
	defer func() { _ = store.Close(ctx) }()

	if err := store.LoadAll(ctx, ds); err != nil {
		log.Fatal().Err(err).Msg("graph load failed")
	}
	log.Info().Msg("graph load completed")
}
