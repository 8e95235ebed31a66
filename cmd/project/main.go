package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpserver "largebnb_seeder/internal/adapters/http_server"
	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/dataset"
	"largebnb_seeder/internal/projector/mongodoc"
	"largebnb_seeder/internal/projector/neograph"
	"largebnb_seeder/internal/shared"
)

// project runs both projections off one artifact read. The stores are
// independent, so the loads run in parallel; either failure aborts both.
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

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		store, err := mongodoc.NewStore(gctx, cfg.MongoURI, cfg.MongoDB, log.Logger)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(gctx) }()
		return store.LoadAll(gctx, ds)
	})

	g.Go(func() error {
		store, err := neograph.NewStore(gctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPass, neograph.Config{
			NodeBatchSize: cfg.NodeBatchSize,
			RelBatchSize:  cfg.RelBatchSize,
			BoostFraction: cfg.BoostFraction,
			Seed:          cfg.Seed,
		}, log.Logger)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(gctx) }()
		return store.LoadAll(gctx, ds)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("projection failed")
	}
	log.Info().Msg("both projections completed")
}
