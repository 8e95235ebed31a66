package main

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	httpserver "largebnb_seeder/internal/adapters/http_server"
	"largebnb_seeder/internal/adapters/insideairbnb"
	"largebnb_seeder/internal/adapters/observability"
	redisad "largebnb_seeder/internal/adapters/redis"
	"largebnb_seeder/internal/dataset"
	"largebnb_seeder/internal/domain"
	"largebnb_seeder/internal/generator"
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

	log.Info().
		Int64("seed", cfg.Seed).
		Int("cities", len(shared.Cities)).
		Int("workers", cfg.FeedWorkers).
		Msg("seeder starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	client := insideairbnb.New(cfg.FeedRPS, cache, int(cfg.CacheTTL.Seconds()))

	// Fetch every city feed concurrently; generation stays sequential so the
	// property pool grows city by city in a reproducible order.
	feeds := prefetch(ctx, client, cfg.FeedWorkers)

	gen := generator.New(cfg.Seed, generator.Config{
		MaxProperties:      cfg.MaxProperties,
		POIsPerProperty:    cfg.POIsPerProp,
		FavoriteProb:       cfg.FavoriteProb,
		ReviewsPerProperty: cfg.ReviewsPerProp,
	})

	ds := &domain.Dataset{}
	for _, city := range shared.Cities {
		listings := feeds[city.ListingsURL]
		reviews := feeds[city.ReviewsURL]
		if len(listings) == 0 {
			log.Warn().Str("city", city.Name).Msg("no listings fetched, skipping city")
			continue
		}
		gen.GenerateCity(ds, city.Name, city.Country, city.Region, listings, reviews)
	}

	if err := dataset.Write(cfg.ArtifactDir, ds); err != nil {
		log.Fatal().Err(err).Msg("writing artifacts failed")
	}
	log.Info().
		Str("dir", cfg.ArtifactDir).
		Int("properties", len(ds.Properties)).
		Int("reservations", len(ds.Reservations)).
		Int("reviews", len(ds.Reviews)).
		Msg("seeding completed")
}

// prefetch pulls every feed URL through the client, at most workers at a
// time. A failed feed logs a warning and yields no rows; generation decides
// what to do with the gap.
func prefetch(ctx context.Context, client *insideairbnb.Client, workers int) map[string][]domain.Row {
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	out := make(map[string][]domain.Row)

	type feed struct {
		city, kind, url string
	}
	var feeds []feed
	for _, c := range shared.Cities {
		feeds = append(feeds,
			feed{c.Name, "listings", c.ListingsURL},
			feed{c.Name, "reviews", c.ReviewsURL},
		)
	}

	for _, f := range feeds {
		f := f
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			rows, err := client.FetchRows(ctx, f.url)
			if err != nil {
				log.Warn().Str("city", f.city).Str("feed", f.kind).Err(err).Msg("feed fetch failed")
				return
			}
			observability.ObserveFeed(f.city, f.kind, len(rows))
			mu.Lock()
			out[f.url] = rows
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}
