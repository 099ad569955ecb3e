// Command warmer pre-fetches the three catalog documents into the cache so
// the first visitors after a deploy hit warm entries instead of the remote
// content host.
package main

import (
	"context"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"cyprus_travel/internal/adapters/content"
	"cyprus_travel/internal/adapters/observability"
	redisad "cyprus_travel/internal/adapters/redis"
	"cyprus_travel/internal/app"
	"cyprus_travel/internal/domain"
	"cyprus_travel/internal/shared"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().
		Str("content", cfg.ContentBase).
		Int("workers", cfg.Workers).
		Msg("cache warmer starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, nothing to warm")
	}

	client := content.New(cfg.ContentBase, cfg.ContentRPS)
	catalog := app.NewCatalogService(client, cache, cfg.CacheTTL)

	// any read through the service populates the document cache
	jobs := []struct {
		name string
		run  func(context.Context) error
	}{
		{"hotels", func(ctx context.Context) error {
			_, err := catalog.ListHotels(ctx, domain.DefaultLang)
			return err
		}},
		{"tours", func(ctx context.Context) error {
			_, err := catalog.GetTour(ctx, "", domain.DefaultLang)
			return err
		}},
		{"about", func(ctx context.Context) error {
			_, err := catalog.GetAbout(ctx, domain.DefaultLang)
			return err
		}},
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, job := range jobs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(name string, run func(context.Context) error) {
			defer wg.Done()
			defer sem.Release(1)

			if err := run(ctx); err != nil {
				log.Warn().Str("document", name).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("document", name).Msg("warm ok")
		}(job.name, job.run)
	}

	wg.Wait()
	log.Info().Msg("cache warm completed")
}
