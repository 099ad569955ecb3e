package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"cyprus_travel/internal/adapters/content"
	"cyprus_travel/internal/adapters/emailjs"
	server "cyprus_travel/internal/adapters/http_server"
	"cyprus_travel/internal/adapters/observability"
	redisad "cyprus_travel/internal/adapters/redis"
	"cyprus_travel/internal/app"
	"cyprus_travel/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cache.Ping(ctx); err != nil {
		// catalog reads still work uncached; every page load hits the host
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, catalog cache degraded")
	}
	cancel()

	client := content.New(cfg.ContentBase, cfg.ContentRPS)
	relay, err := emailjs.New(cfg.EmailJSBase, cfg.EmailJSService, cfg.EmailJSPublicKey)
	if err != nil {
		log.Fatal().Err(err).Msg("emailjs client init failed")
	}

	catalog := app.NewCatalogService(client, cache, cfg.CacheTTL)
	booking := app.NewBookingService(catalog, relay, cfg.EmailJSHotelTemplate, cfg.EmailJSTourTemplate)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: catalog, Booking: booking})

	log.Info().Str("addr", cfg.HTTPAddr).Str("content", cfg.ContentBase).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
