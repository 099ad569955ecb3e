package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string `toml:"app_env"`
	HTTPAddr    string `toml:"http_addr"`
	MetricsAddr string `toml:"metrics_addr"`

	RedisAddr string `toml:"redis_addr"`
	RedisDB   int    `toml:"redis_db"`
	RedisPass string `toml:"redis_password"`

	ContentBase string `toml:"content_base_url"`
	ContentRPS  int    `toml:"content_rps"`

	EmailJSBase          string `toml:"emailjs_base_url"`
	EmailJSService       string `toml:"emailjs_service_id"`
	EmailJSHotelTemplate string `toml:"emailjs_hotel_template_id"`
	EmailJSTourTemplate  string `toml:"emailjs_tour_template_id"`
	EmailJSPublicKey     string `toml:"emailjs_public_key"`

	Workers  int           `toml:"warm_workers"`
	CacheTTL time.Duration `toml:"-"`
}

// Load reads configuration from the environment, then lets an optional TOML
// file named by CONFIG_FILE override individual fields.
func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		ContentBase: env("CONTENT_BASE_URL", "https://arturkarapetyan-1981.github.io/host_api"),
		ContentRPS:  atoi("CONTENT_RPS", 5),

		// The relay identifiers ship with defaults because the EmailJS service
		// id and public key are client-visible constants, not secrets.
		EmailJSBase:          env("EMAILJS_BASE_URL", "https://api.emailjs.com"),
		EmailJSService:       env("EMAILJS_SERVICE_ID", "service_66xrene"),
		EmailJSHotelTemplate: env("EMAILJS_HOTEL_TEMPLATE_ID", "template_gkjtr6f"),
		EmailJSTourTemplate:  env("EMAILJS_TOUR_TEMPLATE_ID", "template_xz9j9pl"),
		EmailJSPublicKey:     env("EMAILJS_PUBLIC_KEY", "tyS58iswcQ4t7HxJr"),

		Workers:  atoi("WARM_WORKERS", 3),
		CacheTTL: time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not read config file, using env values")
		}
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
