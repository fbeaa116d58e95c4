package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings. Every credential and
// connection value is required at startup; a missing value is a fatal
// configuration error, not a deferred failure at first use.
type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// PublicBaseURL is the externally reachable origin of this service,
	// used to build per-provider callback URLs.
	PublicBaseURL string `env:"PUBLIC_BASE_URL,required,notEmpty"`

	DBUser     string `env:"DB_USER,required,notEmpty"`
	DBPassword string `env:"DB_PASSWORD,required,notEmpty"`
	DBHost     string `env:"DB_HOST,required,notEmpty"`
	DBName     string `env:"DB_NAME,required,notEmpty"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	MicrosoftClientID     string `env:"MICROSOFT_CLIENT_ID,required,notEmpty"`
	MicrosoftClientSecret string `env:"MICROSOFT_CLIENT_SECRET,required,notEmpty"`
	GoogleClientID        string `env:"GOOGLE_CLIENT_ID,required,notEmpty"`
	GoogleClientSecret    string `env:"GOOGLE_CLIENT_SECRET,required,notEmpty"`

	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (when present) and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return cfg, nil
}

// DatabaseDSN assembles the Postgres connection string from the
// individual DB_* values.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBName,
		c.DBSSLMode,
	)
}
