package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/fahmidl/app-sso/internal/config"
	"github.com/fahmidl/app-sso/internal/redis"
)

type infra struct {
	db    *sql.DB
	redis *redis.Client
}

// setupInfra opens and verifies the shared backends. Schema creation is
// an administrative step (cmd/migrate), never done here.
func setupInfra(ctx context.Context, cfg config.Config, log zerolog.Logger) (*infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("database ready")

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("redis ready")

	return &infra{
		db:    sqlDB,
		redis: redisClient,
	}, nil
}
