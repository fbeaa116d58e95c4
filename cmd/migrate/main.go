// Command migrate creates the users schema. It is the explicit
// administrative counterpart of the serving process, which never
// touches the schema itself. Safe to rerun: all DDL is create-if-absent.
package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/fahmidl/app-sso/internal/config"
	"github.com/fahmidl/app-sso/internal/db"
	"github.com/fahmidl/app-sso/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping postgres")
	}

	if err := db.Migrate(ctx, sqlDB); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Str("database", cfg.DBName).Msg("database tables created")
}
