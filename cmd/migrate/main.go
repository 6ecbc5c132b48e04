package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/psgtech/campus-portal-api/config"
	"github.com/psgtech/campus-portal-api/pkg/db"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	target := flag.Uint("target", 0, "migrate to this schema version (0 applies all migrations)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: "campus-portal-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting database migrations",
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.String("source", cfg.Database.MigrationsPath),
		zap.Uint("target", *target),
	)

	if err := db.MigrateTo(cfg.Database.URL, cfg.Database.MigrationsPath, *target); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL hides the password of a database URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
