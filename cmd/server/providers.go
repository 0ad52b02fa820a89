// File: cmd/server/providers.go
package main

import (
	"log"

	"bff_create_account/internal/config"
	"bff_create_account/internal/platform/database"
	"bff_create_account/internal/platform/logger"
	"bff_create_account/internal/platform/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	appLogger, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		// stdout/stderr sync errors are expected on some platforms
		if err := appLogger.Sync(); err != nil {
			log.Printf("WARN: Failed to sync logger during cleanup: %v", err)
		}
	}
	return appLogger, cleanup, nil
}

func provideDatabase(cfg *config.Config, appLogger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg, appLogger)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { database.CloseGORMDB(db, appLogger) }, nil
}

func provideMetrics(cfg *config.Config) *metrics.HTTPMetrics {
	if !cfg.MetricsEnabled {
		return nil
	}
	return metrics.NewHTTPMetrics()
}
