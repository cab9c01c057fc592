package main

import (
	"github.com/rsnyderaustin/poe-craftsim/internal/config"
	"github.com/rsnyderaustin/poe-craftsim/internal/logger"
)

// initLogger initializes the logger from the app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		Catalog:     cfg.CatalogPath,
		AddSource:   addSource,
	})
}
