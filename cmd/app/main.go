package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rsnyderaustin/poe-craftsim/internal/config"
	"github.com/rsnyderaustin/poe-craftsim/internal/crafting"
	"github.com/rsnyderaustin/poe-craftsim/internal/modcatalog"
	"github.com/rsnyderaustin/poe-craftsim/internal/server"
	"github.com/rsnyderaustin/poe-craftsim/internal/simulation"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Config warning", "warning", w)
	}

	catalog, err := modcatalog.NewLoader().Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load mod catalog: %w", err)
	}
	slog.Info("Mod catalog loaded",
		"path", cfg.CatalogPath,
		"tiers", catalog.Size(),
		"attribute_types", len(catalog.AttributeTypes()),
		"digest", catalog.Digest())

	cached, err := modcatalog.NewCached(catalog, cfg.CatalogCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create catalog cache: %w", err)
	}

	craftingService := crafting.NewService(cached)
	runner := simulation.NewRunner(craftingService, simulation.Options{
		Workers:     cfg.SimWorkers,
		QueueSize:   cfg.SimQueueSize,
		MaxEpisodes: cfg.SimMaxEpisodes,
	})

	srv := server.NewServer(server.Options{
		Addr:         cfg.Addr(),
		Version:      cfg.Version,
		MaxBodyBytes: cfg.MaxBodyBytes,
		BaseSeed:     cfg.SimSeed,
	}, craftingService, runner, versionedCatalog{Cached: cached, info: catalog})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	stats := cached.Stats()
	slog.Info("Server stopped", "cache_hits", stats.Hits, "cache_misses", stats.Misses)
	return nil
}

// versionedCatalog serves health checks from the cache and version info from
// the loaded catalog.
type versionedCatalog struct {
	*modcatalog.Cached
	info *modcatalog.Memory
}

func (v versionedCatalog) Digest() string { return v.info.Digest() }
func (v versionedCatalog) Size() int      { return v.info.Size() }
