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

	httpadapter "storefront-offers/internal/adapter/http"
	"storefront-offers/internal/adapter/file"
	"storefront-offers/internal/adapter/metrics"
	"storefront-offers/internal/adapter/postgres"
	"storefront-offers/internal/adapter/snapshot"
	"storefront-offers/internal/adapter/usecase"
	"storefront-offers/internal/config"
	"storefront-offers/internal/config/configs"
	"storefront-offers/internal/core/port"
	"storefront-offers/internal/db"
)

// main is the entry point of the storefront service. It loads
// configuration, opens the configured catalog source, keeps an in-memory
// snapshot of it fresh and serves the storefront API until SIGINT or
// SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder(cfg.Metrics.Namespace)
	}

	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("catalog source error", slog.Any("error", err))
		return
	}
	defer closeSource()

	var observer snapshot.RefreshObserver
	if recorder != nil {
		observer = recorder
	}
	store := snapshot.New(source, observer, logger)
	if err = store.Refresh(ctx); err != nil {
		logger.Error("initial catalog load failed", slog.Any("error", err))
		return
	}
	if err = store.Start(ctx, cfg.Catalog.RefreshSchedule); err != nil {
		logger.Error("catalog refresh error", slog.Any("error", err))
		return
	}
	defer store.Stop()

	if fs, ok := source.(*file.CatalogSource); ok && cfg.Catalog.Watch {
		w := file.NewWatcher(fs.Path(), cfg.Catalog.WatchDebounce, func(ctx context.Context) error {
			if err := fs.Reload(); err != nil {
				return err
			}
			return store.Refresh(ctx)
		}, logger)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("catalog watcher stopped", slog.Any("error", err))
			}
		}()
	}

	var ucRecorder usecase.Recorder
	if recorder != nil {
		ucRecorder = recorder
	}
	svc := usecase.NewStorefrontUseCase(store, ucRecorder, logger)

	handler := httpadapter.NewHandler(svc, logger)
	if recorder != nil {
		handler.Mount(cfg.Metrics.Path, recorder.Handler())
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("catalog_source", cfg.Catalog.Source),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openSource returns the configured catalog repository and a function that
// releases it. The postgres source is migrated and seeded first when asked.
func openSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CatalogRepository, func(), error) {
	if cfg.Catalog.Source == configs.SourceFile {
		src, err := file.NewCatalogSource(cfg.Catalog.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo catalog seeded")
	}
	return postgres.NewCatalogRepository(pool), pool.Close, nil
}
