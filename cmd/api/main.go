package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	pg "animal-zoo/internal/adapters/storage/postgres"
	"animal-zoo/internal/platform/config"
	"animal-zoo/internal/platform/logger"
	"animal-zoo/internal/platform/metrics"
	"animal-zoo/internal/roster"
	"animal-zoo/internal/router"
)

// @title Animal Zoo API
// @version 1.0
// @description Residentes creados por la fábrica de animales (dog, cat, bird), sus acciones y su diario.
// @BasePath /
func main() {
	cfg := config.FromEnv()
	log := cfg.Logger()

	err := run(cfg, log)
	if err != nil {
		log.Error("server stopped", map[string]any{"err": err})
	}
	if zl, ok := log.(*logger.ZapLogger); ok {
		_ = zl.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

// run solo vuelve cuando el servidor termina; los defers corren antes
// de que main decida el exit code.
func run(cfg config.Config, log logger.Logger) error {
	var db *sql.DB
	if cfg.DBDSN != "" {
		var err error
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = pg.Migrate(ctx, db)
		cancel()
		if err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}
	}

	r, err := roster.Resolve(cfg.SeedRoster)
	if err != nil {
		return err
	}
	seed, err := r.Build()
	if err != nil {
		return fmt.Errorf("roster %q: %w", cfg.SeedRoster, err)
	}

	h := router.NewRouter(router.Options{
		DB:      db,
		Logger:  log,
		Metrics: metrics.New(),
		Seed:    seed,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":    cfg.Addr,
		"storage": storageName(db),
		"roster":  len(seed),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func storageName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
