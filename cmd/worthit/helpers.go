package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/worthit/worthit/internal/config"
	"github.com/worthit/worthit/internal/service"
	"github.com/worthit/worthit/internal/storage"
)

// initStore opens the database and runs migrations.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
