package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/threadcount/threadcount/internal/catalog"
	"github.com/threadcount/threadcount/internal/config"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/service"
	"github.com/threadcount/threadcount/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/threadcount/threadcount.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadCatalog returns the capsule templates: the built-in catalog, or the
// JSON catalog file configured under catalog.path.
func loadCatalog() ([]model.CapsuleTemplate, error) {
	path := viper.GetString("catalog.path")
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(config.ExpandPath(path))
}

// loadInventory reads the full wardrobe.
func loadInventory(ctx context.Context, store service.Storage) ([]model.WardrobeItem, error) {
	items, err := store.GetItems(ctx, service.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}
	return items, nil
}
