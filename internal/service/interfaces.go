// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/threadcount/threadcount/internal/model"
)

// ItemFilter defines filtering options for wardrobe item queries.
type ItemFilter struct {
	Category *model.Category
	Limit    int
	Offset   int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Wardrobe item operations
	SaveItem(ctx context.Context, item *model.WardrobeItem) error
	GetItem(ctx context.Context, id string) (*model.WardrobeItem, error)
	GetItems(ctx context.Context, filter ItemFilter) ([]model.WardrobeItem, error)
	GetItemsToClassify(ctx context.Context) ([]model.WardrobeItem, error)
	UpdateItem(ctx context.Context, item *model.WardrobeItem) error
	DeleteItem(ctx context.Context, id string) error

	// Manual match operations
	SaveManualMatch(ctx context.Context, match *model.ManualMatch) error
	GetManualMatches(ctx context.Context, templateID string) ([]model.ManualMatch, error)
	DeleteManualMatch(ctx context.Context, templateID, templateItemID string) error
	ResolveManualMatches(ctx context.Context, templateID string) (map[string]model.WardrobeItem, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ClassificationStats shows the results of a batch classification run.
type ClassificationStats struct {
	TotalItems int
	Classified int
	Failed     int
	Duration   time.Duration
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
