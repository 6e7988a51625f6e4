package vision

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/service"
)

// Classifier analyzes garment photos through a vision model provider.
type Classifier struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// NewClassifier creates a new vision-backed classifier.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Classifier{
		client:      client,
		logger:      logger,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}, nil
}

// NewClassifierWithClient wires a classifier around an existing client.
// Used by tests and anywhere a custom provider is injected.
func NewClassifierWithClient(client Client, logger *slog.Logger) *Classifier {
	return &Classifier{
		client:      client,
		logger:      logger,
		retryOpts:   service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second},
		rateLimiter: newRateLimiter(0),
	}
}

// ClassifyItem analyzes the item's photo and returns the structured result.
func (c *Classifier) ClassifyItem(ctx context.Context, item *model.WardrobeItem) (Classification, error) {
	if item.PhotoPath == "" {
		return Classification{}, fmt.Errorf("%w: item %s has no photo", common.ErrClassificationFailed, item.ID)
	}

	data, err := os.ReadFile(item.PhotoPath)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to read photo: %w", err)
	}

	mimeType, err := mimeTypeFor(item.PhotoPath)
	if err != nil {
		return Classification{}, err
	}

	if err := c.rateLimiter.wait(ctx); err != nil {
		return Classification{}, err
	}

	req := ClassifyRequest{ImageData: data, MimeType: mimeType, Notes: item.Notes}

	var result Classification
	err = common.WithRetry(ctx, func() error {
		var classifyErr error
		result, classifyErr = c.client.Classify(ctx, req)
		return classifyErr
	}, c.retryOpts)
	if err != nil {
		return Classification{}, fmt.Errorf("%w: %v", common.ErrClassificationFailed, err)
	}

	c.logger.Debug("classified item",
		"id", item.ID,
		"category", result.Category,
		"confidence", result.Confidence)
	return result, nil
}

// Apply copies a classification onto the item.
func Apply(item *model.WardrobeItem, result Classification) error {
	category, err := model.ParseCategory(result.Category)
	if err != nil {
		return err
	}

	item.Category = category
	item.Analysis = result.Description
	item.Color = result.Color
	item.StyleTags = result.StyleTags
	return nil
}

// ClassifyPending classifies every item that has no analysis yet, persisting
// results as it goes. The progress callback, if non-nil, is invoked after
// each item.
func (c *Classifier) ClassifyPending(ctx context.Context, store service.Storage, progress func(done, total int)) (service.ClassificationStats, error) {
	start := time.Now()

	items, err := store.GetItemsToClassify(ctx)
	if err != nil {
		return service.ClassificationStats{}, err
	}

	stats := service.ClassificationStats{TotalItems: len(items)}
	if len(items) == 0 {
		return stats, common.ErrNoItems
	}

	for i := range items {
		item := &items[i]

		result, err := c.ClassifyItem(ctx, item)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			c.logger.Warn("skipping item after classification failure",
				"id", item.ID, "error", err)
			stats.Failed++
			continue
		}

		if err := Apply(item, result); err != nil {
			stats.Failed++
			continue
		}
		if err := store.UpdateItem(ctx, item); err != nil {
			return stats, err
		}

		stats.Classified++
		if progress != nil {
			progress(i+1, stats.TotalItems)
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// Close releases the classifier's background resources.
func (c *Classifier) Close() {
	c.rateLimiter.Close()
}

func mimeTypeFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	case ".gif":
		return "image/gif", nil
	}
	return "", fmt.Errorf("unsupported photo format: %s", filepath.Ext(path))
}
