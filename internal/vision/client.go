package vision

import (
	"context"
	"time"
)

// Client defines the interface for vision model providers.
type Client interface {
	Classify(ctx context.Context, req ClassifyRequest) (Classification, error)
}

// ClassifyRequest carries one garment photo for classification.
type ClassifyRequest struct {
	MimeType  string
	ImageData []byte // raw image bytes, encoded per provider
	Notes     string // optional user-supplied hint
}

// Classification is the structured result of analyzing a garment photo.
type Classification struct {
	Category    string
	Description string
	Color       string
	StyleTags   []string
	Confidence  float64
}

// Config holds configuration for the vision classifier.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}
