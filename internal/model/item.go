package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// WardrobeItem represents a single garment owned by the user.
type WardrobeItem struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Category  Category
	Analysis  string // Free-text description from the vision service
	Color     string // Normalized color, may be empty
	PhotoPath string
	Notes     string
	StyleTags []string
}

// GenerateHash creates a unique hash for duplicate detection across imports.
func (w *WardrobeItem) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s", w.Category, w.Color, w.Analysis)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Validate ensures the item has the minimum data required for matching.
func (w *WardrobeItem) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("item ID is required")
	}
	if !w.Category.Valid() {
		return fmt.Errorf("invalid category: %q", w.Category)
	}
	return nil
}
