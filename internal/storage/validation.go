// Package storage provides the data persistence layer for the wardrobe engine.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/threadcount/threadcount/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidItem  = errors.New("invalid wardrobe item")
	ErrInvalidMatch = errors.New("invalid manual match")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateItem validates a wardrobe item before persistence.
func validateItem(item *model.WardrobeItem) error {
	if item == nil {
		return fmt.Errorf("%w: item", ErrNilParameter)
	}
	if item.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidItem)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", ErrInvalidItem, item.Category)
	}
	return nil
}

// validateManualMatch validates a manual match before persistence.
func validateManualMatch(match *model.ManualMatch) error {
	if match == nil {
		return fmt.Errorf("%w: match", ErrNilParameter)
	}
	if match.TemplateID == "" {
		return fmt.Errorf("%w: missing template ID", ErrInvalidMatch)
	}
	if match.TemplateItemID == "" {
		return fmt.Errorf("%w: missing template item ID", ErrInvalidMatch)
	}
	if match.ItemID == "" {
		return fmt.Errorf("%w: missing item ID", ErrInvalidMatch)
	}
	return nil
}
