package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/service"
)

// SaveItem inserts a new wardrobe item.
func (s *SQLiteStorage) SaveItem(ctx context.Context, item *model.WardrobeItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	tags, err := marshalStyleTags(item.StyleTags)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO items (id, category, analysis, color, photo_path, notes, style_tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, string(item.Category), item.Analysis, item.Color,
		item.PhotoPath, item.Notes, tags, now, now)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	slog.Debug("saved wardrobe item", "id", item.ID, "category", item.Category)
	return nil
}

// GetItem returns a single wardrobe item by ID, or ErrNotFound.
func (s *SQLiteStorage) GetItem(ctx context.Context, id string) (*model.WardrobeItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, category, analysis, color, photo_path, notes, style_tags, created_at, updated_at
		FROM items
		WHERE id = ?`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItems returns wardrobe items matching the filter, oldest first.
func (s *SQLiteStorage) GetItems(ctx context.Context, filter service.ItemFilter) ([]model.WardrobeItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, category, analysis, color, photo_path, notes, style_tags, created_at, updated_at
		FROM items`
	args := []any{}

	if filter.Category != nil {
		query += ` WHERE category = ?`
		args = append(args, string(*filter.Category))
	}
	query += ` ORDER BY created_at, id`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.WardrobeItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	slog.Debug("retrieved wardrobe items", "count", len(items))
	return items, nil
}

// GetItemsToClassify returns items that have no analysis text yet.
func (s *SQLiteStorage) GetItemsToClassify(ctx context.Context) ([]model.WardrobeItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, analysis, color, photo_path, notes, style_tags, created_at, updated_at
		FROM items
		WHERE analysis IS NULL OR analysis = ''
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unclassified items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.WardrobeItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unclassified items: %w", err)
	}
	return items, nil
}

// UpdateItem updates an existing wardrobe item.
func (s *SQLiteStorage) UpdateItem(ctx context.Context, item *model.WardrobeItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	tags, err := marshalStyleTags(item.StyleTags)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET category = ?, analysis = ?, color = ?, photo_path = ?, notes = ?, style_tags = ?, updated_at = ?
		WHERE id = ?`,
		string(item.Category), item.Analysis, item.Color, item.PhotoPath,
		item.Notes, tags, time.Now(), item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %q: %w", item.ID, common.ErrNotFound)
	}
	return nil
}

// DeleteItem removes a wardrobe item and its manual matches.
func (s *SQLiteStorage) DeleteItem(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	// Manual matches referencing the item go with it; ON DELETE CASCADE is
	// not enforced unless foreign keys are enabled per connection.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM manual_matches WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete manual matches for item: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %q: %w", id, common.ErrNotFound)
	}

	slog.Debug("deleted wardrobe item", "id", id)
	return nil
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*model.WardrobeItem, error) {
	var item model.WardrobeItem
	var category string
	var analysis, color, photoPath, notes, tags sql.NullString

	if err := row.Scan(&item.ID, &category, &analysis, &color, &photoPath, &notes, &tags, &item.CreatedAt, &item.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	item.Category = model.Category(category)
	item.Analysis = analysis.String
	item.Color = color.String
	item.PhotoPath = photoPath.String
	item.Notes = notes.String

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &item.StyleTags); err != nil {
			return nil, fmt.Errorf("failed to parse style tags: %w", err)
		}
	}
	return &item, nil
}

func marshalStyleTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal style tags: %w", err)
	}
	return string(data), nil
}
