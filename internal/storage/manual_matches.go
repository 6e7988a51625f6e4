package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
)

// SaveManualMatch links a template slot to a wardrobe item, replacing any
// previous link for that slot.
func (s *SQLiteStorage) SaveManualMatch(ctx context.Context, match *model.ManualMatch) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateManualMatch(match); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO manual_matches (template_id, template_item_id, item_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(template_id, template_item_id)
		DO UPDATE SET item_id = excluded.item_id, created_at = excluded.created_at`,
		match.TemplateID, match.TemplateItemID, match.ItemID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save manual match: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		match.ID = id
	}

	slog.Debug("saved manual match",
		"template_id", match.TemplateID,
		"template_item_id", match.TemplateItemID,
		"item_id", match.ItemID)
	return nil
}

// GetManualMatches returns all manual matches for a template.
func (s *SQLiteStorage) GetManualMatches(ctx context.Context, templateID string) ([]model.ManualMatch, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(templateID, "templateID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, template_id, template_item_id, item_id, created_at
		FROM manual_matches
		WHERE template_id = ?
		ORDER BY template_item_id`, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []model.ManualMatch
	for rows.Next() {
		var match model.ManualMatch
		if err := rows.Scan(&match.ID, &match.TemplateID, &match.TemplateItemID, &match.ItemID, &match.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manual match: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating manual matches: %w", err)
	}
	return matches, nil
}

// DeleteManualMatch removes the link for one template slot.
func (s *SQLiteStorage) DeleteManualMatch(ctx context.Context, templateID, templateItemID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(templateID, "templateID"); err != nil {
		return err
	}
	if err := validateString(templateItemID, "templateItemID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM manual_matches
		WHERE template_id = ? AND template_item_id = ?`, templateID, templateItemID)
	if err != nil {
		return fmt.Errorf("failed to delete manual match: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("manual match for slot %q: %w", templateItemID, common.ErrNotFound)
	}
	return nil
}

// ResolveManualMatches loads the manual matches for a template and resolves
// them to full wardrobe items keyed by template slot ID, the shape the
// matcher consumes. Links whose item has been deleted are skipped.
func (s *SQLiteStorage) ResolveManualMatches(ctx context.Context, templateID string) (map[string]model.WardrobeItem, error) {
	matches, err := s.GetManualMatches(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	resolved := make(map[string]model.WardrobeItem, len(matches))
	for _, match := range matches {
		item, err := s.GetItem(ctx, match.ItemID)
		if err != nil {
			slog.Warn("manual match references missing item",
				"template_item_id", match.TemplateItemID,
				"item_id", match.ItemID)
			continue
		}
		resolved[match.TemplateItemID] = *item
	}
	return resolved, nil
}
