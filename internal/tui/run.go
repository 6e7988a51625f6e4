package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/threadcount/threadcount/internal/model"
)

// Config holds everything the capsule browser needs to run.
type Config struct {
	Templates     []model.CapsuleTemplate
	Inventory     []model.WardrobeItem
	ManualMatches map[string]map[string]model.WardrobeItem
}

// Run launches the capsule browser and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if len(cfg.Templates) == 0 {
		return fmt.Errorf("no capsule templates to browse")
	}

	browser := NewModel(cfg.Templates, cfg.Inventory, cfg.ManualMatches)
	program := tea.NewProgram(browser, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("capsule browser failed: %w", err)
	}
	return nil
}
