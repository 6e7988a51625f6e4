// Package tui implements the interactive capsule browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/threadcount/threadcount/internal/capsule"
	"github.com/threadcount/threadcount/internal/model"
)

// State represents the current screen of the browser.
type State int

// Browser states.
const (
	StateList State = iota
	StateDetail
)

// capsuleEntry pairs a template with its precomputed match result.
type capsuleEntry struct {
	template   model.CapsuleTemplate
	match      model.MatchResult
	completion int
	budget     float64
}

// Title implements list.Item.
func (e capsuleEntry) Title() string {
	return fmt.Sprintf("%s — %d%% complete", e.template.Name, e.completion)
}

// Description implements list.Item.
func (e capsuleEntry) Description() string {
	return e.template.Description
}

// FilterValue implements list.Item.
func (e capsuleEntry) FilterValue() string {
	return e.template.Name
}

// Model holds the capsule browser state.
type Model struct {
	list     list.Model
	entries  []capsuleEntry
	selected *capsuleEntry
	keymap   KeyMap
	width    int
	height   int
	state    State
	quitting bool
}

// NewModel builds the browser model, scoring every template against the
// inventory up front.
func NewModel(templates []model.CapsuleTemplate, inventory []model.WardrobeItem, manual map[string]map[string]model.WardrobeItem) Model {
	entries := make([]capsuleEntry, 0, len(templates))
	items := make([]list.Item, 0, len(templates))

	for _, tmpl := range templates {
		match := capsule.MatchTemplate(inventory, tmpl, manual[tmpl.ID])
		entry := capsuleEntry{
			template:   tmpl,
			match:      match,
			completion: capsule.CompletionPercentage(match, tmpl),
			budget:     capsule.Budget(match.Missing),
		}
		entries = append(entries, entry)
		items = append(items, entry)
	}

	delegate := list.NewDefaultDelegate()
	capsuleList := list.New(items, delegate, 0, 0)
	capsuleList.Title = "Capsule Wardrobes"
	capsuleList.SetShowStatusBar(false)

	return Model{
		list:    capsuleList,
		entries: entries,
		keymap:  DefaultKeyMap(),
		state:   StateList,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Select):
			if m.state == StateList {
				if entry, ok := m.list.SelectedItem().(capsuleEntry); ok {
					m.selected = &entry
					m.state = StateDetail
				}
				return m, nil
			}

		case key.Matches(msg, m.keymap.Back):
			if m.state == StateDetail {
				m.state = StateList
				m.selected = nil
				return m, nil
			}
		}
	}

	if m.state == StateList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}
