package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/catalog"
	"github.com/threadcount/threadcount/internal/model"
)

func testInventory() []model.WardrobeItem {
	return []model.WardrobeItem{
		{ID: "i1", Category: model.CategoryTop, Analysis: "black crew neck t-shirt", Color: "black"},
		{ID: "i2", Category: model.CategoryBottom, Analysis: "black slim jeans", Color: "black"},
		{ID: "i3", Category: model.CategoryShoes, Analysis: "white leather sneakers", Color: "white"},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(catalog.Builtin(), testInventory(), nil)
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, ok := resized.(Model)
	require.True(t, ok)
	return model
}

func TestNewModelScoresTemplates(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.entries, len(catalog.Builtin()))

	for _, entry := range m.entries {
		assert.GreaterOrEqual(t, entry.completion, 0)
		assert.LessOrEqual(t, entry.completion, 100)
	}
}

func TestListViewShowsTemplates(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Capsule Wardrobes")
}

func TestSelectOpensDetail(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	detail, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, StateDetail, detail.state)
	require.NotNil(t, detail.selected)

	view := detail.View()
	assert.Contains(t, view, detail.selected.template.Name)
	assert.Contains(t, view, "% complete")
}

func TestBackReturnsToList(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	detail := updated.(Model)

	back, _ := detail.Update(tea.KeyMsg{Type: tea.KeyEsc})
	listModel := back.(Model)
	assert.Equal(t, StateList, listModel.state)
	assert.Nil(t, listModel.selected)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	quit := updated.(Model)
	assert.True(t, quit.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, quit.View())
}

func TestDetailViewSections(t *testing.T) {
	m := newTestModel(t)

	// The minimalist template matches the test inventory strongly, so the
	// detail view should show owned items and remaining gaps.
	var minimalist *capsuleEntry
	for i := range m.entries {
		if m.entries[i].template.ID == "minimalist-essentials" {
			minimalist = &m.entries[i]
		}
	}
	require.NotNil(t, minimalist)

	m.selected = minimalist
	m.state = StateDetail

	view := m.View()
	assert.Contains(t, view, "You already own")
	assert.Contains(t, view, "Still needed")
	assert.False(t, strings.Contains(view, "panic"))
}

func TestRunRejectsEmptyCatalog(t *testing.T) {
	err := Run(context.Background(), Config{})
	assert.Error(t, err)
}
