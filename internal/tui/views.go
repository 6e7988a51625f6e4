package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9D7CD8")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	exactStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	similarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateDetail && m.selected != nil {
		return m.detailView()
	}
	return m.list.View()
}

// detailView renders one capsule's match breakdown.
func (m Model) detailView() string {
	entry := m.selected

	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.template.Name))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(entry.template.Description))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("\n%d%% complete, $%.2f to finish\n", entry.completion, entry.budget))

	if len(entry.match.Exact) > 0 {
		b.WriteString(sectionStyle.Render("You already own"))
		b.WriteString("\n")
		for _, exact := range entry.match.Exact {
			b.WriteString(exactStyle.Render("  ✓ " + exact.TemplateItem.Description))
			b.WriteString(subtleStyle.Render("  (" + exact.UserItem.Analysis + ")"))
			b.WriteString("\n")
		}
	}

	if len(entry.match.Similar) > 0 {
		b.WriteString(sectionStyle.Render("Close enough"))
		b.WriteString("\n")
		for _, similar := range entry.match.Similar {
			b.WriteString(similarStyle.Render("  ~ " + similar.TemplateItem.Description))
			b.WriteString(subtleStyle.Render("  " + similar.Reason))
			b.WriteString("\n")
		}
	}

	if len(entry.match.Missing) > 0 {
		b.WriteString(sectionStyle.Render("Still needed"))
		b.WriteString("\n")
		for _, slot := range entry.match.Missing {
			b.WriteString(missingStyle.Render("  ✗ " + slot.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(subtleStyle.Render("\nesc back · q quit"))
	return b.String()
}
