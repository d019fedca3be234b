// Package term renders the debugger panel as styled terminal text, for
// headless runs and logs.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

type styles struct {
	panel, title, category lipgloss.Style
	key, value, muted      lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	return styles{
		panel:    base.Border(lipgloss.RoundedBorder()).Padding(0, 1),
		title:    base.Bold(true),
		category: base.Bold(true).Underline(true),
		key:      base.Faint(true),
		value:    base,
		muted:    base.Faint(true),
	}
}

// Render draws the menu's visible content.
func Render(m *overlay.Menu) string {
	s := newStyles()
	var sections []string

	sections = append(sections, s.title.Render(fmt.Sprintf("< %s >", m.Title().Text)))

	var toggles []string
	for _, kind := range []overlay.ToggleKind{overlay.PinToggle, overlay.PointerToggle, overlay.TriggerToggle, overlay.ResetToggle} {
		t := m.Toggle(kind)
		if !t.Visible() {
			continue
		}
		mark := "[ ]"
		if t.IsOn() {
			mark = "[x]"
		}
		toggles = append(toggles, lipgloss.NewStyle().Foreground(color(t.Color())).Render(mark)+" "+t.Widget().Text)
	}
	if len(toggles) > 0 {
		sections = append(sections, strings.Join(toggles, "  "))
	}

	if m.Controls().Active {
		sections = append(sections, s.muted.Render(fmt.Sprintf("< %s >", m.ControlsExtra().Text)))
	}

	for _, category := range m.Content().Children() {
		if category.Active {
			sections = append(sections, renderCategory(s, category))
		}
	}

	return s.panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderCategory(s styles, category *ui.Widget) string {
	lines := []string{s.category.Render(category.Find(ui.PathCategoryHeader).Text)}

	entries := category.Find(ui.PathCategoryEntries).Children()
	width := 0
	for _, entry := range entries {
		width = max(width, lipgloss.Width(entry.Find(ui.PathEntryKey).Text))
	}
	for _, entry := range entries {
		if !entry.Active {
			continue
		}
		key := entry.Find(ui.PathEntryKey).Text
		value := entry.Find(ui.PathEntryValue)
		padded := key + strings.Repeat(" ", width-lipgloss.Width(key))
		lines = append(lines, s.key.Render(padded)+"  "+s.value.Foreground(color(value.Color)).Render(value.Text))
	}
	if len(entries) == 0 {
		lines = append(lines, s.muted.Render("(empty)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func color(c ui.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B)))
}

func channel(f float32) uint8 {
	return uint8(min(max(f, 0), 1)*255 + 0.5)
}
