package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

// Button is a single labelled action.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// ButtonRow is a horizontal group of buttons with one focused.
type ButtonRow struct {
	Buttons []Button
	Focused int
}

// NewButtonRow creates a row focused on the first button.
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

// Update moves focus with left/right and fires the focused button on select.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, DefaultKeys.Left), key.Matches(kmsg, DefaultKeys.Up):
		if r.Focused > 0 {
			r.Focused--
		}
	case key.Matches(kmsg, DefaultKeys.Right), key.Matches(kmsg, DefaultKeys.Down):
		if r.Focused < len(r.Buttons)-1 {
			r.Focused++
		}
	case key.Matches(kmsg, DefaultKeys.Select):
		if b := r.Buttons[r.Focused]; b.OnPress != nil {
			return r, b.OnPress()
		}
	}
	return r, nil
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, 0, len(r.Buttons)*2)
	for i, b := range r.Buttons {
		if i > 0 {
			parts = append(parts, "  ")
		}
		if i == r.Focused {
			parts = append(parts, theme.ButtonActive.Render("▸ "+b.Label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(b.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
