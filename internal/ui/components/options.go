package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

// OptionChosenMsg is emitted when the user commits to an option.
type OptionChosenMsg struct {
	Index int
}

// OptionList is a numbered single-choice list. Options can be picked with
// the arrows and Enter, or directly with their number key.
type OptionList struct {
	Options  []string
	Selected int
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update handles cursor movement and selection.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.Options) == 0 {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, DefaultKeys.Up):
		if l.Selected > 0 {
			l.Selected--
		}
		return l, nil
	case key.Matches(kmsg, DefaultKeys.Down):
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
		return l, nil
	case key.Matches(kmsg, DefaultKeys.Select):
		return l, chooseCmd(l.Selected)
	}

	if n, ok := digit(kmsg.String()); ok && n >= 1 && n <= len(l.Options) {
		l.Selected = n - 1
		return l, chooseCmd(n - 1)
	}
	return l, nil
}

// View renders the options at the given width.
func (l OptionList) View(width int) string {
	var b strings.Builder
	for i, opt := range l.Options {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%d. %s", i+1, opt)
		style := lipgloss.NewStyle().
			Width(width).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		if i == l.Selected {
			style = style.
				Bold(true).
				Foreground(theme.Primary).
				BorderForeground(theme.Primary)
			line = "▸ " + line
		} else {
			style = style.
				Foreground(theme.Text).
				BorderForeground(theme.Border)
			line = "  " + line
		}
		b.WriteString(style.Render(line))
	}
	return b.String()
}

func chooseCmd(i int) tea.Cmd {
	return func() tea.Msg { return OptionChosenMsg{Index: i} }
}

func digit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
