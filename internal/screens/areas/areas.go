package areas

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// areaRow is one area with the number of options that point to it.
type areaRow struct {
	area    quiz.Area
	options int
}

// AreasScreen lists the vocational areas of the catalog in declaration order.
type AreasScreen struct {
	rows     []areaRow
	maxCount int
	selected int
}

var _ screen.Screen = (*AreasScreen)(nil)
var _ screen.KeyHintProvider = (*AreasScreen)(nil)

// New creates an AreasScreen for catalog.
func New(catalog *quiz.Catalog) *AreasScreen {
	counts := catalog.TagUsage()
	s := &AreasScreen{}
	for _, a := range catalog.Areas() {
		n := counts[a.Tag]
		s.rows = append(s.rows, areaRow{area: a, options: n})
		if n > s.maxCount {
			s.maxCount = n
		}
	}
	return s
}

func (s *AreasScreen) Init() tea.Cmd {
	return nil
}

func (s *AreasScreen) Title() string {
	return "Áreas vocacionales"
}

func (s *AreasScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Mover"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *AreasScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, components.DefaultKeys.Up):
		if s.selected > 0 {
			s.selected--
		}
	case key.Matches(kmsg, components.DefaultKeys.Down):
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *AreasScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No hay áreas en el catálogo."))
	}

	cw := components.ContentWidth(width)
	nameWidth := cw / 2

	var b strings.Builder
	for i, row := range s.rows {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		name := row.area.Name
		if row.area.Icon != "" {
			name = row.area.Icon + "  " + name
		}
		label := style.Width(nameWidth).Render(prefix + name)

		frac := 0.0
		if s.maxCount > 0 {
			frac = float64(row.options) / float64(s.maxCount)
		}
		bar := components.NewProgressBar("", frac, false, cw-nameWidth-12)
		bar.Fill = theme.ScoreFilled
		count := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d opc.", row.options))

		b.WriteString(label + bar.View() + count)
		b.WriteString("\n")
	}

	if i := s.selected; i >= 0 && i < len(s.rows) {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Etiqueta: %s", s.rows[i].area.Tag)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
