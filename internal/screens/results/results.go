package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// ResultsScreen shows the ranked areas of a completed attempt.
type ResultsScreen struct {
	summary *session.Summary
	buttons components.ButtonRow
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. retry is invoked when the user chooses to
// take the quiz again.
func New(summary *session.Summary, retry func() tea.Cmd) *ResultsScreen {
	return &ResultsScreen{
		summary: summary,
		buttons: components.NewButtonRow(
			components.Button{Label: "Continuar explorando", OnPress: func() tea.Cmd {
				return func() tea.Msg { return router.PopToRootMsg{} }
			}},
			components.Button{Label: "Reintentar", OnPress: retry},
		),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Resultados"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Cambiar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Inicio"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Tus áreas afines"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d preguntas en %s", sum.TotalQuestions, formatDuration(sum))))
	b.WriteString("\n\n")

	for i, r := range sum.Results {
		b.WriteString(components.Card(s.renderResult(i, r.Area.Icon, r.Area.Name, r.Score, cw-4), cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.buttons.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *ResultsScreen) renderResult(i int, icon, name string, score, width int) string {
	rank := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("#%d", i+1))
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name)
	if icon != "" {
		label = icon + "  " + label
	}
	head := rank + "  " + label

	bar := components.NewProgressBar("", s.summary.Fraction(i), false, width-8)
	bar.Fill = theme.ScoreFilled
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", score, s.summary.TotalQuestions))

	return head + "\n" + bar.View() + count
}

func formatDuration(sum *session.Summary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
