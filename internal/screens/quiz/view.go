package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	e := s.sess.Engine()
	cw := components.ContentWidth(width)

	var b strings.Builder

	counter := fmt.Sprintf("Pregunta %d de %d", e.Position()+1, e.TotalQuestions())
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.TextDim).
		Render(counter))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", e.ProgressFraction(), true, cw).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(s.question.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.options.View(cw - 2))

	if s.canGoBack() {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("← Anterior"))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
