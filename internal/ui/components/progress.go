package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/ui/theme"
)

// ProgressBar displays a horizontal bar filled to Fraction (0..1).
type ProgressBar struct {
	Label       string
	Fraction    float64
	ShowPercent bool
	Width       int
	Fill        lipgloss.Style
}

// NewProgressBar creates a progress bar using the default gold fill.
func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Fraction:    fraction,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.ProgressFilled,
	}
}

// Cells returns how many of barWidth cells are filled.
func (p ProgressBar) Cells(barWidth int) int {
	filled := int(float64(barWidth)*p.Fraction + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := p.Cells(barWidth)
	result += p.Fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Fraction*100+0.5)))
	}

	return result
}
