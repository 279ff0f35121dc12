package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 28

// renderTitle returns the catalog title, spaced out in compact mode.
func renderTitle(title string, cw int, compact bool) string {
	if title == "" {
		title = "Orientación vocacional"
	}
	style := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true)
	if compact {
		return style.Render(title)
	}
	return style.Render(title) + "\n" +
		lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Descubre las áreas que van contigo")
}

// renderStatsBar shows catalog size and the latest top area.
func renderStatsBar(c *quiz.Catalog, last *store.AttemptRecord, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	lastStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s  %s",
			countStyle.Render(fmt.Sprintf("%dP", c.Len())),
			countStyle.Render(fmt.Sprintf("%dA", len(c.Areas()))),
			lastText(last, true, lastStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("%d PREGUNTAS", c.Len())),
			countStyle.Render(fmt.Sprintf("%d ÁREAS", len(c.Areas()))),
			lastText(last, false, lastStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func lastText(last *store.AttemptRecord, compact bool, active, dim lipgloss.Style) string {
	if last == nil || len(last.Results) == 0 {
		if compact {
			return dim.Render("—")
		}
		return dim.Render("SIN INTENTOS")
	}
	top := last.Results[0]
	if compact {
		return active.Render(top.Icon + " " + top.Tag)
	}
	return active.Render(fmt.Sprintf("ÚLTIMO: %s %s", top.Icon, top.AreaName))
}
