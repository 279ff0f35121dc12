package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
	"github.com/abhisek/orienta/internal/ui/theme"
)

// maxAttempts caps how many past attempts are loaded.
const maxAttempts = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Err      error
}

// HistoryScreen lists completed attempts, newest first. Enter expands an
// attempt to show its ranked areas.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AttemptRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		attempts, err := repo.RecentAttempts(context.Background(), store.QueryOpts{Limit: maxAttempts})
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detalle"},
		{Key: "↑↓", Description: "Mover"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, components.DefaultKeys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, components.DefaultKeys.Down):
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case key.Matches(msg, components.DefaultKeys.Select):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando historial...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Aún no completas el cuestionario. ¡Anímate!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, a.CompletedAt.Local().Format("02 Jan 2006 15:04"), topArea(a))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, r := range a.Results {
				detail := fmt.Sprintf("    #%d %s %s  %d/%d", r.Rank, r.Icon, r.AreaName, r.Score, a.TotalQuestions)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Secondary).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func topArea(a store.AttemptRecord) string {
	if len(a.Results) == 0 {
		return "sin resultados"
	}
	r := a.Results[0]
	if r.Icon == "" {
		return r.AreaName
	}
	return r.Icon + " " + r.AreaName
}
