package intro

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	headlineAt   = 300 * time.Millisecond
	taglineAt    = 800 * time.Millisecond
	promptAt     = 1200 * time.Millisecond
)

const (
	tagline = "Explora el campus, encuentra tu vocación y conecta con la comunidad universitaria."
	prompt  = "Presiona Enter para comenzar"
)

type tickMsg time.Time

// IntroScreen is the splash shown before the home menu. Lines fade in on a
// timer; the first key press reveals everything, the next one moves on.
type IntroScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)

// New creates an IntroScreen that replaces itself with homeFactory's screen.
func New(homeFactory func() screen.Screen) *IntroScreen {
	return &IntroScreen{homeFactory: homeFactory}
}

func (s *IntroScreen) Title() string {
	return ""
}

func (s *IntroScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if s.elapsed >= promptAt {
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case tea.KeyPressMsg:
		if s.elapsed < promptAt {
			s.elapsed = promptAt
			return s, nil
		}
		return s, s.transition()
	}
	return s, nil
}

func (s *IntroScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if s.elapsed >= headlineAt {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Descubre tu ")+
				lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("futuro"))
	}
	if s.elapsed >= taglineAt {
		wrap := width - 8
		if wrap > 60 {
			wrap = 60
		}
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(wrap).
				Align(lipgloss.Center).
				Render(tagline))
	}
	if s.elapsed >= promptAt {
		sections = append(sections, "", theme.ButtonActive.Render(prompt))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimLeft(content, "\n"))
}
