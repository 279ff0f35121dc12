package home

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/orienta/internal/content"
	"github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/areas"
	"github.com/abhisek/orienta/internal/screens/history"
	"github.com/abhisek/orienta/internal/screens/notice"
	quizscreen "github.com/abhisek/orienta/internal/screens/quiz"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
)

type lastAttemptMsg struct {
	Attempt *store.AttemptRecord
}

// HomeScreen is the main menu.
type HomeScreen struct {
	content   *content.Content
	eventRepo store.EventRepo
	menu      components.Menu
	last      *store.AttemptRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Focuser = (*HomeScreen)(nil)

// New creates a HomeScreen for the given catalog. eventRepo may be nil, in
// which case attempts are not recorded and history is unavailable.
func New(c *content.Content, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{content: c, eventRepo: eventRepo}

	items := []components.MenuItem{
		{Label: "COMENZAR CUESTIONARIO", Action: h.startQuiz},
		{Label: "ÁREAS VOCACIONALES", Action: func() tea.Cmd {
			next := areas.New(c.Catalog)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: "HISTORIAL", Action: func() tea.Cmd {
			var next screen.Screen
			if eventRepo == nil {
				next = notice.New("Historial", "El historial no está disponible\nsin base de datos.")
			} else {
				next = history.New(eventRepo)
			}
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: "SALIR", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	var rec session.Recorder
	if h.eventRepo != nil {
		rec = h.eventRepo
	}
	sess := session.New(context.Background(), quiz.NewEngine(h.content.Catalog), rec)
	next := quizscreen.New(sess)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLast()
}

// Focus reloads the latest attempt when the user comes back from a quiz.
func (h *HomeScreen) Focus() tea.Cmd {
	return h.loadLast()
}

func (h *HomeScreen) loadLast() tea.Cmd {
	repo := h.eventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		attempts, err := repo.RecentAttempts(context.Background(), store.QueryOpts{Limit: 1})
		if err != nil {
			slog.Warn("failed to load last attempt", "error", err)
			return lastAttemptMsg{}
		}
		if len(attempts) == 0 {
			return lastAttemptMsg{}
		}
		return lastAttemptMsg{Attempt: &attempts[0]}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(lastAttemptMsg); ok {
		h.last = m.Attempt
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	compact := layout.IsCompactHeight(height+6) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.content.Title, cw, compact))
	if !compact {
		sections = append(sections, renderCompass(h.last != nil, cw))
	}
	sections = append(sections, renderStatsBar(h.content.Catalog, h.last, cw, compact))
	sections = append(sections, h.menu.View(buttonWidth))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
