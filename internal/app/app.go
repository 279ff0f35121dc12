package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/orienta/internal/content"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/home"
	"github.com/abhisek/orienta/internal/screens/intro"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/layout"
)

// Options holds dependencies for the TUI.
type Options struct {
	Content   *content.Content
	EventRepo store.EventRepo // nil disables history
	SkipIntro bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	version string
	width   int
	height  int
}

// newAppModel creates an AppModel starting at the intro screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Content, opts.EventRepo)
	}

	var initial screen.Screen
	if opts.SkipIntro {
		initial = homeFactory()
	} else {
		initial = intro.New(homeFactory)
	}

	return AppModel{
		router:  router.New(initial),
		version: opts.Content.Version,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.version, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Mover"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Content == nil {
		return fmt.Errorf("app: no quiz content")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
