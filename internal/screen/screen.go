package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/orienta/internal/ui/layout"
)

// Screen is one view on the router stack.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen override the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Focuser is implemented by screens that refresh when they become active
// again after the screens above them are popped.
type Focuser interface {
	Focus() tea.Cmd
}
