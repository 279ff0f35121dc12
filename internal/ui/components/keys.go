package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by every list-style component.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
}

// DefaultKeys is the binding set used across screens.
var DefaultKeys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "subir"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "bajar"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "izquierda"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "derecha"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "elegir"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "b", "backspace"),
		key.WithHelp("←/b", "anterior"),
	),
}
