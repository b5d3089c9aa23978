package columnlayout

import "github.com/xqrs/columnlayout/keybind"

// DeckKeyMap holds the key bindings of a ColumnLayout.
type DeckKeyMap struct {
	Next     keybind.Keybind
	Previous keybind.Keybind
	First    keybind.Keybind
	Last     keybind.Keybind
	Quit     keybind.Keybind
}

// DefaultDeckKeyMap returns the default deck bindings.
func DefaultDeckKeyMap() DeckKeyMap {
	return DeckKeyMap{
		Next: keybind.NewKeybind(
			keybind.WithKeys("right", "l", "down", "j", "tab"),
			keybind.WithHelp("→/l", "next"),
		),
		Previous: keybind.NewKeybind(
			keybind.WithKeys("left", "h", "up", "k", "shift+tab"),
			keybind.WithHelp("←/h", "previous"),
		),
		First: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("g", "first"),
		),
		Last: keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("G", "last"),
		),
		Quit: keybind.NewKeybind(
			keybind.WithKeys("q", "esc", "ctrl+c"),
			keybind.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in a one-line help bar.
func (k DeckKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Previous, k.Next, k.First, k.Last, k.Quit}
}
