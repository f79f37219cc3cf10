package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings across screens.
type KeyMap struct {
	Quit           key.Binding
	Continue       key.Binding
	Back           key.Binding
	Profile        key.Binding
	Predict        key.Binding
	Up             key.Binding
	Down           key.Binding
	Choose         key.Binding
	PrevDay        key.Binding
	NextDay        key.Binding
	Favorite       key.Binding
	Refresh        key.Binding
	SwitchTab      key.Binding
	ToggleTheme    key.Binding
	ToggleLanguage key.Binding
	Places         []key.Binding
	Climates       []key.Binding
}

// DefaultKeyMap returns default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:           key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Continue:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Back:           key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Profile:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		Predict:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "predict")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:         key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		PrevDay:        key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev day")),
		NextDay:        key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next day")),
		Favorite:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Refresh:        key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "reload places")),
		SwitchTab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		ToggleTheme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		ToggleLanguage: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Places: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "place")),
			key.NewBinding(key.WithKeys("2")),
			key.NewBinding(key.WithKeys("3")),
			key.NewBinding(key.WithKeys("4")),
		},
		Climates: []key.Binding{
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s/c/w/r/n", "climate")),
			key.NewBinding(key.WithKeys("c")),
			key.NewBinding(key.WithKeys("w")),
			key.NewBinding(key.WithKeys("r")),
			key.NewBinding(key.WithKeys("n")),
		},
	}
}
