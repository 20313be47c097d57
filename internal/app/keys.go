package app

import (
	"charm.land/bubbles/v2/key"
)

type keyMap struct {
	Quit     key.Binding
	ForceQ   key.Binding
	Tab      [5]key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Help     key.Binding
	Screen   []key.Binding
	showFull bool
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Tab: [5]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "lessons")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "missions")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "profile")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "oracle")),
		},
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// ShortHelp shows the active screen's bindings followed by global ones.
func (k keyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, k.Screen...)
	return append(out, k.NextTab, k.Help, k.quit())
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Screen,
		{k.Tab[0], k.Tab[1], k.Tab[2], k.Tab[3], k.Tab[4]},
		{k.NextTab, k.PrevTab, k.Help, k.quit()},
	}
}

// quit is the binding advertised in the footer. While a screen captures
// typing only ctrl+c quits.
func (k keyMap) quit() key.Binding {
	if k.Quit.Enabled() {
		return k.Quit
	}
	return k.ForceQ
}
