package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	tab      key.Binding
	backtab  key.Binding
	enter    key.Binding
	newItem  key.Binding
	tutorial key.Binding
	copyID   key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	tutorial: key.NewBinding(key.WithKeys("t")),
	copyID:   key.NewBinding(key.WithKeys("c")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
