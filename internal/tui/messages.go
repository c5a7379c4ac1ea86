package tui

type copiedMsg struct{}

type clearStatusMsg struct{}
