package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	PgDown  key.Binding
	PgUp    key.Binding
	Open    key.Binding
	Back    key.Binding
	Home    key.Binding
	Shorts  key.Binding
	Subs    key.Binding
	Search  key.Binding
	Like    key.Binding
	Dislike key.Binding
	Retry   key.Binding
	Debug   key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Top:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PgDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("ctrl+d", "comments down")),
		PgUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("ctrl+u", "comments up")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "watch")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Home:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Shorts:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "shorts")),
		Subs:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "subscriptions")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		Dislike: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dislike")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Debug:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// hints renders "k:up j:down ..." for the status bar.
func hints(bs ...key.Binding) string {
	var out string
	for i, b := range bs {
		if i > 0 {
			out += " "
		}
		h := b.Help()
		out += StatusBarKey.Render(h.Key) + StatusBarText.Render(":"+h.Desc)
	}
	return out
}
