package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	send     key.Binding
	code     key.Binding
	language key.Binding
	copy     key.Binding
	logout   key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	about    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	send:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
	code:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "code")),
	language: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy reply")),
	logout:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "logout")),
	pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	about:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
}

// helpLine joins the help text of bindings for a page footer.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
