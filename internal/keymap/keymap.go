package keymap

import (
	"charm.land/bubbles/v2/key"
	"github.com/robinovitch61/vl/internal/viewport"
)

type KeyMap struct {
	Copy    key.Binding
	Enter   key.Binding
	Fewer   key.Binding
	Help    key.Binding
	More    key.Binding
	Quit    key.Binding
	Save    key.Binding
	Shorter key.Binding
	Taller  key.Binding
	Title   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy visible items"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show visible range"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove 100 items"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "show/hide help"),
		),
		More: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add 100 items"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save items to file"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shorter items"),
		),
		Taller: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "taller items"),
		),
		Title: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "change title (rebuilds the list)"),
		),
	}
}

// NavigationKeyBindings are the keys the list's viewport handles itself
func NavigationKeyBindings() []key.Binding {
	vp := viewport.DefaultKeyMap()
	return []key.Binding{
		WithDesc(vp.Up, "up one row"),
		WithDesc(vp.Down, "down one row"),
		vp.HalfPageUp,
		vp.HalfPageDown,
		vp.PageUp,
		vp.PageDown,
		vp.Top,
		vp.Bottom,
	}
}

// OptionKeyBindings change the list's options. Each press is one Set call
func OptionKeyBindings(km KeyMap) []key.Binding {
	return []key.Binding{
		km.Title,
		WithKeys(km.Taller, "+/="),
		km.Shorter,
		km.More,
		km.Fewer,
	}
}

// ActionKeyBindings act on the app or on what the list currently shows
func ActionKeyBindings(km KeyMap) []key.Binding {
	return []key.Binding{
		km.Enter,
		km.Copy,
		km.Save,
		km.Help,
		WithKeys(km.Quit, "ctrl+c/q"),
	}
}

func WithKeys(k key.Binding, keys string) key.Binding {
	newK := k
	newK.SetHelp(keys, k.Help().Desc)
	return newK
}

func WithDesc(k key.Binding, d string) key.Binding {
	newK := k
	newK.SetHelp(newK.Help().Key, d)
	return newK
}
