package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// global
	ForceQuit key.Binding
	Quit      key.Binding
	Focus     key.Binding

	// form
	Submit key.Binding
	QtyUp  key.Binding
	QtyDn  key.Binding
	Leave  key.Binding

	// list
	Toggle     key.Binding
	Delete     key.Binding
	Sort       key.Binding
	SortInput  key.Binding
	SortDesc   key.Binding
	SortPacked key.Binding
	Clear      key.Binding

	// confirm dialog
	Yes        key.Binding
	No         key.Binding
	NextButton key.Binding
	Choose     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "form/list")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		QtyUp:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "qty+")),
		QtyDn:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "qty-")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),

		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "packed")),
		Delete:     key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		SortInput:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "input order")),
		SortDesc:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "by description")),
		SortPacked: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "by packed")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),

		Yes:        key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "clear")),
		No:         key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "cancel")),
		NextButton: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab", "focus")),
		Choose:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}
