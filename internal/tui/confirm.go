package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/packlist/internal/ui"
)

// ConfirmFunc answers a yes/no question. It is called synchronously, so an
// implementation must not wait on the running program.
type ConfirmFunc func(prompt string) bool

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusConfirm
)

type confirmDecision int

const (
	confirmPending confirmDecision = iota
	confirmAccepted
	confirmDeclined
)

// confirmModel is the in-terminal dialog used when no ConfirmFunc is set.
type confirmModel struct {
	prompt string
	label  string
	focus  confirmFocus
	keys   keyMap
}

func newConfirmModel(prompt, label string, keys keyMap) confirmModel {
	return confirmModel{prompt: prompt, label: label, focus: confirmFocusCancel, keys: keys}
}

func (c confirmModel) Update(msg tea.Msg) (confirmModel, confirmDecision) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, confirmPending
	}
	switch {
	case key.Matches(km, c.keys.Yes):
		return c, confirmAccepted
	case key.Matches(km, c.keys.No):
		return c, confirmDeclined
	case key.Matches(km, c.keys.NextButton):
		if c.focus == confirmFocusCancel {
			c.focus = confirmFocusConfirm
		} else {
			c.focus = confirmFocusCancel
		}
	case key.Matches(km, c.keys.Choose):
		if c.focus == confirmFocusConfirm {
			return c, confirmAccepted
		}
		return c, confirmDeclined
	}
	return c, confirmPending
}

func (c confirmModel) View() string {
	t := ui.Current()
	btn := lipgloss.NewStyle().Padding(0, 1)
	active := t.Selected.Padding(0, 1)

	confirm := btn.Render(c.label)
	cancel := btn.Render("Cancel")
	if c.focus == confirmFocusConfirm {
		confirm = active.Render(c.label)
	} else {
		cancel = active.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)
	help := t.Help.Render("y: " + strings.ToLower(c.label) + "   n/esc: cancel   tab: focus   enter: select")

	return ui.Panel(strings.Join([]string{
		t.Error.Render(c.prompt),
		"",
		controls,
		"",
		help,
	}, "\n"), 0)
}
