package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Description }

// rowDelegate draws one item per line. The cursor marker is only shown while
// the list pane has focus.
type rowDelegate struct {
	focused bool
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(it.Item, d.focused && index == m.Index(), m.Width()))
}

// renderRow is the checkbox, description and quantity of it, cut to width
// columns when width > 0. Packed items get a strike-through; nothing about
// it is changed here.
func renderRow(it model.Item, selected bool, width int) string {
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := fmt.Sprintf("%s %d", it.Description, it.Quantity)
	if it.Packed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	prefix := "  "
	if selected {
		prefix = t.Selected.Render(t.Cursor)
	}
	line := prefix + box + " " + text
	if width > 0 && xansi.StringWidth(line) > width {
		line = xansi.Truncate(line, width, "…")
	}
	return line
}
