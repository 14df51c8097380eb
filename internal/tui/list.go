package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

const clearPrompt = "Are you sure you want to delete all items ?"

// listModel shows the collection in the chosen sort mode. It holds a copy of
// the last collection it was given and never edits it.
type listModel struct {
	list   list.Model
	sorter *model.Sorter
	mode   model.SortMode
	items  model.List

	confirm ConfirmFunc
	dialog  *confirmModel // non-nil while a clear is waiting for an answer

	keys keyMap
}

func newListModel(sorter *model.Sorter, confirm ConfirmFunc, keys keyMap) listModel {
	l := list.New(nil, rowDelegate{}, 76, 12)
	t := ui.Current()

	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.SetStatusBarItemName("item", "items")

	// The list pane owns these letters; quitting is decided by the root model.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown")
	l.KeyMap.PrevPage.SetKeys("left", "h", "pgup")

	extra := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Delete, keys.Sort, keys.Clear, keys.Focus}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return append(extra(), keys.SortInput, keys.SortDesc, keys.SortPacked)
	}

	m := listModel{
		list:    l,
		sorter:  sorter,
		mode:    model.SortInput,
		confirm: confirm,
		keys:    keys,
	}
	m.list.Title = m.title()
	return m
}

func (m listModel) SortMode() model.SortMode { return m.mode }

// Confirming reports whether the clear dialog is open.
func (m listModel) Confirming() bool { return m.dialog != nil }

// Visible returns the rows in display order.
func (m listModel) Visible() model.List {
	out := make(model.List, 0, len(m.list.Items()))
	for _, li := range m.list.Items() {
		if it, ok := li.(listItem); ok {
			out = append(out, it.Item)
		}
	}
	return out
}

// SetItems replaces the collection being shown.
func (m listModel) SetItems(items model.List) listModel {
	m.items = items
	return m.resort()
}

func (m listModel) SetSortMode(mode model.SortMode) listModel {
	m.mode = mode
	m.list.Title = m.title()
	return m.resort()
}

func (m listModel) SetFocused(focused bool) listModel {
	m.list.SetDelegate(rowDelegate{focused: focused})
	return m
}

func (m listModel) SetSize(w, h int) listModel {
	m.list.SetSize(w, h)
	return m
}

func (m listModel) resort() listModel {
	sorted := m.sorter.Sorted(m.items, m.mode)
	rows := make([]list.Item, 0, len(sorted))
	for _, it := range sorted {
		rows = append(rows, listItem{it})
	}
	m.list.SetItems(rows)
	if n := len(rows); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return m
}

func (m listModel) title() string {
	return "Packing list · " + m.mode.Label()
}

func (m listModel) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.Item, true
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	if m.dialog != nil {
		d, decision := m.dialog.Update(msg)
		switch decision {
		case confirmAccepted:
			m.dialog = nil
			return m, emit(ClearItemsMsg{})
		case confirmDeclined:
			m.dialog = nil
		default:
			m.dialog = &d
		}
		return m, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				return m, emit(TogglePackedMsg{ID: it.ID})
			}
			return m, nil
		case key.Matches(km, m.keys.Delete):
			if it, ok := m.selected(); ok {
				return m, emit(DeleteItemMsg{ID: it.ID})
			}
			return m, nil
		case key.Matches(km, m.keys.Sort):
			return m.SetSortMode(m.mode.Next()), nil
		case key.Matches(km, m.keys.SortInput):
			return m.SetSortMode(model.SortInput), nil
		case key.Matches(km, m.keys.SortDesc):
			return m.SetSortMode(model.SortDescription), nil
		case key.Matches(km, m.keys.SortPacked):
			return m.SetSortMode(model.SortPacked), nil
		case key.Matches(km, m.keys.Clear):
			return m.requestClear()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) requestClear() (listModel, tea.Cmd) {
	if m.confirm != nil {
		if m.confirm(clearPrompt) {
			return m, emit(ClearItemsMsg{})
		}
		return m, nil
	}
	d := newConfirmModel(clearPrompt, "Clear", m.keys)
	m.dialog = &d
	return m, nil
}

func (m listModel) View() string {
	if m.dialog != nil {
		return m.list.View() + "\n" + m.dialog.View()
	}
	return m.list.View()
}
