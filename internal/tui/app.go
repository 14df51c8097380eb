package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

const logo = "🏝️ FAR AWAY 🧳"

// Options configure a Model.
type Options struct {
	// Items seeds the collection; nil starts empty.
	Items model.List
	// Language drives description collation. The zero value means English.
	Language language.Tag
	// SortMode is the initial display order; empty means input order.
	SortMode model.SortMode
	// Confirm answers the clear prompt. Nil shows an in-terminal dialog.
	Confirm ConfirmFunc
	// Now is the id clock; nil means time.Now.
	Now func() time.Time
	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool
}

type pane int

const (
	paneForm pane = iota
	paneList
)

// Model is the application root. It is the only place the collection
// changes; children report intent with AddItemMsg and friends.
type Model struct {
	items model.List
	form  formModel
	list  listModel
	focus pane
	keys  keyMap

	width, height int
}

func New(opt Options) Model {
	tag := opt.Language
	if tag == language.Und {
		tag = language.English
	}
	keys := defaultKeyMap()
	m := Model{
		items: opt.Items,
		form:  newFormModel(model.NewIDSource(opt.Now), keys),
		list:  newListModel(model.NewSorter(tag), opt.Confirm, keys),
		focus: paneForm,
		keys:  keys,
	}
	if m.items == nil {
		m.items = model.List{}
	}
	m.list = m.list.SetItems(m.items)
	if opt.SortMode != "" {
		m.list = m.list.SetSortMode(opt.SortMode)
	}
	return m
}

// Items returns the current collection.
func (m Model) Items() model.List { return m.items }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list = m.list.SetSize(m.listSize())
		return m, nil

	case AddItemMsg, DeleteItemMsg, TogglePackedMsg, ClearItemsMsg:
		before := len(m.items)
		m.items = reduce(m.items, msg)
		m.list = m.list.SetItems(m.items)
		if m.height > 0 {
			m.list = m.list.SetSize(m.listSize())
		}
		log.Printf("%T: %d -> %d items", msg, before, len(m.items))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.list.Confirming() {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		if key.Matches(msg, m.keys.Focus) {
			return m.toggleFocus()
		}
		if m.focus == paneForm {
			if key.Matches(msg, m.keys.Leave) {
				return m.toggleFocus()
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// Anything else (cursor blink and the like) goes to both panes.
	var fcmd, lcmd tea.Cmd
	m.form, fcmd = m.form.Update(msg)
	m.list, lcmd = m.list.Update(msg)
	return m, tea.Batch(fcmd, lcmd)
}

// reduce applies one command message to items.
func reduce(items model.List, msg tea.Msg) model.List {
	switch msg := msg.(type) {
	case AddItemMsg:
		return items.Add(msg.Item)
	case DeleteItemMsg:
		return items.Delete(msg.ID)
	case TogglePackedMsg:
		return items.TogglePacked(msg.ID)
	case ClearItemsMsg:
		return items.Clear()
	}
	return items
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == paneForm {
		m.focus = paneList
		m.form = m.form.Blur()
		m.list = m.list.SetFocused(true)
		return m, nil
	}
	m.focus = paneForm
	m.list = m.list.SetFocused(false)
	var cmd tea.Cmd
	m.form, cmd = m.form.Focus()
	return m, cmd
}

func (m Model) listSize() (int, int) {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	chrome := lipgloss.Height(m.header()) + lipgloss.Height(renderStats(m.items)) + 4
	h := m.height - chrome
	if h < 6 {
		h = 6
	}
	return w, h
}

func (m Model) header() string {
	return ui.Current().Title.Render(logo) + "\n\n" + m.form.View()
}

func (m Model) View() string {
	content := m.header() + "\n\n" + m.list.View() + "\n\n" + renderStats(m.items)
	return ui.Panel(content, m.width)
}

// Run starts the program and returns the collection as it was on quit.
func Run(opt Options) (model.List, error) {
	var popts []tea.ProgramOption
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(opt), popts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run program: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return fm.Items(), nil
}
