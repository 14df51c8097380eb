package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

const formPrompt = "What do you need for your travel?"

// formModel is the entry form. Its fields are reset after every accepted
// submit and left alone after a rejected one.
type formModel struct {
	input    textinput.Model
	quantity int
	ids      *model.IDSource
	keys     keyMap
}

func newFormModel(ids *model.IDSource, keys keyMap) formModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200
	ti.Focus()
	return formModel{
		input:    ti,
		quantity: model.MinQuantity,
		ids:      ids,
		keys:     keys,
	}
}

func (f formModel) Description() string { return f.input.Value() }
func (f formModel) Quantity() int       { return f.quantity }

func (f formModel) Focused() bool { return f.input.Focused() }

func (f formModel) Focus() (formModel, tea.Cmd) {
	cmd := f.input.Focus()
	return f, cmd
}

func (f formModel) Blur() formModel {
	f.input.Blur()
	return f
}

func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Submit):
			return f.submit()
		case key.Matches(km, f.keys.QtyUp):
			f.quantity = model.ClampQuantity(f.quantity + 1)
			return f, nil
		case key.Matches(km, f.keys.QtyDn):
			f.quantity = model.ClampQuantity(f.quantity - 1)
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f formModel) submit() (formModel, tea.Cmd) {
	if f.input.Value() == "" {
		return f, nil
	}
	it, ok := model.NewItem(f.ids.Next(), f.input.Value(), f.quantity)
	if !ok {
		return f, nil
	}
	f.input.SetValue("")
	f.quantity = model.MinQuantity
	return f, emit(AddItemMsg{Item: it})
}

func (f formModel) View() string {
	t := ui.Current()
	qty := fmt.Sprintf("‹ %2d ›", f.quantity)
	if f.Focused() {
		qty = t.Accent.Render(qty)
	} else {
		qty = t.Muted.Render(qty)
	}
	return t.Title.Render(formPrompt) + "\n" + "Qty " + qty + "  " + f.input.View()
}
