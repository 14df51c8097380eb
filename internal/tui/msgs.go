package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/packlist/internal/model"
)

// Children never edit the collection. They return one of these as a command
// and the root model applies it.

// AddItemMsg appends Item to the end of the list.
type AddItemMsg struct{ Item model.Item }

// DeleteItemMsg removes the item with ID.
type DeleteItemMsg struct{ ID int64 }

// TogglePackedMsg flips the packed flag of the item with ID.
type TogglePackedMsg struct{ ID int64 }

// ClearItemsMsg empties the list. Senders have already confirmed.
type ClearItemsMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
