package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/packlist/internal/model"
)

func TestReduce_UnknownIDsAreNoops(t *testing.T) {
	m := newTestModel(fruitList(), nil)
	for _, msg := range []tea.Msg{DeleteItemMsg{ID: 999}, TogglePackedMsg{ID: 999}} {
		m, _ = update(t, m, msg)
	}
	want := fruitList()
	if len(m.Items()) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(m.Items()))
	}
	for i := range want {
		if m.Items()[i] != want[i] {
			t.Fatalf("item %d changed: %+v", i, m.Items()[i])
		}
	}
}

func TestReduce_ProducesNewCollection(t *testing.T) {
	m := newTestModel(fruitList(), nil)
	before := m.Items()
	m, _ = update(t, m, TogglePackedMsg{ID: 2})
	if before[1].Packed {
		t.Fatalf("previous collection value was mutated")
	}
	if !m.Items()[1].Packed {
		t.Fatalf("expected new collection to carry the toggle")
	}
}

func TestReduce_ClearAlwaysEmpties(t *testing.T) {
	for _, seed := range []model.List{nil, fruitList()} {
		m := newTestModel(seed, nil)
		m, _ = update(t, m, ClearItemsMsg{})
		if len(m.Items()) != 0 {
			t.Fatalf("expected empty collection")
		}
	}
}

func TestFocus_TabAndEsc(t *testing.T) {
	m := newTestModel(nil, nil)
	if m.focus != paneForm || !m.form.Focused() {
		t.Fatalf("expected the form to start focused")
	}
	m, _ = update(t, m, keyEsc)
	if m.focus != paneList || m.form.Focused() {
		t.Fatalf("esc in the form should move to the list")
	}
	m, _ = update(t, m, keyTab)
	if m.focus != paneForm || !m.form.Focused() {
		t.Fatalf("tab should return to the form")
	}
}

func TestQuit_OnlyFromListPane(t *testing.T) {
	m := newTestModel(nil, nil)
	m, cmd := update(t, m, keyRunes("q"))
	if m.form.Description() != "q" {
		t.Fatalf("q in the form should be typed, got %q", m.form.Description())
	}
	_ = cmd

	m = focusList(t, m)
	_, cmd = update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestQuit_CtrlCFromAnywhere(t *testing.T) {
	m := newTestModel(nil, nil)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestView_ComposesAllParts(t *testing.T) {
	m := newTestModel(fruitList(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 40})
	out := xansi.Strip(m.View())
	for _, want := range []string{
		logo,
		formPrompt,
		"Packing list",
		"Banana 1",
		"Apple 2",
		"Cherry 3",
		"You have 3 items on your list, and you already packed 2 (66%)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestView_EmptyState(t *testing.T) {
	m := newTestModel(nil, nil)
	out := xansi.Strip(m.View())
	if !strings.Contains(out, model.EmptyMessage) {
		t.Fatalf("expected empty-state message:\n%s", out)
	}
}

func TestView_ShowsDialogWhileConfirming(t *testing.T) {
	m := focusList(t, newTestModel(fruitList(), nil))
	m, _ = update(t, m, keyRunes("c"))
	if out := xansi.Strip(m.View()); !strings.Contains(out, clearPrompt) {
		t.Fatalf("expected clear prompt in view:\n%s", out)
	}
}

func TestNew_InitialSortMode(t *testing.T) {
	m := New(Options{Items: fruitList(), SortMode: model.SortDescription, Now: fixedClock()})
	if m.list.SortMode() != model.SortDescription {
		t.Fatalf("expected description mode, got %q", m.list.SortMode())
	}
	if !sameIDs(ids(m.list.Visible()), 2, 1, 3) {
		t.Fatalf("expected Apple, Banana, Cherry; got %v", ids(m.list.Visible()))
	}
	if !sameIDs(ids(m.Items()), 1, 2, 3) {
		t.Fatalf("initial sort changed the collection: %v", ids(m.Items()))
	}
}
