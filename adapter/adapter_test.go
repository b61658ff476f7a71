//go:build cgo

package adapter

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

type sliceSource struct {
	items []string
}

func (s *sliceSource) Len() int        { return len(s.items) }
func (s *sliceSource) At(i int) string { return s.items[i] }

func newLabelRow() fyne.CanvasObject { return widget.NewLabel("") }

func TestBindReceivesPositionAndItem(t *testing.T) {
	var gotPosition int
	var gotItem string

	a := NewFuncs(
		func() int { return 3 },
		func(i int) string { return fmt.Sprintf("item%d", i) },
		newLabelRow,
		func(h *Holder, position int, item string) {
			gotPosition = position
			gotItem = item
		},
	)

	if a.Count() != 3 {
		t.Fatalf("Expected count 3, got %d", a.Count())
	}

	row := a.CreateItem()
	a.BindItem(1, row)

	if gotPosition != 1 {
		t.Errorf("Expected bind position 1, got %d", gotPosition)
	}
	if gotItem != "item1" {
		t.Errorf("Expected item %q, got %q", "item1", gotItem)
	}
}

func TestCountConsultsSourceFreshly(t *testing.T) {
	src := &sliceSource{items: []string{"a"}}
	a := New[string](src, newLabelRow, func(h *Holder, position int, item string) {})

	if a.Count() != 1 {
		t.Fatalf("Expected count 1, got %d", a.Count())
	}

	src.items = append(src.items, "b", "c")
	if a.Count() != 3 {
		t.Errorf("Expected count 3 after source mutation, got %d", a.Count())
	}

	src.items = nil
	if a.Count() != 0 {
		t.Errorf("Expected count 0 after source reset, got %d", a.Count())
	}
}

func TestHolderStablePerRow(t *testing.T) {
	var seen []*Holder
	a := NewFuncs(
		func() int { return 2 },
		func(i int) string { return "x" },
		newLabelRow,
		func(h *Holder, position int, item string) {
			seen = append(seen, h)
		},
	)

	first := a.CreateItem()
	second := a.CreateItem()
	if first == second {
		t.Fatal("CreateItem should produce distinct rows")
	}

	a.BindItem(0, first)
	a.BindItem(1, second)
	a.BindItem(0, first) // recycle

	if len(seen) != 3 {
		t.Fatalf("Expected 3 binds, got %d", len(seen))
	}
	if seen[0] == seen[1] {
		t.Error("Distinct rows should have distinct holders")
	}
	if seen[0] != seen[2] {
		t.Error("Re-binding the same row should reuse its holder")
	}
	if seen[0].Root != first {
		t.Error("Holder should carry the row it was created for")
	}
}

func TestBindForeignRowGetsHolder(t *testing.T) {
	var got *Holder
	a := NewFuncs(
		func() int { return 1 },
		func(i int) string { return "x" },
		newLabelRow,
		func(h *Holder, position int, item string) { got = h },
	)

	foreign := widget.NewLabel("external")
	a.BindItem(0, foreign)

	if got == nil {
		t.Fatal("Expected a holder for a row not created by the adapter")
	}
	if got.Root != foreign {
		t.Error("Lazily created holder should wrap the bound row")
	}
}

func TestSourceUntouchedByBinds(t *testing.T) {
	src := &sliceSource{items: []string{"a", "b", "c"}}
	a := New[string](src, newLabelRow, func(h *Holder, position int, item string) {
		h.Root.(*widget.Label).SetText(item)
	})

	row := a.CreateItem()
	for i := 0; i < src.Len(); i++ {
		a.BindItem(i, row)
	}

	want := []string{"a", "b", "c"}
	for i, w := range want {
		if src.items[i] != w {
			t.Errorf("Source item %d changed to %q", i, src.items[i])
		}
	}
}

func TestNewListWiring(t *testing.T) {
	src := &sliceSource{items: []string{"alpha", "beta"}}
	a := New[string](src, newLabelRow, func(h *Holder, position int, item string) {
		h.Root.(*widget.Label).SetText(item)
	})

	list := a.NewList()
	if list == nil {
		t.Fatal("NewList returned nil")
	}

	if got := list.Length(); got != 2 {
		t.Errorf("Expected list length 2, got %d", got)
	}

	row := list.CreateItem()
	list.UpdateItem(1, row)
	if text := row.(*widget.Label).Text; text != "beta" {
		t.Errorf("Expected bound text %q, got %q", "beta", text)
	}
}
