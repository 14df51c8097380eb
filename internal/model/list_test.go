package model

import (
	"testing"
	"time"
)

func sampleList() List {
	return List{
		{ID: 1, Description: "Passport", Quantity: 1},
		{ID: 2, Description: "Socks", Quantity: 3, Packed: true},
		{ID: 3, Description: "Charger", Quantity: 2},
	}
}

func TestList_Add_AppendsUnpackedItem(t *testing.T) {
	l := sampleList()
	it, ok := NewItem(10, "Socks", 3)
	if !ok {
		t.Fatalf("expected item to be created")
	}
	got := l.Add(it)
	if len(got) != len(l)+1 {
		t.Fatalf("expected len %d, got %d", len(l)+1, len(got))
	}
	last := got[len(got)-1]
	if last.ID != 10 || last.Description != "Socks" || last.Quantity != 3 {
		t.Fatalf("unexpected appended item: %+v", last)
	}
	if last.Packed {
		t.Fatalf("new item must start unpacked")
	}
	if len(l) != 3 {
		t.Fatalf("receiver changed: len=%d", len(l))
	}
}

func TestList_Add_DoesNotShareBackingArray(t *testing.T) {
	base := make(List, 0, 8)
	base = append(base, Item{ID: 1, Description: "a", Quantity: 1})
	a := base.Add(Item{ID: 2, Description: "b", Quantity: 1})
	b := base.Add(Item{ID: 3, Description: "c", Quantity: 1})
	if a[1].ID != 2 || b[1].ID != 3 {
		t.Fatalf("adds clobbered each other: a=%+v b=%+v", a, b)
	}
}

func TestNewItem_EmptyDescription(t *testing.T) {
	if _, ok := NewItem(1, "", 1); ok {
		t.Fatalf("expected empty description to be rejected")
	}
}

func TestNewItem_KeepsDescriptionAsTyped(t *testing.T) {
	for _, d := range []string{"  Socks  ", "   ", "\tHat"} {
		it, ok := NewItem(1, d, 1)
		if !ok {
			t.Fatalf("expected %q to be accepted", d)
		}
		if it.Description != d {
			t.Fatalf("expected description %q, got %q", d, it.Description)
		}
	}
}

func TestNewItem_ClampsQuantity(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 7: 7, 20: 20, 21: 20}
	for in, want := range cases {
		it, _ := NewItem(1, "x", in)
		if it.Quantity != want {
			t.Fatalf("quantity %d: expected %d, got %d", in, want, it.Quantity)
		}
	}
}

func TestList_TogglePacked_TwiceRestores(t *testing.T) {
	l := sampleList()
	once := l.TogglePacked(1)
	if !once[0].Packed {
		t.Fatalf("expected item 1 packed after one toggle")
	}
	if l[0].Packed {
		t.Fatalf("receiver changed by toggle")
	}
	twice := once.TogglePacked(1)
	for i := range l {
		if twice[i] != l[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, l[i], twice[i])
		}
	}
}

func TestList_TogglePacked_UnknownIDIsNoop(t *testing.T) {
	l := sampleList()
	got := l.TogglePacked(99)
	if len(got) != len(l) {
		t.Fatalf("len changed")
	}
	for i := range l {
		if got[i] != l[i] {
			t.Fatalf("item %d changed", i)
		}
	}
}

func TestList_Delete(t *testing.T) {
	l := sampleList()
	got := l.Delete(2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(l) != 3 || l[1].ID != 2 {
		t.Fatalf("receiver changed: %+v", l)
	}
}

func TestList_Delete_UnknownIDIsNoop(t *testing.T) {
	l := sampleList()
	got := l.Delete(42)
	if len(got) != len(l) {
		t.Fatalf("expected len %d, got %d", len(l), len(got))
	}
	for i := range l {
		if got[i] != l[i] {
			t.Fatalf("item %d changed", i)
		}
	}
}

func TestList_Clear(t *testing.T) {
	for _, l := range []List{nil, {}, sampleList()} {
		if got := l.Clear(); len(got) != 0 {
			t.Fatalf("expected empty list, got %+v", got)
		}
	}
}

func TestIDSource_MonotonicWithinSameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	src := NewIDSource(func() time.Time { return fixed })
	a, b, c := src.Next(), src.Next(), src.Next()
	if a != fixed.UnixMilli() {
		t.Fatalf("expected first id to be the timestamp, got %d", a)
	}
	if !(a < b && b < c) {
		t.Fatalf("expected strictly increasing ids, got %d %d %d", a, b, c)
	}
}
