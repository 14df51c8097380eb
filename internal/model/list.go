package model

// List is the ordered item collection; insertion order is the "input" order.
//
// Methods never write through the receiver. Each one that changes something
// returns a freshly allocated List, so callers holding the old value keep
// seeing the old contents.
type List []Item

// Add returns a copy of l with it appended.
func (l List) Add(it Item) List {
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, it)
}

// Delete returns l without the item whose ID is id.
// When no item matches, l itself is returned.
func (l List) Delete(id int64) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// TogglePacked returns a copy of l with the Packed flag of id flipped.
// When no item matches, l itself is returned.
func (l List) TogglePacked(id int64) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := make(List, len(l))
	copy(out, l)
	out[i].Packed = !out[i].Packed
	return out
}

// Clear returns an empty list.
func (l List) Clear() List { return List{} }

func (l List) index(id int64) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}
