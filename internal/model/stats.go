package model

import "fmt"

// Footer sentences that do not depend on the counts.
const (
	EmptyMessage    = "Start adding to your list! 🚀"
	CompleteMessage = "You have everything ready. Let's Go! ✈"
)

// Stats aggregates packing progress over a non-empty List.
type Stats struct {
	Total   int
	Packed  int
	Percent int // floor(Packed / Total * 100)
}

// Summarize computes Stats for l. It reports false for an empty list and
// does no arithmetic in that case.
func Summarize(l List) (Stats, bool) {
	if len(l) == 0 {
		return Stats{}, false
	}
	st := Stats{Total: len(l)}
	for _, it := range l {
		if it.Packed {
			st.Packed++
		}
	}
	st.Percent = st.Packed * 100 / st.Total
	return st, true
}

// Complete reports whether everything is packed.
func (s Stats) Complete() bool { return s.Percent == 100 }

// Message is the footer sentence for s.
func (s Stats) Message() string {
	if s.Complete() {
		return CompleteMessage
	}
	return fmt.Sprintf("You have %d items on your list, and you already packed %d (%d%%)",
		s.Total, s.Packed, s.Percent)
}

// StatsMessage is the footer sentence for l, including the empty case.
func StatsMessage(l List) string {
	st, ok := Summarize(l)
	if !ok {
		return EmptyMessage
	}
	return st.Message()
}
