package model

import (
	"sync"
	"time"
)

// Quantity bounds offered by the entry form.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// Item is one packing-list entry.
// ID and Description are fixed at creation; only Packed changes afterwards.
type Item struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

// ClampQuantity pins q into MinQuantity..MaxQuantity.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// NewItem builds an unpacked item with the description exactly as given.
// It reports false when the description is empty, in which case nothing
// should be added.
func NewItem(id int64, description string, quantity int) (Item, bool) {
	if description == "" {
		return Item{}, false
	}
	return Item{
		ID:          id,
		Description: description,
		Quantity:    ClampQuantity(quantity),
	}, true
}

// IDSource hands out creation-time ids (unix milliseconds).
// Two calls within the same millisecond still get distinct ids.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDSource returns a source backed by now; nil means time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns the next id.
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
