package weather

import "sync"

// History keeps a bounded, time-ordered run of snapshots for the current
// session. The header uses it to show a temperature trend between the two
// most recent readings.
type History struct {
	mu    sync.Mutex
	max   int
	snaps []Snapshot
}

// NewHistory creates a history retaining at most max snapshots.
// max <= 0 is treated as unlimited.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Add appends a snapshot and enforces the retention limit.
func (h *History) Add(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snaps = append(h.snaps, s)
	if h.max > 0 && len(h.snaps) > h.max {
		h.snaps = h.snaps[len(h.snaps)-h.max:]
	}
}

// Len reports how many snapshots are retained.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.snaps)
}

// Trend compares the two most recent temperatures: +1 rising, -1 falling,
// 0 when flat or when fewer than two snapshots are held.
func (h *History) Trend() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.snaps) < 2 {
		return 0
	}
	prev := h.snaps[len(h.snaps)-2].Temperature
	last := h.snaps[len(h.snaps)-1].Temperature
	switch {
	case last > prev:
		return 1
	case last < prev:
		return -1
	}
	return 0
}
