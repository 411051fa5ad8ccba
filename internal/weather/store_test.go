package weather

import "testing"

// TestHistoryRetention: the history never grows past its limit and keeps
// the most recent snapshots.
func TestHistoryRetention(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 10; i++ {
		h.Add(Snapshot{Temperature: float64(i)})
	}

	if got := h.Len(); got != 3 {
		t.Fatalf("history length = %d, want 3", got)
	}
	if h.Trend() != 1 {
		t.Fatalf("trend over rising temperatures = %d, want 1", h.Trend())
	}
}

// TestHistoryTrend covers rising, falling, flat and underfilled cases.
func TestHistoryTrend(t *testing.T) {
	h := NewHistory(10)
	if h.Trend() != 0 {
		t.Fatal("empty history must report a flat trend")
	}

	h.Add(Snapshot{Temperature: 20})
	if h.Trend() != 0 {
		t.Fatal("single snapshot must report a flat trend")
	}

	h.Add(Snapshot{Temperature: 18})
	if h.Trend() != -1 {
		t.Fatalf("trend = %d after a drop, want -1", h.Trend())
	}

	h.Add(Snapshot{Temperature: 18})
	if h.Trend() != 0 {
		t.Fatalf("trend = %d on equal temperatures, want 0", h.Trend())
	}
}
