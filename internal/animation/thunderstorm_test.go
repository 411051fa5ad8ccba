package animation

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestFlashDutyCycle verifies the bolt is visible exactly flashTicks out
// of every flashPeriod update ticks.
func TestFlashDutyCycle(t *testing.T) {
	s := NewThunderstorm(80, 24)

	visible := 0
	for tick := 0; tick < flashPeriod; tick++ {
		s.Update(80, 24)
		if s.flashVisible() {
			visible++
		}
	}
	if visible != flashTicks {
		t.Fatalf("flash visible %d ticks per period, want %d", visible, flashTicks)
	}
}

// TestFlashRendersBolt checks yellow bolt glyphs appear only while the
// flash window is open.
func TestFlashRendersBolt(t *testing.T) {
	s := NewThunderstorm(80, 24)

	sawBolt := false
	for tick := 0; tick < flashPeriod*2; tick++ {
		s.Update(80, 24)
		rec := newRecorder(80, 24)
		s.Render(rec)

		boltCells := 0
		for _, c := range rec.writes {
			if c.color == tcell.ColorYellow {
				boltCells++
			}
		}

		if s.flashVisible() {
			if boltCells == 0 {
				t.Fatalf("tick %d: flash window open but no bolt drawn", tick)
			}
			sawBolt = true
		} else if boltCells != 0 {
			t.Fatalf("tick %d: bolt drawn outside flash window", tick)
		}
	}
	if !sawBolt {
		t.Fatal("no flash occurred across two full periods")
	}
}

// TestBoltColumnMoves: consecutive flash cycles strike different,
// deterministically chosen columns.
func TestBoltColumnMoves(t *testing.T) {
	s := NewThunderstorm(80, 24)

	s.tick = 0
	first := s.boltColumn()
	s.tick = flashPeriod
	second := s.boltColumn()

	if first == second {
		t.Fatalf("bolt column did not move between cycles (%d)", first)
	}

	span := 80 - boltRows
	for _, col := range []int{first, second} {
		if col < 0 || col >= span {
			t.Fatalf("bolt column %d outside [0,%d)", col, span)
		}
	}
}
