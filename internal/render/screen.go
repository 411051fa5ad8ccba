// Package render owns the terminal surface: raw-mode alternate screen,
// viewport size tracking, buffered cell writes and atomic flushes.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen wraps a tcell.Screen with the operations the scene composer and
// animation systems need. Writes are buffered until Flush commits them in
// one atomic update, so full-frame redraws never flicker.
type Screen struct {
	tc     tcell.Screen
	width  int
	height int
}

// New opens a screen on the real terminal.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewFrom(tc), nil
}

// NewFrom wraps an existing tcell screen. Tests pass a SimulationScreen.
func NewFrom(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Init enters the raw-mode alternate screen and hides the cursor. Errors
// here are fatal setup errors; the caller aborts before the loop starts.
func (s *Screen) Init() error {
	if err := s.tc.Init(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.tc.HideCursor()
	s.tc.Clear()
	s.width, s.height = s.tc.Size()
	return nil
}

// Cleanup restores the original terminal state. Safe to call from a
// deferred path on any exit, including panics.
func (s *Screen) Cleanup() {
	s.tc.Fini()
}

// UpdateSize re-queries the terminal and refreshes the cached dimensions.
func (s *Screen) UpdateSize() {
	s.width, s.height = s.tc.Size()
}

// Size returns the cached viewport dimensions.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Clear erases the whole back buffer. Nothing is visible until Flush.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// SetCell queues a single glyph at the given coordinates. Styles are per
// cell, so color never bleeds into later writes. Callers drop coordinates
// outside the viewport; no clipping happens here.
func (s *Screen) SetCell(x, y int, ch rune, color tcell.Color) {
	s.tc.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(color))
}

// WriteLine queues a run of text starting at (x, y), advancing by display
// width so wide runes keep their columns.
func (s *Screen) WriteLine(x, y int, text string, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	col := x
	for _, r := range text {
		s.tc.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// WriteCentered queues a block of lines horizontally centered on the
// widest line. Content wider than the surface gets a zero left margin.
func (s *Screen) WriteCentered(lines []string, startRow int) {
	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	startCol := 0
	if s.width > maxWidth {
		startCol = (s.width - maxWidth) / 2
	}

	for i, line := range lines {
		s.WriteLine(startCol, startRow+i, line, tcell.ColorDefault)
	}
}

// Flush commits all queued writes as one atomic terminal update.
func (s *Screen) Flush() {
	s.tc.Show()
}

// Events starts delivering terminal events (keys, resizes) on the
// returned channel until quit is closed.
func (s *Screen) Events(quit <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event, 8)
	go s.tc.ChannelEvents(ch, quit)
	return ch
}
