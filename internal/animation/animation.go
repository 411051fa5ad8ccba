// Package animation holds the particle-style animation systems that make
// up the weather scene. Each system owns its particle population, scales
// it with viewport area, and regenerates it wholesale when the viewport
// changes. Seeding and respawn use index arithmetic rather than an RNG,
// so a given viewport always produces the same population.
package animation

import "github.com/gdamore/tcell/v2"

// Surface receives single-glyph writes from animation systems. The real
// terminal screen satisfies it; tests substitute a recorder.
type Surface interface {
	SetCell(x, y int, ch rune, color tcell.Color)
}

// System is the contract every animation layer implements: advance one
// tick for the given viewport, then draw the in-bounds particles.
type System interface {
	Update(width, height int)
	Render(s Surface)
}
