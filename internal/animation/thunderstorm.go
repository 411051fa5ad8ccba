package animation

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	// Storm rain is denser and faster than plain rain.
	stormDensity = 30

	// A lightning bolt becomes visible for flashTicks out of every
	// flashPeriod update ticks.
	flashPeriod = 45
	flashTicks  = 4

	boltRows = 6
)

var stormGlyphs = []rune{'/', '|', '/', '\''}

// Thunderstorm is the storm foreground layer: heavy slanted rain plus a
// periodic lightning bolt gated by an internal tick counter.
type Thunderstorm struct {
	drops  []raindrop
	width  int
	height int
	tick   int
}

func NewThunderstorm(width, height int) *Thunderstorm {
	t := &Thunderstorm{}
	t.populate(width, height)
	return t
}

func (t *Thunderstorm) populate(width, height int) {
	count := 0
	if width > 0 && height > 0 {
		count = width * height / stormDensity
	}

	drops := make([]raindrop, 0, count)
	for i := 0; i < count; i++ {
		drops = append(drops, raindrop{
			x:     (i * 11) % width,
			y:     math.Mod(float64(i)*2.9, float64(height)),
			speed: 0.5 + float64(i%4)*0.15,
			glyph: stormGlyphs[i%len(stormGlyphs)],
		})
	}

	t.drops = drops
	t.width = width
	t.height = height
}

func (t *Thunderstorm) Update(width, height int) {
	if width != t.width || height != t.height {
		t.populate(width, height)
		return
	}

	t.tick++
	for i := range t.drops {
		d := &t.drops[i]
		d.y += d.speed
		if int(d.y) >= height {
			d.y = 0
			d.x = (d.x*17 + 5) % width
		}
	}
}

// flashVisible reports whether the current tick falls inside the visible
// part of the flash cycle.
func (t *Thunderstorm) flashVisible() bool {
	return t.tick%flashPeriod < flashTicks
}

// boltColumn picks a deterministic column for the current flash cycle.
func (t *Thunderstorm) boltColumn() int {
	span := t.width - boltRows
	if span < 1 {
		span = 1
	}
	cycle := t.tick / flashPeriod
	return (cycle*31 + 17) % span
}

func (t *Thunderstorm) Render(s Surface) {
	for i := range t.drops {
		d := &t.drops[i]
		y := int(d.y)
		if d.x >= 0 && d.x < t.width && y >= 0 && y < t.height {
			s.SetCell(d.x, y, d.glyph, tcell.ColorBlue)
		}
	}

	if !t.flashVisible() {
		return
	}

	x := t.boltColumn()
	for row := 0; row < boltRows; row++ {
		ch := '\\'
		if row%2 == 1 {
			ch = '/'
		}
		bx := x + (boltRows-row)/2
		by := 2 + row
		if bx >= 0 && bx < t.width && by >= 0 && by < t.height {
			s.SetCell(bx, by, ch, tcell.ColorYellow)
		}
	}
}
