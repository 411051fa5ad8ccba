package animation

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// One drop per this many cells of viewport area.
const rainDensity = 40

var rainGlyphs = []rune{'|', '\'', '.', '`'}

type raindrop struct {
	x     int
	y     float64
	speed float64
	glyph rune
}

// Raindrops is the plain-rain foreground layer: drops fall at per-drop
// speeds with sub-cell vertical accumulation and wrap back to the top.
type Raindrops struct {
	drops  []raindrop
	width  int
	height int
}

func NewRaindrops(width, height int) *Raindrops {
	r := &Raindrops{}
	r.populate(width, height)
	return r
}

func (r *Raindrops) populate(width, height int) {
	count := 0
	if width > 0 && height > 0 {
		count = width * height / rainDensity
	}

	drops := make([]raindrop, 0, count)
	for i := 0; i < count; i++ {
		drops = append(drops, raindrop{
			x:     (i * 7) % width,
			y:     math.Mod(float64(i)*3.7, float64(height)),
			speed: 0.3 + float64(i%5)*0.1,
			glyph: rainGlyphs[i%len(rainGlyphs)],
		})
	}

	r.drops = drops
	r.width = width
	r.height = height
}

func (r *Raindrops) Update(width, height int) {
	if width != r.width || height != r.height {
		r.populate(width, height)
		return
	}

	for i := range r.drops {
		d := &r.drops[i]
		d.y += d.speed
		if int(d.y) >= height {
			// Respawn at the top in a remapped column so drops do not
			// re-enter in a fixed band.
			d.y = 0
			d.x = (d.x*13 + 7) % width
		}
	}
}

func (r *Raindrops) Render(s Surface) {
	for i := range r.drops {
		d := &r.drops[i]
		y := int(d.y)
		if d.x >= 0 && d.x < r.width && y >= 0 && y < r.height {
			s.SetCell(d.x, y, d.glyph, tcell.ColorAqua)
		}
	}
}
