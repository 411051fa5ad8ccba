package animation

import "github.com/gdamore/tcell/v2"

const (
	// One bird per this many cells, with a floor so even tiny terminals
	// get some motion on clear days.
	birdDensity  = 200
	minBirds     = 2
	flapInterval = 4
)

type bird struct {
	x     float64
	y     int
	speed float64
	phase int
}

// Birds is the fair-weather background layer: a handful of birds gliding
// across the upper sky, flapping between two wing glyphs.
type Birds struct {
	birds  []bird
	width  int
	height int
}

func NewBirds(width, height int) *Birds {
	b := &Birds{}
	b.populate(width, height)
	return b
}

func (b *Birds) populate(width, height int) {
	count := 0
	if width > 0 && height > 0 {
		count = width * height / birdDensity
		if count < minBirds {
			count = minBirds
		}
	}

	band := cloudBand(height)
	birds := make([]bird, 0, count)
	for i := 0; i < count; i++ {
		birds = append(birds, bird{
			x:     float64((i * 37) % width),
			y:     1 + (i*3)%band,
			speed: 0.2 + float64(i%4)*0.1,
			phase: i % flapInterval,
		})
	}

	b.birds = birds
	b.width = width
	b.height = height
}

func (b *Birds) Update(width, height int) {
	if width != b.width || height != b.height {
		b.populate(width, height)
		return
	}

	band := cloudBand(height)
	for i := range b.birds {
		bd := &b.birds[i]
		bd.x += bd.speed
		bd.phase++
		if int(bd.x) >= width {
			bd.x = 0
			bd.y = 1 + (bd.y*11+5)%band
		}
	}
}

func (b *Birds) Render(s Surface) {
	for i := range b.birds {
		bd := &b.birds[i]
		x := int(bd.x)
		if x < 0 || x >= b.width || bd.y < 0 || bd.y >= b.height {
			continue
		}
		glyph := 'v'
		if (bd.phase/flapInterval)%2 == 1 {
			glyph = '~'
		}
		s.SetCell(x, bd.y, glyph, tcell.ColorWhite)
	}
}
