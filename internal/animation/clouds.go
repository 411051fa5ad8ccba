package animation

import "github.com/gdamore/tcell/v2"

// One cloud tuft per this many cells of viewport area.
const cloudDensity = 160

var cloudShapes = []string{"(~~~)", ".--.", "(``)"}

type cloud struct {
	x     float64
	y     int
	speed float64
	shape string
}

// Clouds is the background layer of small tufts drifting horizontally
// through the upper third of the viewport.
type Clouds struct {
	clouds []cloud
	width  int
	height int
}

func NewClouds(width, height int) *Clouds {
	c := &Clouds{}
	c.populate(width, height)
	return c
}

// cloudBand returns the height of the sky strip clouds occupy.
func cloudBand(height int) int {
	band := height / 3
	if band < 1 {
		band = 1
	}
	return band
}

func (c *Clouds) populate(width, height int) {
	count := 0
	if width > 0 && height > 0 {
		count = width * height / cloudDensity
	}

	band := cloudBand(height)
	clouds := make([]cloud, 0, count)
	for i := 0; i < count; i++ {
		clouds = append(clouds, cloud{
			x:     float64((i * 29) % width),
			y:     1 + (i*5)%band,
			speed: 0.1 + float64(i%3)*0.08,
			shape: cloudShapes[i%len(cloudShapes)],
		})
	}

	c.clouds = clouds
	c.width = width
	c.height = height
}

func (c *Clouds) Update(width, height int) {
	if width != c.width || height != c.height {
		c.populate(width, height)
		return
	}

	band := cloudBand(height)
	for i := range c.clouds {
		cl := &c.clouds[i]
		cl.x += cl.speed
		if int(cl.x) >= width {
			// Re-enter from the left edge on a remapped row.
			cl.x = -float64(len(cl.shape))
			cl.y = 1 + (cl.y*7+3)%band
		}
	}
}

func (c *Clouds) Render(s Surface) {
	for i := range c.clouds {
		cl := &c.clouds[i]
		if cl.y < 0 || cl.y >= c.height {
			continue
		}
		start := int(cl.x)
		for j, r := range cl.shape {
			x := start + j
			if x >= 0 && x < c.width {
				s.SetCell(x, cl.y, r, tcell.ColorGray)
			}
		}
	}
}
