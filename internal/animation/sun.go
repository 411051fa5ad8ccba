package animation

import "github.com/i474232898/weathr/internal/art"

// Sun cycles through pre-rendered frames instead of simulating particles.
// Advance runs on a slower timer than the main tick, so the rays shimmer
// without strobing.
type Sun struct {
	frames [][]string
	index  int
}

func NewSun() *Sun {
	return &Sun{frames: art.SunFrames}
}

// Advance steps to the next frame, wrapping at the end.
func (s *Sun) Advance() {
	s.index = (s.index + 1) % len(s.frames)
}

// Frame returns the lines of the current frame.
func (s *Sun) Frame() []string {
	return s.frames[s.index]
}

// FrameCount reports how many frames the cycle holds.
func (s *Sun) FrameCount() int {
	return len(s.frames)
}
