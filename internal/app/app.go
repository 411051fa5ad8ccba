// Package app owns the scene composer: the session state derived from
// weather snapshots and the fixed-rate loop that layers the animation
// systems onto the terminal.
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/i474232898/weathr/internal/animation"
	"github.com/i474232898/weathr/internal/art"
	"github.com/i474232898/weathr/internal/config"
	"github.com/i474232898/weathr/internal/render"
	"github.com/i474232898/weathr/internal/weather"
)

const historyLimit = 96

// layer identifies one drawable scene layer; layers render back to front.
type layer int

const (
	layerClouds layer = iota
	layerBirds
	layerSun
	layerHouse
	layerStorm
	layerRain
)

// activeLayers returns the draw order for a set of scene flags:
// background (clouds, birds), sun, house, then foreground precipitation
// where storm overrides rain.
func activeLayers(f weather.SceneFlags) []layer {
	layers := make([]layer, 0, 4)
	if f.Cloudy {
		layers = append(layers, layerClouds)
	}
	if !f.Raining && !f.Thunderstorm {
		layers = append(layers, layerBirds)
	}
	if f.ShowSun && !f.Raining && !f.Thunderstorm {
		layers = append(layers, layerSun)
	}
	layers = append(layers, layerHouse)
	switch {
	case f.Thunderstorm:
		layers = append(layers, layerStorm)
	case f.Raining:
		layers = append(layers, layerRain)
	}
	return layers
}

// Session is the one mutable value holding everything a running scene
// needs: the current snapshot, derived flags, timers and the five
// animation systems. It is owned and mutated only by the tick loop.
type Session struct {
	cfg    *config.Config
	screen *render.Screen
	loc    weather.Location

	refresher *Refresher
	mailbox   *Mailbox
	history   *weather.History

	current  *weather.Snapshot
	fetchErr string
	flags    weather.SceneFlags

	rain   *animation.Raindrops
	storm  *animation.Thunderstorm
	clouds *animation.Clouds
	birds  *animation.Birds
	sun    *animation.Sun

	lastFrame time.Time
}

func newSession(cfg *config.Config, screen *render.Screen) *Session {
	w, h := screen.Size()
	return &Session{
		cfg:     cfg,
		screen:  screen,
		loc:     weather.Location{Latitude: cfg.Location.Latitude, Longitude: cfg.Location.Longitude},
		history: weather.NewHistory(historyLimit),
		// Sunny default until the first snapshot arrives.
		flags:     weather.SceneFlags{ShowSun: true},
		rain:      animation.NewRaindrops(w, h),
		storm:     animation.NewThunderstorm(w, h),
		clouds:    animation.NewClouds(w, h),
		birds:     animation.NewBirds(w, h),
		sun:       animation.NewSun(),
		lastFrame: time.Now(),
	}
}

// New builds a live session that refreshes weather through the client on
// the configured interval.
func New(cfg *config.Config, screen *render.Screen, client *weather.Client) *Session {
	s := newSession(cfg, screen)
	s.mailbox = NewMailbox()
	s.refresher = NewRefresher(client, s.loc, weather.DefaultUnits(), cfg.RefreshInterval, s.mailbox)
	return s
}

// NewSimulated builds a session locked to a forced condition. No
// refresher exists, so the provider is never invoked.
func NewSimulated(cfg *config.Config, screen *render.Screen, cond weather.Condition) *Session {
	s := newSession(cfg, screen)
	s.applySnapshot(weather.Simulated(cond))
	return s
}

func (s *Session) applySnapshot(snap weather.Snapshot) {
	s.current = &snap
	s.flags = weather.FlagsFor(snap.Condition)
	s.fetchErr = ""
	s.history.Add(snap)
}

// drainMailbox applies at most one pending refresh outcome. Errors keep
// the previously held snapshot and only replace the status string.
func (s *Session) drainMailbox() {
	if s.mailbox == nil {
		return
	}
	u, ok := s.mailbox.Take()
	if !ok {
		return
	}
	if u.Err != nil {
		s.fetchErr = fmt.Sprintf("Error fetching weather: %v", u.Err)
		return
	}
	s.applySnapshot(u.Snapshot)
}

func (s *Session) trendGlyph() string {
	switch s.history.Trend() {
	case 1:
		return " ▲"
	case -1:
		return " ▼"
	}
	return ""
}

func (s *Session) headerLine() string {
	if s.fetchErr != "" {
		return fmt.Sprintf("%s | Location: %.2f°N, %.2f°E | Press 'q' to quit",
			s.fetchErr, s.loc.Latitude, s.loc.Longitude)
	}
	if s.current != nil {
		return fmt.Sprintf("Weather: %s | Temp: %.1f°C%s | Location: %.2f°N, %.2f°E | Press 'q' to quit",
			s.current.Condition.DisplayName(), s.current.Temperature, s.trendGlyph(),
			s.loc.Latitude, s.loc.Longitude)
	}
	return fmt.Sprintf("Weather: Loading... | Location: %.2f°N, %.2f°E | Press 'q' to quit",
		s.loc.Latitude, s.loc.Longitude)
}

// drawFrame composes one full frame into the back buffer.
func (s *Session) drawFrame(width, height int) {
	s.screen.Clear()
	s.screen.WriteLine(2, 1, s.headerLine(), tcell.ColorAqua)

	for _, l := range activeLayers(s.flags) {
		switch l {
		case layerClouds:
			s.clouds.Update(width, height)
			s.clouds.Render(s.screen)
		case layerBirds:
			s.birds.Update(width, height)
			s.birds.Render(s.screen)
		case layerSun:
			y := 2
			if height > 20 {
				y = 3
			}
			s.screen.WriteCentered(s.sun.Frame(), y)
		case layerHouse:
			y := 9
			if height > 20 {
				y = 10
			}
			s.screen.WriteCentered(art.House(), y)
		case layerStorm:
			s.storm.Update(width, height)
			s.storm.Render(s.screen)
		case layerRain:
			s.rain.Update(width, height)
			s.rain.Render(s.screen)
		}
	}
}

// poll waits for one terminal event up to the configured timeout and
// reports whether the session should terminate.
func (s *Session) poll(events <-chan tcell.Event) bool {
	timer := time.NewTimer(s.cfg.PollTimeout)
	defer timer.Stop()

	select {
	case ev := <-events:
		switch e := ev.(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlC {
				return true
			}
			if e.Key() == tcell.KeyRune && (e.Rune() == 'q' || e.Rune() == 'Q') {
				return true
			}
		case *tcell.EventResize:
			// Dimensions are re-read at the top of the next tick; the
			// systems repopulate themselves on the mismatch.
		}
	case <-timer.C:
	}
	return false
}

// advanceSun steps the sun frame on its own slower timer, and only when
// no precipitation layer hides the sun.
func (s *Session) advanceSun() {
	if s.flags.Raining || s.flags.Thunderstorm {
		return
	}
	if time.Since(s.lastFrame) >= s.cfg.FrameDelay {
		s.sun.Advance()
		s.lastFrame = time.Now()
	}
}

// Run drives the tick loop until the user quits. Each tick is strictly
// sequential: refresh drain, resize check, compose, flush, input poll.
func (s *Session) Run() error {
	if s.refresher != nil {
		if err := s.refresher.Start(); err != nil {
			return fmt.Errorf("start weather refresh: %w", err)
		}
		defer s.refresher.Stop()
	}

	quit := make(chan struct{})
	defer close(quit)
	events := s.screen.Events(quit)

	for {
		s.drainMailbox()

		s.screen.UpdateSize()
		width, height := s.screen.Size()

		s.drawFrame(width, height)
		s.screen.Flush()

		if s.poll(events) {
			return nil
		}
		s.advanceSun()
	}
}
