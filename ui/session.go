package ui

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/cellgrid/go-lifeview/model"
	"github.com/cellgrid/go-lifeview/utils"
)

// Session owns every piece of mutable visualizer state: the grid, the derived
// cell image, playback settings, and the auto-step stopwatch. All access goes
// through its methods; the mutex serializes the GUI thread's input callbacks
// against the background step loop.
type Session struct {
	mu sync.Mutex

	grid  *model.Grid
	img   *image.RGBA
	stats *utils.Stats
	log   *slog.Logger

	autoPlay    bool
	speed       float64
	showGrid    bool
	dirty       bool
	fillDensity float64

	lastStep  time.Time // stopwatch for the auto-step interval
	lastFrame time.Time // duration source for generations/sec
	stagnant  int
	threshold int // consecutive stagnant generations before reporting it
}

// NewSession builds a session from config: fresh grid, optional initial seed,
// image rendered once so the first frame is valid.
func NewSession(cfg utils.Config, log *slog.Logger) *Session {
	grid := model.NewGrid(cfg.FieldWidth, cfg.FieldHeight)
	grid.Seed(cfg.InitialPattern, cfg.RandomDensity)

	img := model.NewFieldImage(grid)
	model.RenderToImage(grid, img)

	return &Session{
		grid:        grid,
		img:         img,
		stats:       utils.NewStats(),
		log:         log,
		autoPlay:    cfg.AutoPlay,
		speed:       cfg.Speed,
		showGrid:    cfg.ShowGrid,
		fillDensity: cfg.RandomDensity,
		lastStep:    time.Now(),
		lastFrame:   time.Now(),
		threshold:   cfg.StagnationThreshold,
	}
}

// Image returns the cell image backing the field display. The buffer identity
// never changes; only FlushImage rewrites its pixels.
func (s *Session) Image() *image.RGBA { return s.img }

// FillRandom repopulates the field at the configured density and marks the
// image stale
func (s *Session) FillRandom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.FillRandom(s.fillDensity)
	s.dirty = true
	s.stagnant = 0
	s.log.Debug("field randomized", "living", s.grid.CountLiving())
}

// Clear kills the whole field and marks the image stale
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.dirty = true
	s.stagnant = 0
	s.log.Debug("field cleared")
}

// Paint sets one interior cell from mouse editing
func (s *Session) Paint(x, y int, alive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Set(x, y, alive)
	s.dirty = true
}

// Step advances one generation by explicit request and restarts the auto-step
// stopwatch, matching the behavior of the step control.
func (s *Session) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step(time.Now())
}

// TickAutoStep advances one generation if auto-play is on and the stopwatch
// has reached the speed-derived interval. It reports whether a step happened.
func (s *Session) TickAutoStep(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.autoPlay || now.Sub(s.lastStep) < StepInterval(s.speed) {
		return false
	}
	s.step(now)
	return true
}

// step runs one generation under the lock held by the caller
func (s *Session) step(now time.Time) {
	s.grid.RecordHistory()
	s.grid.Update()
	s.dirty = true
	s.lastStep = now

	living := s.grid.CountLiving()
	s.stats.Update(s.stats.TotalGenerations+1, living, now.Sub(s.lastFrame))
	s.lastFrame = now

	if s.grid.IsStagnant() {
		s.stagnant++
	} else {
		s.stagnant = 0
	}

	s.log.Debug("generation complete",
		"generation", s.stats.TotalGenerations,
		"living", living,
		"stagnant", s.stagnant,
	)
}

// FlushImage re-renders the cell image if the grid changed since the last
// flush, and reports whether it did. Callers refresh the on-screen canvas
// only when it returns true.
func (s *Session) FlushImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return false
	}
	model.RenderToImage(s.grid, s.img)
	s.dirty = false
	return true
}

// ToggleAutoPlay flips between paused and auto-playing and returns the new
// state. Entering auto-play restarts the stopwatch so the first automatic
// step waits a full interval.
func (s *Session) ToggleAutoPlay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoPlay = !s.autoPlay
	if s.autoPlay {
		s.lastStep = time.Now()
	}
	s.log.Debug("auto-play toggled", "playing", s.autoPlay)
	return s.autoPlay
}

// AutoPlay reports whether the session is currently auto-playing
func (s *Session) AutoPlay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoPlay
}

// SetSpeed stores the slider value used to derive the auto-step interval
func (s *Session) SetSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed = speed
}

// Speed returns the current slider value
func (s *Session) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// SetShowGrid stores the grid-overlay toggle
func (s *Session) SetShowGrid(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showGrid = show
}

// ShowGrid reports whether the grid overlay is enabled
func (s *Session) ShowGrid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showGrid
}

// StatusLine summarizes the session for the status label
func (s *Session) StatusLine() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	living := s.grid.CountLiving()
	status := "Active"
	switch {
	case living == 0:
		status = "Extinct"
	case s.stagnant >= s.threshold:
		status = "Stagnant"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | %.1f gen/sec | %s",
		s.stats.TotalGenerations, living, s.stats.GenerationsPerSecond, status)
}

// Snapshot returns generation count and population for the periodic stats log
func (s *Session) Snapshot() (generation, living int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.TotalGenerations, s.grid.CountLiving()
}

// StepInterval converts the slider value into the elapsed-time threshold for
// auto-stepping. The interval is the square of the slider value in seconds,
// replicated as observed in the reference behavior rather than linearized.
func StepInterval(speed float64) time.Duration {
	return time.Duration(speed * speed * float64(time.Second))
}
