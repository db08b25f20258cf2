package ui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cellgrid/go-lifeview/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.FieldWidth = 8
	cfg.FieldHeight = 8
	return cfg
}

func TestStepInterval(t *testing.T) {
	tests := []struct {
		speed float64
		want  time.Duration
	}{
		{1.0, time.Second},
		{0.5, 250 * time.Millisecond},
		{0.1, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := StepInterval(tt.speed); got != tt.want {
			t.Errorf("StepInterval(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestSessionStartsClean(t *testing.T) {
	s := NewSession(testConfig(), testLogger())

	if s.AutoPlay() {
		t.Error("new session auto-playing, want paused")
	}
	if s.FlushImage() {
		t.Error("FlushImage() = true on a freshly rendered session, want false")
	}
	if got := s.Image().Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Errorf("image bounds = %dx%d, want 8x8", got.Dx(), got.Dy())
	}
}

func TestSessionSeedsInitialPattern(t *testing.T) {
	cfg := testConfig()
	cfg.InitialPattern = "blinker"
	s := NewSession(cfg, testLogger())

	if _, living := s.Snapshot(); living != 3 {
		t.Errorf("living = %d after blinker seed, want 3", living)
	}
}

func TestPaintMarksDirty(t *testing.T) {
	s := NewSession(testConfig(), testLogger())

	s.Paint(3, 3, true)
	if !s.FlushImage() {
		t.Error("FlushImage() = false after Paint, want true")
	}
	if s.FlushImage() {
		t.Error("FlushImage() = true twice in a row, want false once flushed")
	}
	if !s.grid.Get(3, 3) {
		t.Error("Paint(3, 3, true) did not set the cell")
	}

	s.Paint(3, 3, false)
	if s.grid.Get(3, 3) {
		t.Error("Paint(3, 3, false) did not clear the cell")
	}
}

func TestStepAdvancesGeneration(t *testing.T) {
	cfg := testConfig()
	cfg.InitialPattern = "blinker"
	s := NewSession(cfg, testLogger())

	s.Step()

	if gen, _ := s.Snapshot(); gen != 1 {
		t.Errorf("generation = %d after one Step, want 1", gen)
	}
	if !s.FlushImage() {
		t.Error("FlushImage() = false after Step, want true")
	}
}

func TestTickAutoStepPaused(t *testing.T) {
	s := NewSession(testConfig(), testLogger())

	if s.TickAutoStep(time.Now().Add(time.Hour)) {
		t.Error("TickAutoStep stepped while paused")
	}
}

func TestTickAutoStepHonorsInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Speed = 0.5 // 250ms interval
	s := NewSession(cfg, testLogger())
	s.ToggleAutoPlay()

	start := time.Now()
	s.mu.Lock()
	s.lastStep = start
	s.mu.Unlock()

	if s.TickAutoStep(start.Add(100 * time.Millisecond)) {
		t.Error("TickAutoStep stepped before the interval elapsed")
	}
	if !s.TickAutoStep(start.Add(300 * time.Millisecond)) {
		t.Error("TickAutoStep did not step after the interval elapsed")
	}
	// The stopwatch restarts on a step, so the same instant cannot step twice.
	if s.TickAutoStep(start.Add(300 * time.Millisecond)) {
		t.Error("TickAutoStep stepped twice without the stopwatch elapsing")
	}
}

func TestToggleAutoPlay(t *testing.T) {
	s := NewSession(testConfig(), testLogger())

	if got := s.ToggleAutoPlay(); !got {
		t.Error("first ToggleAutoPlay() = false, want true")
	}
	if got := s.ToggleAutoPlay(); got {
		t.Error("second ToggleAutoPlay() = true, want false")
	}
}

func TestFillRandomAndClear(t *testing.T) {
	s := NewSession(testConfig(), testLogger())

	s.FillRandom()
	s.Clear()
	if _, living := s.Snapshot(); living != 0 {
		t.Errorf("living = %d after Clear, want 0", living)
	}
	if !s.FlushImage() {
		t.Error("FlushImage() = false after mutations, want true")
	}
}

func TestStatusLine(t *testing.T) {
	s := NewSession(testConfig(), testLogger())
	if got := s.StatusLine(); !strings.Contains(got, "Extinct") {
		t.Errorf("StatusLine() = %q for empty grid, want it to report Extinct", got)
	}

	s.Paint(3, 3, true)
	s.Paint(4, 3, true)
	s.Paint(3, 4, true)
	s.Paint(4, 4, true)
	if got := s.StatusLine(); !strings.Contains(got, "Active") {
		t.Errorf("StatusLine() = %q with a live block, want it to report Active", got)
	}

	// A still life eventually reads as stagnant.
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if got := s.StatusLine(); !strings.Contains(got, "Stagnant") {
		t.Errorf("StatusLine() = %q after repeated still-life steps, want it to report Stagnant", got)
	}
}

func TestSpeedAndGridSettings(t *testing.T) {
	s := NewSession(testConfig(), testLogger())

	s.SetSpeed(0.3)
	if got := s.Speed(); got != 0.3 {
		t.Errorf("Speed() = %v, want 0.3", got)
	}

	s.SetShowGrid(false)
	if s.ShowGrid() {
		t.Error("ShowGrid() = true after SetShowGrid(false)")
	}
}
