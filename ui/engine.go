package ui

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// tickInterval bounds how often the step loop polls the stopwatch. The
	// loop only performs a generation when the session says one is due.
	tickInterval = 16 * time.Millisecond

	// statsInterval spaces the periodic population log lines.
	statsInterval = 2 * time.Second
)

// Engine drives auto-play in the background: one goroutine polls the session
// for due steps, another periodically logs population stats. Both stop when
// the context is cancelled, which Run ties to the window closing.
type Engine struct {
	session *Session
	refresh func()
	log     *slog.Logger
}

// NewEngine wires the background loops to a session. refresh is invoked after
// every automatic step to push the new frame to the display.
func NewEngine(session *Session, refresh func(), log *slog.Logger) *Engine {
	return &Engine{
		session: session,
		refresh: refresh,
		log:     log,
	}
}

// Run blocks until the context is cancelled, then returns nil
func (e *Engine) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.stepLoop(ctx) })
	g.Go(func() error { return e.statsLoop(ctx) })
	return g.Wait()
}

// stepLoop performs due auto-steps once per tick
func (e *Engine) stepLoop(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if e.session.TickAutoStep(now) {
				e.refresh()
			}
		}
	}
}

// statsLoop logs generation and population counts while auto-playing
func (e *Engine) statsLoop(ctx context.Context) error {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !e.session.AutoPlay() {
				continue
			}
			generation, living := e.session.Snapshot()
			e.log.Info("simulation running", "generation", generation, "living", living)
		}
	}
}
