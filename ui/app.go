package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/pkg/errors"

	"github.com/cellgrid/go-lifeview/utils"
)

// App assembles the window: the field on the left, the control column on the
// right, and the background engine that drives auto-play.
type App struct {
	cfg      utils.Config
	log      *slog.Logger
	session  *Session
	field    *Field
	controls *Controls
	engine   *Engine

	fyneApp fyne.App
	window  fyne.Window
}

// New builds the whole UI from config. Nothing is shown until Run.
func New(cfg utils.Config, log *slog.Logger) *App {
	a := &App{
		cfg:     cfg,
		log:     log,
		fyneApp: fyneapp.New(),
	}

	a.session = NewSession(cfg, log)
	a.field = NewField(a.session.Image(), cfg.FieldWidth, cfg.FieldHeight, cfg.CellSize, func(x, y int, alive bool) {
		a.session.Paint(x, y, alive)
		a.refresh()
	})
	a.field.SetGridVisible(cfg.ShowGrid)

	a.controls = buildControls(a.session, a.field, a.refresh)
	a.engine = NewEngine(a.session, a.refresh, log)

	a.window = a.fyneApp.NewWindow(cfg.WindowTitle)
	a.window.SetContent(container.NewBorder(nil, nil, nil, a.controls.box, a.field))
	a.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	a.window.SetFixedSize(true)
	a.window.CenterOnScreen()

	return a
}

// refresh pushes session state to the display. Safe to call from the engine
// goroutine; UI mutations are marshalled onto the main thread.
func (a *App) refresh() {
	changed := a.session.FlushImage()
	status := a.session.StatusLine()
	runOnMain(a.fyneApp.Driver(), func() {
		if changed {
			a.field.RefreshImage()
		}
		a.controls.Status.SetText(status)
	})
}

// Run shows the window and blocks until it is closed. The engine runs for the
// window's whole lifetime and is cancelled on close.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.engine.Run(ctx)
	}()

	a.window.SetOnClosed(cancel)
	a.window.ShowAndRun()

	cancel()
	if err := <-done; err != nil {
		return errors.Wrap(err, "[Run] engine stopped with error")
	}
	return nil
}

type mainThreadRunner interface {
	RunOnMain(func())
}

type mainThreadCaller interface {
	CallOnMainThread(func())
}

// runOnMain executes fn on the driver's main thread when the driver exposes a
// way to do so, and inline otherwise (which covers calls already made from
// widget callbacks).
func runOnMain(d fyne.Driver, fn func()) {
	switch drv := d.(type) {
	case mainThreadRunner:
		drv.RunOnMain(fn)
	case mainThreadCaller:
		drv.CallOnMainThread(fn)
	default:
		fn()
	}
}
