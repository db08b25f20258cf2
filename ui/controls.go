package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Play/pause button labels.
const (
	labelPlay  = "Play ▶"
	labelPause = "Pause ■"
)

// Controls bundles the playback widgets in the right-hand column
type Controls struct {
	Random *widget.Button
	Clear  *widget.Button
	Play   *widget.Button
	Step   *widget.Button
	Speed  *widget.Slider
	Grid   *widget.Check
	Status *widget.Label

	box fyne.CanvasObject
}

// buildControls wires the control column to the session. refresh re-renders
// the field and status line after any mutation.
func buildControls(s *Session, field *Field, refresh func()) *Controls {
	c := &Controls{}

	c.Random = widget.NewButton("Random", func() {
		s.FillRandom()
		refresh()
	})

	c.Clear = widget.NewButton("Clear", func() {
		s.Clear()
		refresh()
	})

	c.Play = widget.NewButton(labelPlay, func() {
		if s.ToggleAutoPlay() {
			c.Play.SetText(labelPause)
		} else {
			c.Play.SetText(labelPlay)
		}
	})
	if s.AutoPlay() {
		c.Play.SetText(labelPause)
	}

	c.Step = widget.NewButton("Step", func() {
		s.Step()
		refresh()
	})

	c.Speed = widget.NewSlider(0.1, 1.0)
	c.Speed.Step = 0.01
	c.Speed.Value = s.Speed()
	c.Speed.OnChanged = func(v float64) {
		s.SetSpeed(v)
	}

	c.Grid = widget.NewCheck("Grid", func(checked bool) {
		s.SetShowGrid(checked)
		field.SetGridVisible(checked)
	})
	c.Grid.Checked = s.ShowGrid()

	c.Status = widget.NewLabel(s.StatusLine())

	c.box = container.NewVBox(
		c.Random,
		c.Clear,
		c.Play,
		widget.NewLabel("Speed"),
		c.Speed,
		c.Step,
		c.Grid,
		widget.NewSeparator(),
		c.Status,
	)
	return c
}
