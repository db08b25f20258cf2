package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Overlay colors for the field display.
var (
	colorGridLine  = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	colorHighlight = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
)

// Field is the widget showing the cell image scaled up to the display size,
// with an optional grid-line overlay and an orange highlight following the
// pointer. Pointer input is turned into cell edits: the primary button paints
// cells alive, the secondary button paints them dead, and holding a button
// while moving keeps painting.
type Field struct {
	widget.BaseWidget

	cols, rows int
	cellSize   int

	view    *canvas.Image
	overlay *canvas.Image
	hover   *canvas.Rectangle

	held    desktop.MouseButton
	onPaint func(x, y int, alive bool)
}

var (
	_ desktop.Mouseable  = (*Field)(nil)
	_ desktop.Hoverable  = (*Field)(nil)
	_ desktop.Cursorable = (*Field)(nil)
	_ fyne.Draggable     = (*Field)(nil)
)

// NewField wraps the session's cell image in a display widget. onPaint
// receives interior grid coordinates (1-based) for every edited cell.
func NewField(img image.Image, cols, rows, cellSize int, onPaint func(x, y int, alive bool)) *Field {
	f := &Field{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		onPaint:  onPaint,
	}

	f.view = canvas.NewImageFromImage(img)
	f.view.FillMode = canvas.ImageFillStretch
	// Nearest-neighbor, so each cell scales to a crisp square.
	f.view.ScaleMode = canvas.ImageScalePixels

	f.overlay = canvas.NewImageFromImage(buildGridOverlay(cols, rows, cellSize))
	f.overlay.FillMode = canvas.ImageFillStretch
	f.overlay.ScaleMode = canvas.ImageScalePixels

	f.hover = canvas.NewRectangle(colorHighlight)
	f.hover.Hide()

	f.ExtendBaseWidget(f)
	return f
}

// CreateRenderer implements fyne.Widget
func (f *Field) CreateRenderer() fyne.WidgetRenderer {
	return &fieldRenderer{f: f}
}

// RefreshImage redraws the cell image after its pixels changed
func (f *Field) RefreshImage() {
	f.view.Refresh()
}

// SetGridVisible shows or hides the grid-line overlay
func (f *Field) SetGridVisible(visible bool) {
	if visible {
		f.overlay.Show()
	} else {
		f.overlay.Hide()
	}
	f.Refresh()
}

// Cursor hides the OS pointer over the field; the cell highlight stands in
// for it.
func (f *Field) Cursor() desktop.Cursor {
	return desktop.HiddenCursor
}

// MouseDown starts painting with the pressed button
func (f *Field) MouseDown(e *desktop.MouseEvent) {
	f.held = e.Button
	f.paintAt(e.Position)
}

// MouseUp stops painting
func (f *Field) MouseUp(*desktop.MouseEvent) {
	f.held = 0
}

// MouseIn shows the cell highlight
func (f *Field) MouseIn(e *desktop.MouseEvent) {
	f.moveHover(e.Position)
}

// MouseMoved tracks the highlight and keeps painting while a button is held
func (f *Field) MouseMoved(e *desktop.MouseEvent) {
	f.moveHover(e.Position)
	if f.held != 0 {
		f.paintAt(e.Position)
	}
}

// MouseOut hides the highlight and stops painting
func (f *Field) MouseOut() {
	f.held = 0
	f.hover.Hide()
	f.hover.Refresh()
}

// Dragged covers drivers that deliver press-and-move as a drag rather than
// mouse-move events.
func (f *Field) Dragged(e *fyne.DragEvent) {
	f.moveHover(e.Position)
	if f.held != 0 {
		f.paintAt(e.Position)
	}
}

// DragEnd implements fyne.Draggable
func (f *Field) DragEnd() {}

// cellAt maps a widget-local position to 1-based interior grid coordinates
func (f *Field) cellAt(pos fyne.Position) (x, y int, ok bool) {
	if pos.X < 0 || pos.Y < 0 {
		return 0, 0, false
	}
	cx := int(pos.X) / f.cellSize
	cy := int(pos.Y) / f.cellSize
	if cx >= f.cols || cy >= f.rows {
		return 0, 0, false
	}
	return cx + 1, cy + 1, true
}

func (f *Field) paintAt(pos fyne.Position) {
	x, y, ok := f.cellAt(pos)
	if !ok || f.onPaint == nil {
		return
	}
	f.onPaint(x, y, f.held == desktop.MouseButtonPrimary)
}

// moveHover snaps the highlight square to the hovered cell
func (f *Field) moveHover(pos fyne.Position) {
	x, y, ok := f.cellAt(pos)
	if !ok {
		f.hover.Hide()
		f.hover.Refresh()
		return
	}
	f.hover.Move(fyne.NewPos(float32((x-1)*f.cellSize), float32((y-1)*f.cellSize)))
	f.hover.Resize(fyne.NewSize(float32(f.cellSize), float32(f.cellSize)))
	f.hover.Show()
	f.hover.Refresh()
}

// buildGridOverlay prerenders the uniform grid lines once, as a transparent
// image with an opaque line along every cell boundary.
func buildGridOverlay(cols, rows, cellSize int) *image.RGBA {
	w, h := cols*cellSize, rows*cellSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%cellSize == 0 || y%cellSize == 0 {
				img.SetRGBA(x, y, colorGridLine)
			}
		}
	}
	return img
}

type fieldRenderer struct {
	f *Field
}

func (r *fieldRenderer) Layout(size fyne.Size) {
	r.f.view.Resize(size)
	r.f.overlay.Resize(size)
}

func (r *fieldRenderer) MinSize() fyne.Size {
	return fyne.NewSize(
		float32(r.f.cols*r.f.cellSize),
		float32(r.f.rows*r.f.cellSize),
	)
}

func (r *fieldRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.f.view, r.f.overlay, r.f.hover}
}

func (r *fieldRenderer) Refresh() {
	r.f.view.Refresh()
	r.f.overlay.Refresh()
}

func (r *fieldRenderer) Destroy() {}
