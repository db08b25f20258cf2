package model

import (
	"image"
	"image/color"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// Cell colors used by the field image.
var (
	ColorAlive = color.RGBA{G: 0xff, A: 0xff}
	ColorDead  = color.RGBA{A: 0xff}
)

// NewFieldImage allocates the one-pixel-per-cell image for a grid's interior
func NewFieldImage(g *Grid) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
}

// RenderToImage writes one pixel per interior cell into img: green for a
// living cell, black for a dead one. Interior cell (x, y) lands at pixel
// (x-1, y-1). The grid is not mutated.
func RenderToImage(g *Grid, img *image.RGBA) {
	for y := 1; y <= g.Height(); y++ {
		for x := 1; x <= g.Width(); x++ {
			if g.cells[y][x].Current {
				img.SetRGBA(x-1, y-1, ColorAlive)
			} else {
				img.SetRGBA(x-1, y-1, ColorDead)
			}
		}
	}
}

// String renders the interior as block characters, one row per line. Handy in
// test failure output.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			if g.cells[y][x].Current {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
