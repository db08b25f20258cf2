package model

import (
	"strings"
	"testing"
)

func TestNewFieldImageDimensions(t *testing.T) {
	g := NewGrid(7, 4)
	img := NewFieldImage(g)

	bounds := img.Bounds()
	if bounds.Dx() != 7 || bounds.Dy() != 4 {
		t.Errorf("NewFieldImage bounds = %dx%d, want 7x4", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderToImage(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 2, true)
	g.Set(1, 3, true)

	img := NewFieldImage(g)
	RenderToImage(g, img)

	// Interior cell (x, y) lands at pixel (x-1, y-1).
	if got := img.RGBAAt(1, 1); got != ColorAlive {
		t.Errorf("pixel (1,1) = %v, want alive color %v", got, ColorAlive)
	}
	if got := img.RGBAAt(0, 2); got != ColorAlive {
		t.Errorf("pixel (0,2) = %v, want alive color %v", got, ColorAlive)
	}
	if got := img.RGBAAt(0, 0); got != ColorDead {
		t.Errorf("pixel (0,0) = %v, want dead color %v", got, ColorDead)
	}
}

func TestRenderToImageDoesNotMutateGrid(t *testing.T) {
	g := NewGrid(4, 4)
	g.StampBlock(2, 2)
	before := g.Fingerprint()

	img := NewFieldImage(g)
	RenderToImage(g, img)

	if got := g.Fingerprint(); got != before {
		t.Error("RenderToImage changed the grid state")
	}
}

func TestRenderToImageOverwritesStalePixels(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, true)

	img := NewFieldImage(g)
	RenderToImage(g, img)

	g.Set(1, 1, false)
	RenderToImage(g, img)

	if got := img.RGBAAt(0, 0); got != ColorDead {
		t.Errorf("pixel (0,0) = %v after cell died, want dead color %v", got, ColorDead)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, true)

	s := g.String()
	if lines := strings.Count(s, "\n"); lines != 2 {
		t.Errorf("String() has %d lines, want 2", lines)
	}
	if !strings.HasPrefix(s, gridPosBlock+gridPosEmpty) {
		t.Errorf("String() first row = %q, want leading block then empty", strings.SplitN(s, "\n", 2)[0])
	}
}
