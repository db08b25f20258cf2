package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/cellgrid/go-lifeview/rules"
)

// Cell holds the two-phase state of a single grid position: Previous is the
// state at the last completed generation, Current is the state being computed
// or displayed. The zero value is a dead cell.
type Cell struct {
	Previous bool
	Current  bool
}

// Grid represents the game board. The cell matrix is allocated one cell
// larger on every side than the visible field: the outer ring is a permanent
// dead border that neighbor counting reads through without bounds checks.
// Interior coordinates run 1..Width() and 1..Height().
type Grid struct {
	width   int
	height  int
	cells   [][]Cell
	history []string // Store recent interior fingerprints for cycle detection
}

// historyDepth limits how many fingerprints are retained for stagnation checks.
const historyDepth = 5

// NewGrid creates a new grid with the specified interior dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height+2)
	for i := range cells {
		cells[i] = make([]Cell, width+2)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the interior width of the grid
func (g *Grid) Width() int { return g.width }

// Height returns the interior height of the grid
func (g *Grid) Height() int { return g.height }

// Clear kills every cell, border included, in both phases
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{}
		}
	}
	g.history = nil
}

// FillRandom resets the grid and then makes each interior cell alive with the
// given probability. The border ring is left dead.
func (g *Grid) FillRandom(density float64) {
	g.Clear()
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			g.cells[y][x].Current = rand.Float64() < density
		}
	}
}

// Set sets the current state of an interior cell. Writes outside the interior
// are ignored so the border ring can never be brought to life.
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 1 && x <= g.width && y >= 1 && y <= g.height {
		g.cells[y][x].Current = alive
	}
}

// Get returns the current state of a cell, dead for out-of-range coordinates
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x > g.width+1 || y < 0 || y > g.height+1 {
		return false
	}
	return g.cells[y][x].Current
}

// Previous returns the snapshot state of a cell from the last Update pass
func (g *Grid) Previous(x, y int) bool {
	if x < 0 || x > g.width+1 || y < 0 || y > g.height+1 {
		return false
	}
	return g.cells[y][x].Previous
}

// Update advances the grid by one generation. The whole matrix is first
// snapshotted (Current copied into Previous) so that every interior cell is
// recomputed from the same frozen generation regardless of scan order. The
// border ring only ever copies dead into dead and is never written by the
// rule, so its cells stay dead in both phases.
func (g *Grid) Update() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].Previous = g.cells[y][x].Current
		}
	}

	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			neighbors := g.countNeighbors(x, y)
			g.cells[y][x].Current = rules.ApplyConwayRules(neighbors, g.cells[y][x].Previous)
		}
	}
}

// countNeighbors sums the snapshot state of the 8 cells around an interior
// position. The dead border ring makes the reads safe at the field edge.
func (g *Grid) countNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[y+dy][x+dx].Previous {
				count++
			}
		}
	}
	return count
}

// CountLiving returns the total number of living interior cells
func (g *Grid) CountLiving() (count int) {
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			if g.cells[y][x].Current {
				count++
			}
		}
	}
	return
}

// Fingerprint returns an MD5 hash of the current interior state
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			if g.cells[y][x].Current {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// RecordHistory appends the current fingerprint and trims old entries
func (g *Grid) RecordHistory() {
	g.history = append(g.history, g.Fingerprint())
	if len(g.history) > historyDepth {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the grid matches one of the last few recorded
// states, catching static boards and short oscillator cycles.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Fingerprint()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}
