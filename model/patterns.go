package model

// glider is the classic diagonal spaceship, anchored at its top-left cell.
var glider = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// StampGlider places a glider with its top-left cell at the given interior
// coordinates. Cells falling outside the interior are dropped silently.
func (g *Grid) StampGlider(startX, startY int) {
	for dy, row := range glider {
		for dx, alive := range row {
			if alive {
				g.Set(startX+dx, startY+dy, true)
			}
		}
	}
}

// StampBlinker places a horizontal 3-cell blinker starting at the given
// interior coordinates. It oscillates between horizontal and vertical with
// period 2.
func (g *Grid) StampBlinker(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

// StampBlock places a 2x2 still-life block at the given interior coordinates
func (g *Grid) StampBlock(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX, startY+1, true)
	g.Set(startX+1, startY+1, true)
}

// Seed applies a named initial pattern to the grid. Known names are "glider",
// "blinker", and "random"; anything else leaves the grid empty.
func (g *Grid) Seed(pattern string, density float64) {
	switch pattern {
	case "glider":
		g.StampGlider(g.width/4, g.height/4)
	case "blinker":
		g.StampBlinker(g.width/2-1, g.height/2)
	case "random":
		g.FillRandom(density)
	}
}
