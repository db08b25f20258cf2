package rules

/*
ApplyConwayRules determines the next state of a cell from its snapshot state
and the number of living snapshot neighbors.

Birth: a dead cell with exactly 3 living neighbors becomes alive.
Survival: a living cell with 2 or 3 living neighbors stays alive.
Everything else dies or stays dead (underpopulation at 1 or fewer neighbors,
overpopulation at 4 or more), which collapses to:

	(alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
