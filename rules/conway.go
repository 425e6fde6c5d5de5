package rules

/*
NextState applies Conway's Game of Life rules to determine the next state
of a cell from its live-neighbor count.

Birth on exactly 3 neighbors, survival on 2 or 3: (alive && neighbors == 2) || neighbors == 3
*/
func NextState(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
