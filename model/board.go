package model

import (
	"math/rand"

	"github.com/sheikhrachel/go-life-sdl/rules"
)

// Cell states. Every cell holds exactly one of these values.
const (
	Dead  byte = 0
	Alive byte = 1
)

/*
Board represents the game board as a pair of fixed-size byte grids.

cells is the board read during a step; scratch receives the next
generation, then the two are swapped. Cells outside the grid are
permanently dead (fixed dead border), so every in-grid cell, including
the outer ring, evolves against that border.
*/
type Board struct {
	width   int
	height  int
	cells   [][]byte
	scratch [][]byte
}

// NewBoard creates a new board with the specified dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		cells:   makeCells(width, height),
		scratch: makeCells(width, height),
	}
}

func makeCells(width, height int) [][]byte {
	cells := make([][]byte, height)
	for i := range cells {
		cells[i] = make([]byte, width)
	}
	return cells
}

// Width returns the width of the board.
func (b *Board) Width() int {
	return b.width
}

// Height returns the height of the board.
func (b *Board) Height() int {
	return b.height
}

// Set sets a cell to Alive or Dead. Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int, state byte) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = state
	}
}

// Get returns the state of a cell. Out-of-range coordinates read as Dead.
func (b *Board) Get(x, y int) byte {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Dead
	}
	return b.cells[y][x]
}

// CountNeighbors counts living neighbors in the 3x3 window around (x, y),
// excluding the cell itself. The window is clamped to the grid, which is
// what makes the border dead.
func (b *Board) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(b.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(b.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if b.cells[ny][nx] == Alive {
				count++
			}
		}
	}

	return count
}

// Step computes the next generation into the scratch buffer, then swaps
// the buffers. Swapping is observationally the same as the copy-back the
// double buffer exists for, without the copy.
func (b *Board) Step() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if rules.NextState(b.CountNeighbors(x, y), b.cells[y][x] == Alive) {
				b.scratch[y][x] = Alive
			} else {
				b.scratch[y][x] = Dead
			}
		}
	}

	b.cells, b.scratch = b.scratch, b.cells
}

// Population returns the total number of living cells.
func (b *Board) Population() (count int) {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// Clear kills every cell.
func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Dead
		}
	}
}

// Randomize seeds the board, each cell independently alive with the given
// probability.
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if rng.Float64() < density {
				b.cells[y][x] = Alive
			} else {
				b.cells[y][x] = Dead
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position.
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]byte{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for y, row := range pattern {
		for x, cell := range row {
			b.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker, the period-2 oscillator.
func (b *Board) AddBlinker(startX, startY int) {
	b.Set(startX, startY, Alive)
	b.Set(startX+1, startY, Alive)
	b.Set(startX+2, startY, Alive)
}

// AddBlock adds a 2x2 block, the simplest still life.
func (b *Board) AddBlock(startX, startY int) {
	b.Set(startX, startY, Alive)
	b.Set(startX+1, startY, Alive)
	b.Set(startX, startY+1, Alive)
	b.Set(startX+1, startY+1, Alive)
}
