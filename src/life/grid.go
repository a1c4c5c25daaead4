package life

import "github.com/pkg/errors"

/*
	Grid holds one generation of the colony as a flat row-major slice of
	booleans. A cell at row r, column c lives at index r*dim+c.
	Grids are immutable once built: Step computes the whole next
	generation into a fresh buffer, so neighbor counting never reads a
	half-updated board.
*/
type Grid struct {
	cells []bool
	dim   int
}

//FromCells builds a Grid over the given cells
//the slice length must have an integer square root
func FromCells(cells []bool) (Grid, error) {
	dim := intSqrt(len(cells))
	if dim*dim != len(cells) {
		return Grid{}, errors.Errorf("grid of %d cells is not square", len(cells))
	}
	return Grid{cells: cells, dim: dim}, nil
}

//Dim returns the side length of the square grid
func (g Grid) Dim() int {
	return g.dim
}

//Size returns the total cell count (Dim squared)
func (g Grid) Size() int {
	return len(g.cells)
}

//Alive reports whether the cell at flat index idx is alive
func (g Grid) Alive(idx int) bool {
	return g.cells[idx]
}

//LiveCells returns the colony population
func (g Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

//NeighborCount counts the alive cells among the up-to-8 neighbors of idx.
//Positions beyond the grid boundary count as dead: a candidate in the row
//above or below is dropped entirely when that row does not exist, and a
//left/right candidate is dropped when stepping sideways would cross a
//column boundary (p%dim==0 has nothing to its left, (p+1)%dim==0 nothing
//to its right). The grid never wraps.
func (g Grid) NeighborCount(idx int) int {
	count := 0

	//row above
	if p := idx - g.dim; p >= 0 {
		if p%g.dim != 0 && g.cells[p-1] {
			count++
		}
		if g.cells[p] {
			count++
		}
		if (p+1)%g.dim != 0 && g.cells[p+1] {
			count++
		}
	}

	//same row
	if idx%g.dim != 0 && g.cells[idx-1] {
		count++
	}
	if (idx+1)%g.dim != 0 && g.cells[idx+1] {
		count++
	}

	//row below
	if p := idx + g.dim; p < len(g.cells) {
		if p%g.dim != 0 && g.cells[p-1] {
			count++
		}
		if g.cells[p] {
			count++
		}
		if (p+1)%g.dim != 0 && g.cells[p+1] {
			count++
		}
	}

	return count
}

//NextState applies the Life rules to the cell at idx:
//fewer than 2 or more than 3 neighbors kills, an alive cell with 2 or 3
//survives, a dead cell with exactly 3 comes to life
func (g Grid) NextState(idx int) bool {
	c := g.NeighborCount(idx)
	if c != 2 && c != 3 {
		return false
	}
	if g.cells[idx] {
		return true
	}
	return c == 3
}

//Step computes the next generation and returns it as a new Grid,
//leaving the receiver untouched
func (g Grid) Step() Grid {
	next := make([]bool, len(g.cells))
	for i := range g.cells {
		next[i] = g.NextState(i)
	}
	return Grid{cells: next, dim: g.dim}
}

//intSqrt returns the integer square root of n (floor)
func intSqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
