package sim

import "fmt"

// Cell is the content of one maze square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
	CellPowerUp
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellPellet:
		return "pellet"
	case CellPowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// IsConsumable reports whether entering the cell scores points.
func (c Cell) IsConsumable() bool {
	return c == CellPellet || c == CellPowerUp
}

// Grid is the maze. Its shape is fixed at creation; cells are stored in
// row-major order. The outer border is always Wall.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a rows×cols grid with a wall border and an empty interior.
func NewGrid(rows, cols int) *Grid {
	if rows < 3 || cols < 3 {
		panic(fmt.Sprintf("sim: grid must be at least 3x3, got %dx%d", rows, cols))
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.IsBorder(P(r, c)) {
				g.cells[r*cols+c] = CellWall
			}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsBorder reports whether p is on the outer ring of the grid.
func (g *Grid) IsBorder(p Position) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == g.rows-1 || p.Col == g.cols-1
}

// Walkable reports whether an entity may stand on p.
func (g *Grid) Walkable(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != CellWall
}

// At returns the cell at p. Panics if p is out of bounds.
func (g *Grid) At(p Position) Cell {
	g.mustContain(p)
	return g.cells[g.index(p)]
}

// Set replaces the cell at p. Border cells can only be set to Wall.
func (g *Grid) Set(p Position, c Cell) {
	g.mustContain(p)
	if g.IsBorder(p) && c != CellWall {
		panic(fmt.Sprintf("sim: border cell %v must stay wall, got %v", p, c))
	}
	g.cells[g.index(p)] = c
}

// Consume clears a pellet or power-up at p and returns what was there.
// Other cells are left untouched.
func (g *Grid) Consume(p Position) Cell {
	c := g.At(p)
	if c.IsConsumable() {
		g.cells[g.index(p)] = CellEmpty
	}
	return c
}

// Count returns the number of cells equal to c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) mustContain(p Position) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("sim: position %v outside %dx%d grid", p, g.rows, g.cols))
	}
}
