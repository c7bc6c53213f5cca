package sim

import "fmt"

// Position is a grid coordinate. Row grows downward, Col grows to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction is a movement direction. DirNone means standing still.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Cardinals lists the four movement directions in a fixed order.
// Random direction choices index into this slice.
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit (row, col) offset for the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	case DirNone:
		return 0, 0
	default:
		panic(fmt.Sprintf("sim: invalid direction %d", int(d)))
	}
}

// Valid reports whether d is one of the five defined directions.
func (d Direction) Valid() bool {
	return d >= DirNone && d <= DirRight
}

// IsCardinal reports whether d is Up, Down, Left or Right.
func (d Direction) IsCardinal() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
