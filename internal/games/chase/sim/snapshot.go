package sim

import "slices"

// Snapshot is a read-only copy of a State at the end of a tick.
type Snapshot struct {
	Rows        int
	Cols        int
	Cells       []Cell // Row-major, length Rows*Cols
	Player      Player
	Adversaries []Adversary
	Phase       Phase
	Tick        uint64
}

// At returns the cell at p, or Wall when p is outside the grid.
func (s Snapshot) At(p Position) Cell {
	if p.Row < 0 || p.Row >= s.Rows || p.Col < 0 || p.Col >= s.Cols {
		return CellWall
	}
	return s.Cells[p.Row*s.Cols+p.Col]
}

// Score returns the player's score at the time of the snapshot.
func (s Snapshot) Score() int { return s.Player.Score }

// Equal reports whether two snapshots describe the same game state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Rows == other.Rows &&
		s.Cols == other.Cols &&
		s.Player == other.Player &&
		s.Phase == other.Phase &&
		s.Tick == other.Tick &&
		slices.Equal(s.Cells, other.Cells) &&
		slices.Equal(s.Adversaries, other.Adversaries)
}
