package sim

import (
	"fmt"
	"math/rand"
	"testing"
)

// scriptedRand replays fixed values and fails the test when it runs dry.
type scriptedRand struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	r.t.Helper()
	if len(r.floats) == 0 {
		r.t.Fatal("scriptedRand: out of floats")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.t.Helper()
	if len(r.ints) == 0 {
		r.t.Fatal("scriptedRand: out of ints")
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scriptedRand: %d not in [0, %d)", v, n)
	}
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// parseGrid builds a grid from rows of '#' (wall), '.' (pellet),
// 'o' (power-up) and ' ' (empty).
func parseGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("parseGrid: row %d has %d columns, want %d", r, len(line), g.Cols())
		}
		for c, ch := range line {
			var cell Cell
			switch ch {
			case '#':
				cell = CellWall
			case '.':
				cell = CellPellet
			case 'o':
				cell = CellPowerUp
			case ' ':
				cell = CellEmpty
			default:
				t.Fatalf("parseGrid: unknown cell %q", ch)
			}
			g.Set(P(r, c), cell)
		}
	}
	return g
}

// openGrid returns a rows×cols grid with a wall border and pellets inside.
func openGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			g.Set(P(r, c), CellPellet)
		}
	}
	return g
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func (s Snapshot) describe() string {
	return fmt.Sprintf("tick=%d phase=%v player=%v score=%d", s.Tick, s.Phase, s.Player.Pos, s.Player.Score)
}
