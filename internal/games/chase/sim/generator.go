package sim

import "fmt"

// Generate builds a random rows×cols maze.
//
// Border cells are walls. Each interior cell is a wall with probability
// wallProbability; otherwise a power-up with probability powerUpProbability;
// otherwise a pellet. The second draw is only taken when the wall draw
// fails. No connectivity is guaranteed, so isolated pockets can occur.
func Generate(rows, cols int, wallProbability, powerUpProbability float64, rng Rand) *Grid {
	mustRand(rng)
	mustProbability("wall", wallProbability)
	mustProbability("power-up", powerUpProbability)

	g := NewGrid(rows, cols)
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			var cell Cell
			switch {
			case rng.Float64() < wallProbability:
				cell = CellWall
			case rng.Float64() < powerUpProbability:
				cell = CellPowerUp
			default:
				cell = CellPellet
			}
			g.cells[g.index(P(r, c))] = cell
		}
	}
	return g
}

func mustProbability(name string, p float64) {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("sim: %s probability %v outside [0, 1]", name, p))
	}
}
