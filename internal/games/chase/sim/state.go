package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Phase is the lifecycle state of a simulation.
type Phase int

const (
	// PhaseRunning accepts ticks.
	PhaseRunning Phase = iota
	// PhaseTerminal is reached when an adversary catches the player.
	// It is absorbing: further ticks change nothing.
	PhaseTerminal
)

func (p Phase) String() string {
	if p == PhaseTerminal {
		return "terminal"
	}
	return "running"
}

// Scoring holds the points awarded for each consumable.
type Scoring struct {
	Pellet  int
	PowerUp int
}

// DefaultScoring returns the classic 10/50 point values.
func DefaultScoring() Scoring {
	return Scoring{Pellet: 10, PowerUp: 50}
}

// Points returns the score for entering a cell.
func (s Scoring) Points(c Cell) int {
	switch c {
	case CellPellet:
		return s.Pellet
	case CellPowerUp:
		return s.PowerUp
	default:
		return 0
	}
}

// Params describes a freshly generated game.
type Params struct {
	Rows               int
	Cols               int
	WallProbability    float64
	PowerUpProbability float64
	Scoring            Scoring
	Adversaries        []Identity
}

// DefaultParams returns a 30x30 maze with a red and a blue adversary.
func DefaultParams() Params {
	return Params{
		Rows:               30,
		Cols:               30,
		WallProbability:    0.1,
		PowerUpProbability: 0.02,
		Scoring:            DefaultScoring(),
		Adversaries: []Identity{
			{Name: "Red", Color: core.ColorRed},
			{Name: "Blue", Color: core.ColorBlue},
		},
	}
}

// State is the whole simulation: grid, player, adversaries and phase.
// It is mutated in place by Advance and must not be shared between
// goroutines without external synchronization.
type State struct {
	grid        *Grid
	player      Player
	adversaries []Adversary
	scoring     Scoring
	phase       Phase
	tick        uint64
	rng         Rand
}

// NewGame generates a maze from p and places the player and adversaries.
//
// The player starts at the grid center with no direction; a wall there is
// cleared. Adversaries start on random walkable interior cells other than
// the player's, in the order given by p.Adversaries. When every such cell
// is a wall, an adversary's cell is picked among the walls and cleared.
// NewGame panics if the grid has no interior cell besides the start.
func NewGame(p Params, rng Rand) *State {
	mustRand(rng)
	grid := Generate(p.Rows, p.Cols, p.WallProbability, p.PowerUpProbability, rng)

	start := P(p.Rows/2, p.Cols/2)
	if grid.At(start) == CellWall {
		grid.Set(start, CellEmpty)
	}

	free := make([]Position, 0, (p.Rows-2)*(p.Cols-2))
	others := make([]Position, 0, (p.Rows-2)*(p.Cols-2))
	for r := 1; r < p.Rows-1; r++ {
		for c := 1; c < p.Cols-1; c++ {
			pos := P(r, c)
			if pos == start {
				continue
			}
			others = append(others, pos)
			if grid.At(pos) != CellWall {
				free = append(free, pos)
			}
		}
	}
	if len(p.Adversaries) > 0 && len(others) == 0 {
		panic(fmt.Sprintf("sim: %dx%d grid has no room for adversaries", p.Rows, p.Cols))
	}

	candidates := free
	if len(candidates) == 0 {
		candidates = others
	}

	adversaries := make([]Adversary, 0, len(p.Adversaries))
	for _, id := range p.Adversaries {
		pos := candidates[rng.Intn(len(candidates))]
		if grid.At(pos) == CellWall {
			grid.Set(pos, CellEmpty)
		}
		adversaries = append(adversaries, NewAdversary(id, pos, rng))
	}

	return NewState(grid, Player{Entity: Entity{Pos: start}}, adversaries, p.Scoring, rng)
}

// NewState assembles a running simulation from explicit parts. The grid is
// owned by the returned State. Entity positions must be inside the grid and
// the player must not stand on a wall.
func NewState(grid *Grid, player Player, adversaries []Adversary, scoring Scoring, rng Rand) *State {
	mustRand(rng)
	if grid == nil {
		panic("sim: nil grid")
	}
	if !grid.Walkable(player.Pos) {
		panic(fmt.Sprintf("sim: player start %v is not walkable", player.Pos))
	}
	if !player.Dir.Valid() {
		panic(fmt.Sprintf("sim: invalid player direction %d", int(player.Dir)))
	}
	for i, a := range adversaries {
		if !grid.InBounds(a.Pos) {
			panic(fmt.Sprintf("sim: adversary %d at %v outside grid", i, a.Pos))
		}
	}

	advs := make([]Adversary, len(adversaries))
	copy(advs, adversaries)

	return &State{
		grid:        grid,
		player:      player,
		adversaries: advs,
		scoring:     scoring,
		phase:       PhaseRunning,
		rng:         rng,
	}
}

// Advance runs one tick with the given player intent and returns the phase
// after the tick. In PhaseTerminal it does nothing.
//
// Order within a tick: a cardinal intent replaces the player's direction;
// the player moves; the cell under the player is consumed; then every
// adversary moves in order and is checked against the player's position.
func (s *State) Advance(intent Direction) Phase {
	if !intent.Valid() {
		panic(fmt.Sprintf("sim: invalid intent %d", int(intent)))
	}
	if s.phase == PhaseTerminal {
		return s.phase
	}

	if intent.IsCardinal() {
		s.player.Dir = intent
	}
	s.player.TryMove(s.grid)

	s.player.Score += s.scoring.Points(s.grid.Consume(s.player.Pos))

	for i := range s.adversaries {
		a := &s.adversaries[i]
		a.TryMove(s.grid, s.rng)
		if a.Pos == s.player.Pos {
			s.phase = PhaseTerminal
		}
	}

	s.tick++
	return s.phase
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase { return s.phase }

// Running reports whether the game still accepts ticks.
func (s *State) Running() bool { return s.phase == PhaseRunning }

// Score returns the player's score.
func (s *State) Score() int { return s.player.Score }

// Tick returns the number of ticks advanced while running.
func (s *State) Tick() uint64 { return s.tick }

// Player returns a copy of the player.
func (s *State) Player() Player { return s.player }

// Adversaries returns a copy of the adversaries in movement order.
func (s *State) Adversaries() []Adversary {
	out := make([]Adversary, len(s.adversaries))
	copy(out, s.adversaries)
	return out
}

// Snapshot returns a deep copy of the state for rendering and comparison.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Rows:        s.grid.rows,
		Cols:        s.grid.cols,
		Cells:       s.grid.Cells(),
		Player:      s.player,
		Adversaries: s.Adversaries(),
		Phase:       s.phase,
		Tick:        s.tick,
	}
}
