package sim

import "github.com/vovakirdan/tui-chase/internal/core"

// Entity is anything that occupies a cell and moves one step per tick.
type Entity struct {
	Pos Position
	Dir Direction
}

// advance moves the entity one step in its direction if the target cell is
// inside the grid and not a wall. Returns whether the entity moved.
func (e *Entity) advance(g *Grid) bool {
	if e.Dir == DirNone {
		return false
	}
	next := e.Pos.Step(e.Dir)
	if !g.Walkable(next) {
		return false
	}
	e.Pos = next
	return true
}

// Player is the user-controlled entity.
type Player struct {
	Entity
	Score int
}

// TryMove steps the player in its current direction. A blocked player keeps
// its position and direction, so it retries the same move next tick.
func (p *Player) TryMove(g *Grid) bool {
	return p.advance(g)
}

// Identity is the fixed display identity of an adversary.
type Identity struct {
	Name  string
	Color core.Color
}

// Adversary wanders the maze at random.
type Adversary struct {
	Entity
	Identity
}

// NewAdversary places an adversary at pos with a random initial direction.
func NewAdversary(id Identity, pos Position, rng Rand) Adversary {
	mustRand(rng)
	return Adversary{
		Entity:   Entity{Pos: pos, Dir: RandomDirection(rng)},
		Identity: id,
	}
}

// TryMove steps the adversary in its current direction. When blocked it
// stays put and picks a new uniformly random cardinal direction, which can
// be the blocked one again.
func (a *Adversary) TryMove(g *Grid, rng Rand) bool {
	if a.advance(g) {
		return true
	}
	a.Dir = RandomDirection(rng)
	return false
}
