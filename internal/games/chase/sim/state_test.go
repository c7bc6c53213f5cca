package sim

import (
	"testing"

	"github.com/vovakirdan/tui-chase/internal/core"
)

var (
	red  = Identity{Name: "Red", Color: core.ColorRed}
	blue = Identity{Name: "Blue", Color: core.ColorBlue}
)

// boxedPlayerGrid is a 10x10 maze where (5,5) has walls above, below and to
// the left, so only a Right intent can move the player.
func boxedPlayerGrid() *Grid {
	g := openGrid(10, 10)
	g.Set(P(4, 5), CellWall)
	g.Set(P(6, 5), CellWall)
	g.Set(P(5, 4), CellWall)
	return g
}

func TestAdversaryCatchesPlayer(t *testing.T) {
	for _, intent := range []Direction{DirNone, DirUp, DirDown, DirLeft} {
		t.Run(intent.String(), func(t *testing.T) {
			player := Player{Entity: Entity{Pos: P(5, 5)}}
			adv := Adversary{Entity: Entity{Pos: P(5, 6), Dir: DirLeft}, Identity: red}
			s := NewState(boxedPlayerGrid(), player, []Adversary{adv}, DefaultScoring(), seeded(1))

			if phase := s.Advance(intent); phase != PhaseTerminal {
				t.Fatalf("expected terminal, got %v", phase)
			}
			if got := s.Adversaries()[0].Pos; got != P(5, 5) {
				t.Errorf("adversary at %v, expected (5,5)", got)
			}
			if s.Running() {
				t.Error("Running() should be false after collision")
			}
		})
	}
}

func TestAdversaryCatchesPlayerInOpenGrid(t *testing.T) {
	player := Player{Entity: Entity{Pos: P(5, 5)}}
	adv := Adversary{Entity: Entity{Pos: P(5, 6), Dir: DirLeft}, Identity: red}
	s := NewState(openGrid(10, 10), player, []Adversary{adv}, DefaultScoring(), seeded(1))

	if phase := s.Advance(DirNone); phase != PhaseTerminal {
		t.Fatalf("expected terminal, got %v", phase)
	}
}

func TestSwappingCellsIsNotACollision(t *testing.T) {
	// Player and adversary pass through each other: positions are only
	// compared after each adversary move.
	player := Player{Entity: Entity{Pos: P(5, 5)}}
	adv := Adversary{Entity: Entity{Pos: P(5, 6), Dir: DirLeft}, Identity: red}
	s := NewState(boxedPlayerGrid(), player, []Adversary{adv}, DefaultScoring(), seeded(1))

	if phase := s.Advance(DirRight); phase != PhaseRunning {
		t.Fatalf("expected running after swap, got %v", phase)
	}
	if s.Player().Pos != P(5, 6) || s.Adversaries()[0].Pos != P(5, 5) {
		t.Errorf("expected swap, player %v adversary %v", s.Player().Pos, s.Adversaries()[0].Pos)
	}
}

func TestPlayerEatsPellet(t *testing.T) {
	g := parseGrid(t,
		"######",
		"# .  #",
		"#    #",
		"######",
	)
	player := Player{Entity: Entity{Pos: P(1, 1)}}
	s := NewState(g, player, nil, DefaultScoring(), seeded(1))

	s.Advance(DirRight)

	snap := s.Snapshot()
	if snap.Player.Pos != P(1, 2) {
		t.Errorf("player at %v, expected (1,2)", snap.Player.Pos)
	}
	if snap.Score() != 10 {
		t.Errorf("score = %d, expected 10", snap.Score())
	}
	if snap.At(P(1, 2)) != CellEmpty {
		t.Errorf("cell (1,2) = %v, expected empty", snap.At(P(1, 2)))
	}
}

func TestPowerUpScoresFifty(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"# o #",
		"#####",
	)
	s := NewState(g, Player{Entity: Entity{Pos: P(1, 1)}}, nil, DefaultScoring(), seeded(1))

	s.Advance(DirRight)
	if s.Score() != 50 {
		t.Errorf("score = %d, expected 50", s.Score())
	}

	// Walking back and forth over the cleared cell scores nothing more.
	s.Advance(DirLeft)
	s.Advance(DirRight)
	if s.Score() != 50 {
		t.Errorf("score = %d after revisiting, expected 50", s.Score())
	}
}

func TestConsumeWithoutMoving(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"#.  #",
		"#####",
	)
	s := NewState(g, Player{Entity: Entity{Pos: P(1, 1)}}, nil, DefaultScoring(), seeded(1))

	s.Advance(DirNone)
	if s.Score() != 10 {
		t.Errorf("standing on a pellet should score it, got %d", s.Score())
	}
}

func TestBlockedPlayerKeepsDirection(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"# # #",
		"#####",
	)
	s := NewState(g, Player{Entity: Entity{Pos: P(1, 1), Dir: DirRight}}, nil, DefaultScoring(), seeded(1))

	s.Advance(DirNone)
	p := s.Player()
	if p.Pos != P(1, 1) || p.Dir != DirRight {
		t.Errorf("got pos %v dir %v, expected (1,1) right", p.Pos, p.Dir)
	}
}

func TestIntentTakesEffectSameTick(t *testing.T) {
	g := openGrid(6, 6)
	s := NewState(g, Player{Entity: Entity{Pos: P(2, 2), Dir: DirRight}}, nil, DefaultScoring(), seeded(1))

	s.Advance(DirDown)
	if p := s.Player(); p.Pos != P(3, 2) || p.Dir != DirDown {
		t.Errorf("got pos %v dir %v, expected (3,2) down", p.Pos, p.Dir)
	}

	// No intent keeps going down.
	s.Advance(DirNone)
	if p := s.Player(); p.Pos != P(4, 2) {
		t.Errorf("got pos %v, expected (4,2)", p.Pos)
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	player := Player{Entity: Entity{Pos: P(5, 5)}}
	adv := Adversary{Entity: Entity{Pos: P(5, 6), Dir: DirLeft}, Identity: red}
	s := NewState(openGrid(10, 10), player, []Adversary{adv}, DefaultScoring(), seeded(3))

	if s.Advance(DirNone) != PhaseTerminal {
		t.Fatal("expected terminal")
	}
	frozen := s.Snapshot()

	for _, intent := range []Direction{DirUp, DirDown, DirLeft, DirRight, DirNone} {
		if phase := s.Advance(intent); phase != PhaseTerminal {
			t.Fatalf("phase changed to %v", phase)
		}
		if after := s.Snapshot(); !after.Equal(frozen) {
			t.Fatalf("state changed after terminal: %s vs %s", after.describe(), frozen.describe())
		}
	}
}

func TestLaterAdversariesStillMoveOnCollisionTick(t *testing.T) {
	player := Player{Entity: Entity{Pos: P(5, 5)}}
	first := Adversary{Entity: Entity{Pos: P(5, 6), Dir: DirLeft}, Identity: red}
	second := Adversary{Entity: Entity{Pos: P(2, 2), Dir: DirDown}, Identity: blue}
	s := NewState(openGrid(10, 10), player, []Adversary{first, second}, DefaultScoring(), seeded(1))

	s.Advance(DirNone)

	advs := s.Adversaries()
	if s.Phase() != PhaseTerminal {
		t.Fatal("expected terminal")
	}
	if advs[1].Pos != P(3, 2) {
		t.Errorf("second adversary at %v, expected (3,2)", advs[1].Pos)
	}
	if s.Tick() != 1 {
		t.Errorf("tick = %d, expected 1", s.Tick())
	}
}

func TestStartingOverlapIsNotACollision(t *testing.T) {
	player := Player{Entity: Entity{Pos: P(5, 5)}}
	adv := Adversary{Entity: Entity{Pos: P(5, 5), Dir: DirUp}, Identity: red}
	s := NewState(openGrid(10, 10), player, []Adversary{adv}, DefaultScoring(), seeded(1))

	if s.Advance(DirNone) != PhaseRunning {
		t.Error("adversary moving off the player should not end the game")
	}
}

func TestSimulationInvariants(t *testing.T) {
	intents := []Direction{DirNone, DirUp, DirDown, DirLeft, DirRight}

	for seed := int64(1); seed <= 25; seed++ {
		rng := seeded(seed)
		s := NewGame(DefaultParams(), rng)
		prev := s.Snapshot()

		for tick := 0; tick < 300 && s.Running(); tick++ {
			phase := s.Advance(intents[rng.Intn(len(intents))])
			snap := s.Snapshot()

			// Movement legality.
			for _, e := range append([]Entity{snap.Player.Entity}, entities(snap.Adversaries)...) {
				if snap.At(e.Pos) == CellWall {
					t.Fatalf("seed %d tick %d: entity on wall at %v", seed, tick, e.Pos)
				}
			}

			// Score only grows by the value of the cell the player entered.
			gained := snap.Score() - prev.Score()
			entered := prev.At(snap.Player.Pos)
			if want := DefaultScoring().Points(entered); gained != want {
				t.Fatalf("seed %d tick %d: gained %d entering %v, expected %d", seed, tick, gained, entered, want)
			}
			if entered.IsConsumable() && snap.At(snap.Player.Pos) != CellEmpty {
				t.Fatalf("seed %d tick %d: consumable not cleared", seed, tick)
			}

			// Terminal iff an adversary ends its move on the player.
			caught := false
			for _, a := range snap.Adversaries {
				if a.Pos == snap.Player.Pos {
					caught = true
				}
			}
			if caught != (phase == PhaseTerminal) {
				t.Fatalf("seed %d tick %d: caught=%v phase=%v", seed, tick, caught, phase)
			}

			prev = snap
		}
	}
}

func entities(advs []Adversary) []Entity {
	out := make([]Entity, len(advs))
	for i, a := range advs {
		out[i] = a.Entity
	}
	return out
}

func TestNewGamePlacement(t *testing.T) {
	p := DefaultParams()
	for seed := int64(0); seed < 50; seed++ {
		s := NewGame(p, seeded(seed))
		snap := s.Snapshot()

		center := P(p.Rows/2, p.Cols/2)
		if snap.Player.Pos != center || snap.Player.Dir != DirNone {
			t.Fatalf("seed %d: player %v %v, expected center facing none", seed, snap.Player.Pos, snap.Player.Dir)
		}
		if snap.At(center) == CellWall {
			t.Fatalf("seed %d: player starts on a wall", seed)
		}
		if len(snap.Adversaries) != len(p.Adversaries) {
			t.Fatalf("seed %d: %d adversaries, expected %d", seed, len(snap.Adversaries), len(p.Adversaries))
		}
		for i, a := range snap.Adversaries {
			if a.Identity != p.Adversaries[i] {
				t.Errorf("seed %d: adversary %d identity %+v", seed, i, a.Identity)
			}
			if a.Pos == center || snap.At(a.Pos) == CellWall || !a.Dir.IsCardinal() {
				t.Errorf("seed %d: bad adversary start %v %v", seed, a.Pos, a.Dir)
			}
		}
	}
}

func TestNewGameClearsWallAtStart(t *testing.T) {
	p := DefaultParams()
	p.Rows, p.Cols = 5, 5
	p.WallProbability = 1

	s := NewGame(p, seeded(9))
	snap := s.Snapshot()
	if snap.At(P(2, 2)) != CellEmpty {
		t.Errorf("start cell = %v, expected empty", snap.At(P(2, 2)))
	}
}

func TestNewGameFullyWalledMaze(t *testing.T) {
	p := DefaultParams()
	p.Rows, p.Cols = 5, 5
	p.WallProbability = 1
	center := P(2, 2)

	for seed := int64(0); seed < 20; seed++ {
		s := NewGame(p, seeded(seed))
		for _, a := range s.Adversaries() {
			if a.Pos == center {
				t.Fatalf("seed %d: %s starts on the player", seed, a.Name)
			}
			if s.grid.At(a.Pos) == CellWall {
				t.Fatalf("seed %d: %s starts on a wall at %v", seed, a.Name, a.Pos)
			}
		}

		s.Advance(DirNone)
		for _, a := range s.Adversaries() {
			if s.grid.At(a.Pos) == CellWall {
				t.Errorf("seed %d: %s moved onto a wall at %v", seed, a.Name, a.Pos)
			}
		}
	}
}

func TestNewGameWithoutRoomPanics(t *testing.T) {
	p := DefaultParams()
	p.Rows, p.Cols = 3, 3
	expectPanic(t, "no room for adversaries", func() { NewGame(p, seeded(1)) })

	// A 3x4 grid leaves one cell beside the start.
	p.Cols = 4
	s := NewGame(p, seeded(1))
	for _, a := range s.Adversaries() {
		if a.Pos == s.Player().Pos {
			t.Errorf("%s starts on the player", a.Name)
		}
	}
}

func TestNewGameDeterminism(t *testing.T) {
	a := NewGame(DefaultParams(), seeded(12345))
	b := NewGame(DefaultParams(), seeded(12345))

	script := []Direction{DirRight, DirNone, DirDown, DirDown, DirLeft, DirUp}
	for i := 0; i < 100; i++ {
		intent := script[i%len(script)]
		a.Advance(intent)
		b.Advance(intent)
	}
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Errorf("same seed diverged: %s vs %s", a.Snapshot().describe(), b.Snapshot().describe())
	}
}

func TestStatePreconditions(t *testing.T) {
	g := parseGrid(t,
		"#####",
		"# # #",
		"#####",
	)
	ok := Player{Entity: Entity{Pos: P(1, 1)}}

	expectPanic(t, "nil rng", func() { NewState(g, ok, nil, DefaultScoring(), nil) })
	expectPanic(t, "nil grid", func() { NewState(nil, ok, nil, DefaultScoring(), seeded(1)) })
	expectPanic(t, "player on wall", func() {
		NewState(g, Player{Entity: Entity{Pos: P(1, 2)}}, nil, DefaultScoring(), seeded(1))
	})
	expectPanic(t, "adversary outside", func() {
		NewState(g, ok, []Adversary{{Entity: Entity{Pos: P(9, 9)}}}, DefaultScoring(), seeded(1))
	})

	s := NewState(g, ok, nil, DefaultScoring(), seeded(1))
	expectPanic(t, "invalid intent", func() { s.Advance(Direction(42)) })
}
