package domain

import "testing"

type stubInput struct {
	pressed map[Direction]bool
	restart bool
}

func (s *stubInput) IsDirectionPressed(d Direction) bool { return s.pressed[d] }
func (s *stubInput) IsRestartPressed() bool              { return s.restart }

var idle = &stubInput{}

func testGameConfig() *BoardConfig {
	return &BoardConfig{
		MaxCellsX:      8,
		MaxCellsY:      8,
		OriginX:        4,
		OriginY:        4,
		CellSize:       4,
		StartCell:      Coord{0, 0},
		StartDirection: DirectionRight,
	}
}

// 200ms normalizes to 2.0 elapsed units: enough to exhaust the
// initial cooldown (4 / speed 4) every frame.
const frameMs = 200

func TestEatingFoodAdvancesLevelAndRelocates(t *testing.T) {
	g, err := NewGame(testGameConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.food.pos = Coord{1, 0} // directly in the snake's path

	g.Step(frameMs, idle)

	if g.Level() != 1 {
		t.Fatalf("level after eating = %d, want 1", g.Level())
	}
	if got := g.Snake().TargetLength(); got != initialTargetLength+growthPerFood {
		t.Fatalf("target length after eating = %d, want %d", got, initialTargetLength+growthPerFood)
	}
	if g.Snake().Speed() <= initialSpeed {
		t.Fatalf("speed did not increase: %f", g.Snake().Speed())
	}
	if g.Snake().Occupies(g.Food().Position()) {
		t.Fatalf("food still on the snake at %s", g.Food().Position())
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying", g.Phase())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g, err := NewGame(testGameConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	// Synthetic body: the next step to (2,0) lands on the tail.
	g.snake.segments = []Coord{{1, 0}, {0, 0}, {2, 0}}
	g.food.pos = Coord{-4, -4}

	g.Step(frameMs, idle)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase after self-collision = %v, want PhaseGameOver", g.Phase())
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g, err := NewGame(testGameConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.phase = PhaseGameOver
	head := g.Snake().Head()
	level := g.Level()

	for i := 0; i < 5; i++ {
		g.Step(frameMs, idle)
	}

	if !g.Snake().Head().Equals(head) {
		t.Fatalf("snake moved while game over: %s", g.Snake().Head())
	}
	if g.Level() != level {
		t.Fatalf("level changed while game over: %d", g.Level())
	}
}

func TestRestartResetsToStartState(t *testing.T) {
	cfg := testGameConfig()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.food.pos = Coord{1, 0}
	g.Step(frameMs, idle) // eat once
	g.phase = PhaseGameOver

	g.Step(frameMs, &stubInput{restart: true})

	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after restart = %v, want PhasePlaying", g.Phase())
	}
	if g.Level() != 0 {
		t.Fatalf("level after restart = %d, want 0", g.Level())
	}
	snake := g.Snake()
	if snake.Len() != 1 || !snake.Head().Equals(cfg.StartCell) {
		t.Fatalf("snake after restart: len=%d head=%s, want one segment at %s",
			snake.Len(), snake.Head(), cfg.StartCell)
	}
	if snake.TargetLength() != initialTargetLength {
		t.Fatalf("target length after restart = %d, want %d", snake.TargetLength(), initialTargetLength)
	}
	if snake.Speed() != initialSpeed {
		t.Fatalf("speed after restart = %f, want %f", snake.Speed(), initialSpeed)
	}
	if snake.Occupies(g.Food().Position()) {
		t.Fatalf("food on the snake after restart: %s", g.Food().Position())
	}
}

func TestDirectionIntentThreadedThroughStep(t *testing.T) {
	g, err := NewGame(testGameConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.food.pos = Coord{-4, -4} // out of the way

	up := &stubInput{pressed: map[Direction]bool{DirectionUp: true}}

	// First frame: single segment, the intent must be rejected.
	g.Step(frameMs, up)
	if got := g.Snake().Head(); !got.Equals(Coord{1, 0}) {
		t.Fatalf("head after frame 1 = %s, want (1,0)", got)
	}

	// Second frame: facing is now derivable, the turn applies.
	g.Step(frameMs, up)
	if got := g.Snake().Head(); !got.Equals(Coord{1, 1}) {
		t.Fatalf("head after frame 2 = %s, want (1,1)", got)
	}
}
