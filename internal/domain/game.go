package domain

import "fmt"

// elapsedDivisor normalizes the frame clock (milliseconds) into the
// arbitrary units the cooldown accumulator counts in.
const elapsedDivisor = 100.0

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// InputSource is the per-frame input view threaded into Step. Reads
// must be side-effect free; the restart signal is edge-triggered by
// the adapter.
type InputSource interface {
	IsDirectionPressed(Direction) bool
	IsRestartPressed() bool
}

// Game drives the two simulation components through the
// Playing/GameOver state machine. The level counter doubles as the
// displayed score. Single-threaded: all mutation happens inside Step.
type Game struct {
	cfg   *BoardConfig
	board *Board
	snake *Snake
	food  *Food
	level int
	phase Phase
}

func NewGame(cfg *BoardConfig) (*Game, error) {
	if !cfg.Validate() {
		return nil, fmt.Errorf("domain: invalid board config %+v", cfg)
	}
	g := &Game{
		cfg:   cfg.Copy(),
		board: NewBoard(cfg),
	}
	if err := g.spawn(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) spawn() error {
	g.snake = NewSnake(g.cfg.StartCell, g.cfg.StartDirection, g.board)
	food, err := NewFood(g.snake, g.board)
	if err != nil {
		return err
	}
	g.food = food
	g.level = 0
	g.phase = PhasePlaying
	return nil
}

// Step advances the game by one frame. elapsedMs is the non-negative
// wall-clock time since the previous frame.
func (g *Game) Step(elapsedMs float64, in InputSource) {
	if g.phase == PhaseGameOver {
		if in.IsRestartPressed() {
			g.Reset()
		}
		return
	}

	for _, d := range DirectionScanOrder {
		if in.IsDirectionPressed(d) {
			g.snake.HandleDirectionIntent(d)
		}
	}

	g.snake.Update(elapsedMs / elapsedDivisor)

	if g.snake.HasSelfCollision() {
		g.phase = PhaseGameOver
		return
	}

	if g.snake.Head().Equals(g.food.Position()) {
		if err := g.food.Relocate(); err != nil {
			// Board is full; nowhere left to place food.
			g.phase = PhaseGameOver
			return
		}
		g.snake.IncreaseDifficulty(g.level)
		g.level++
	}
}

// Reset reinitializes snake, food, level and phase to the start state.
func (g *Game) Reset() {
	if err := g.spawn(); err != nil {
		// A one-segment snake cannot fill a validated board.
		g.phase = PhaseGameOver
	}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Level() int {
	return g.level
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Snake() *Snake {
	return g.snake
}

func (g *Game) Food() *Food {
	return g.food
}
