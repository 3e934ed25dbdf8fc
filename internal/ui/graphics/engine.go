package graphics

import (
	"time"

	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768

	// Frame times above this (window drags, debugger stops) are
	// clamped so the snake does not teleport when the clock resumes.
	maxFrameMs = 250.0
)

// Engine is the ebiten driver: one simulation step per tick, then a
// draw from immutable snapshots.
type Engine struct {
	game     *domain.Game
	keyboard *input.KeyboardHandler
	field    *components.FieldRenderer
	hud      *components.HUD

	width     int
	height    int
	lastFrame time.Time
}

func NewEngine(game *domain.Game) *Engine {
	return &Engine{
		game:     game,
		keyboard: input.NewKeyboardHandler(),
		field:    components.NewFieldRenderer(),
		hud:      components.NewHUD(),
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	now := time.Now()
	elapsedMs := 0.0
	if !e.lastFrame.IsZero() {
		elapsedMs = now.Sub(e.lastFrame).Seconds() * 1000
	}
	e.lastFrame = now
	if elapsedMs > maxFrameMs {
		elapsedMs = maxFrameMs
	}

	e.game.Step(elapsedMs, e.keyboard)
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	board := e.game.Board()
	e.field.CalculateLayout(e.width, e.height, board)
	e.field.DrawField(screen, board)
	e.field.DrawFood(screen, e.game.Food().Position(), board)
	e.field.DrawSnake(screen, e.game.Snake().SegmentsSnapshot(), board)

	e.hud.Draw(screen, e.width, e.height,
		e.game.Level(), e.game.Snake().Speed(),
		e.game.Phase() == domain.PhaseGameOver)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
