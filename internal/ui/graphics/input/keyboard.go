package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardHandler adapts ebiten key state to the simulation's input
// interface. Direction reads are level-triggered polls; restart is
// edge-triggered.
type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

func (kh *KeyboardHandler) IsDirectionPressed(d domain.Direction) bool {
	switch d {
	case domain.DirectionUp:
		return ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	case domain.DirectionDown:
		return ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	case domain.DirectionLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	case domain.DirectionRight:
		return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	}
	return false
}

func (kh *KeyboardHandler) IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
