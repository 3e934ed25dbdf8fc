package components

import (
	"fmt"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD draws the score line and the game-over overlay.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Draw(screen *ebiten.Image, w, hgt int, level int, speed float64, gameOver bool) {
	fonts := types.GetFonts()

	line := fmt.Sprintf("SCORE: %d  |  SPEED: x%.2f", level, speed)
	text.Draw(screen, line, fonts.Normal, 20, 30, types.ColorText)
	text.Draw(screen, "WASD/arrows to steer", fonts.Small, 20, hgt-20, types.ColorTextDim)

	if !gameOver {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt), types.ColorOverlay, false)

	title := "GAME OVER"
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, hgt/2-10, types.ColorTextHighlight)

	hint := fmt.Sprintf("final score: %d  -  press SPACE to restart", level)
	bounds = text.BoundString(fonts.Normal, hint)
	text.Draw(screen, hint, fonts.Normal, (w-bounds.Dx())/2, hgt/2+15, types.ColorText)
}
