package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer maps origin-centered cells to pixels and draws the
// board, snake and food. Screen Y grows downward, so rows are flipped
// relative to board coordinates.
type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: 15,
		OffsetX:  20,
		OffsetY:  20,
	}
}

func (fr *FieldRenderer) columns(board *domain.Board) int {
	return int(board.OriginX)*2 + 1
}

func (fr *FieldRenderer) rows(board *domain.Board) int {
	return int(board.OriginY)*2 + 1
}

func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, board *domain.Board) {
	availableWidth := screenWidth - 40
	availableHeight := screenHeight - 100

	cellW := availableWidth / fr.columns(board)
	cellH := availableHeight / fr.rows(board)

	fr.CellSize = cellW
	if cellH < cellW {
		fr.CellSize = cellH
	}

	if fr.CellSize < 5 {
		fr.CellSize = 5
	}
	if fr.CellSize > 40 {
		fr.CellSize = 40
	}

	fieldWidth := fr.CellSize * fr.columns(board)
	fieldHeight := fr.CellSize * fr.rows(board)
	fr.OffsetX = (availableWidth-fieldWidth)/2 + 20
	fr.OffsetY = (availableHeight-fieldHeight)/2 + 60
}

// cellOrigin returns the top-left pixel of a board cell.
func (fr *FieldRenderer) cellOrigin(c domain.Coord, board *domain.Board) (float32, float32) {
	col := int(c.X + board.OriginX)
	row := int(board.OriginY - c.Y)
	return float32(fr.OffsetX + col*fr.CellSize), float32(fr.OffsetY + row*fr.CellSize)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, board *domain.Board) {
	w := float32(fr.columns(board) * fr.CellSize)
	h := float32(fr.rows(board) * fr.CellSize)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		types.ColorFieldBg, false)

	for x := 0; x <= fr.columns(board); x++ {
		x1 := float32(fr.OffsetX + x*fr.CellSize)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := 0; y <= fr.rows(board); y++ {
		y1 := float32(fr.OffsetY + y*fr.CellSize)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, pos domain.Coord, board *domain.Board) {
	x, y := fr.cellOrigin(pos, board)
	half := float32(fr.CellSize) / 2
	radius := half * 0.7

	vector.DrawFilledCircle(screen, x+half, y+half, radius, types.ColorFood, false)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, segments []domain.Coord, board *domain.Board) {
	for i, cell := range segments {
		x, y := fr.cellOrigin(cell, board)
		size := float32(fr.CellSize - 2)

		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.Darken(cellColor, 0.7)
		}

		vector.DrawFilledRect(screen, x+1, y+1, size, size, cellColor, false)
	}
}
