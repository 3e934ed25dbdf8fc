package domain

import (
	"errors"
	"math/rand"
)

const maxPlacementAttempts = 100

// ErrPlacementExhausted is returned when every cell of the board is
// occupied and no food placement exists.
var ErrPlacementExhausted = errors.New("domain: no free cell for food placement")

// CellOccupier is the read-only occupancy view the food queries. The
// food never mutates the snake through it.
type CellOccupier interface {
	Occupies(Coord) bool
}

// Food owns the food's grid cell. Immutable between relocations.
type Food struct {
	occ   CellOccupier
	board *Board
	pos   Coord
}

func NewFood(occ CellOccupier, board *Board) (*Food, error) {
	f := &Food{occ: occ, board: board}
	if err := f.Relocate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Food) Position() Coord {
	return f.pos
}

// Relocate finds a cell not occupied by the snake and commits it as
// the new position. Rejection sampling is bounded; when the random
// attempts are exhausted a deterministic sweep finds the first free
// cell, so placement succeeds whenever any free cell exists. Only a
// completely occupied board yields ErrPlacementExhausted.
func (f *Food) Relocate() error {
	for attempts := 0; attempts < maxPlacementAttempts; attempts++ {
		pos := Coord{
			X: rand.Int31n(f.board.MaxCellsX) - f.board.OriginX,
			Y: rand.Int31n(f.board.MaxCellsY) - f.board.OriginY,
		}
		if !f.occ.Occupies(pos) {
			f.pos = pos
			return nil
		}
	}

	for x := int32(0); x < f.board.MaxCellsX; x++ {
		for y := int32(0); y < f.board.MaxCellsY; y++ {
			pos := Coord{X: x - f.board.OriginX, Y: y - f.board.OriginY}
			if !f.occ.Occupies(pos) {
				f.pos = pos
				return nil
			}
		}
	}

	return ErrPlacementExhausted
}
