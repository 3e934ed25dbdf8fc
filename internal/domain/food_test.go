package domain

import (
	"errors"
	"testing"
)

type occupierFunc func(Coord) bool

func (f occupierFunc) Occupies(c Coord) bool { return f(c) }

func foodBoard() *Board {
	return &Board{MaxCellsX: 8, MaxCellsY: 8, OriginX: 4, OriginY: 4, CellSize: 4}
}

func TestFoodNeverOverlapsSnake(t *testing.T) {
	b := foodBoard()
	s := NewSnake(Coord{0, 0}, DirectionRight, b)
	for i := 0; i < 6; i++ {
		stepOnce(s)
	}

	f, err := NewFood(s, b)
	if err != nil {
		t.Fatalf("NewFood: %v", err)
	}
	for i := 0; i < 50; i++ {
		if err := f.Relocate(); err != nil {
			t.Fatalf("Relocate %d: %v", i, err)
		}
		if s.Occupies(f.Position()) {
			t.Fatalf("food placed on the snake at %s", f.Position())
		}
	}
}

func TestFoodResolvesToOnlyFreeCell(t *testing.T) {
	free := Coord{3, 3}
	occ := occupierFunc(func(c Coord) bool { return !c.Equals(free) })

	f, err := NewFood(occ, foodBoard())
	if err != nil {
		t.Fatalf("NewFood: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := f.Relocate(); err != nil {
			t.Fatalf("Relocate %d: %v", i, err)
		}
		if got := f.Position(); !got.Equals(free) {
			t.Fatalf("Relocate %d landed on %s, want %s", i, got, free)
		}
	}
}

func TestFoodPlacementExhaustedOnFullBoard(t *testing.T) {
	occ := occupierFunc(func(Coord) bool { return true })

	_, err := NewFood(occ, foodBoard())
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("NewFood on a full board: err = %v, want ErrPlacementExhausted", err)
	}
}
