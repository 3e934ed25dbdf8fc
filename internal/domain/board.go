package domain

// Board describes the toroidal playing field. Cells are addressed by
// origin-centered coordinates: the X axis covers [-OriginX, OriginX]
// and the Y axis covers [-OriginY, OriginY]. Immutable after
// construction.
type Board struct {
	MaxCellsX int32
	MaxCellsY int32
	OriginX   int32
	OriginY   int32
	CellSize  float64
}

func NewBoard(cfg *BoardConfig) *Board {
	return &Board{
		MaxCellsX: cfg.MaxCellsX,
		MaxCellsY: cfg.MaxCellsY,
		OriginX:   cfg.OriginX,
		OriginY:   cfg.OriginY,
		CellSize:  cfg.CellSize,
	}
}

// Wrap folds a single-axis coordinate back onto the board after a unit
// step. Only single-step overshoot is handled; step deltas are always
// of unit magnitude, so the multi-wrap case cannot arise.
func Wrap(v, axisMax, axisMin int32) int32 {
	if v > axisMax {
		return axisMin
	}
	if v < axisMin {
		return axisMax
	}
	return v
}

// Step moves one cell in the given direction, wrapping each axis
// independently.
func (b *Board) Step(c Coord, d Direction) Coord {
	n := c.Add(d.Delta())
	n.X = Wrap(n.X, b.OriginX, -b.OriginX)
	n.Y = Wrap(n.Y, b.OriginY, -b.OriginY)
	return n
}

// Contains reports whether a cell lies within the wrap bounds.
func (b *Board) Contains(c Coord) bool {
	return c.X >= -b.OriginX && c.X <= b.OriginX &&
		c.Y >= -b.OriginY && c.Y <= b.OriginY
}
