package domain

// BoardConfig is the process-wide board configuration, fixed at
// construction. OriginX/OriginY are the half-extents the wrap bounds
// are symmetric around.
type BoardConfig struct {
	MaxCellsX      int32
	MaxCellsY      int32
	OriginX        int32
	OriginY        int32
	CellSize       float64
	StartCell      Coord
	StartDirection Direction
}

func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		MaxCellsX:      40,
		MaxCellsY:      30,
		OriginX:        20,
		OriginY:        15,
		CellSize:       20,
		StartCell:      Coord{0, 0},
		StartDirection: DirectionRight,
	}
}

func (c *BoardConfig) Validate() bool {
	if c.MaxCellsX < 4 || c.MaxCellsX > 128 {
		return false
	}
	if c.MaxCellsY < 4 || c.MaxCellsY > 128 {
		return false
	}
	if c.OriginX < 1 || c.OriginY < 1 {
		return false
	}
	if c.CellSize <= 0 {
		return false
	}
	if !c.StartDirection.Valid() {
		return false
	}
	if c.StartCell.X < -c.OriginX || c.StartCell.X > c.OriginX {
		return false
	}
	if c.StartCell.Y < -c.OriginY || c.StartCell.Y > c.OriginY {
		return false
	}
	return true
}

func (c *BoardConfig) Copy() *BoardConfig {
	return &BoardConfig{
		MaxCellsX:      c.MaxCellsX,
		MaxCellsY:      c.MaxCellsY,
		OriginX:        c.OriginX,
		OriginY:        c.OriginY,
		CellSize:       c.CellSize,
		StartCell:      c.StartCell,
		StartDirection: c.StartDirection,
	}
}
