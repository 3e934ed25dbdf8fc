package domain

import (
	"fmt"
	"strings"
)

const (
	initialTargetLength = 8
	growthPerFood       = 3
	initialSpeed        = 4.0
	maxSpeed            = 12.0

	// speedIncrease tuning: each level adds speedFloor plus a share
	// that shrinks as levels accumulate, so progression decelerates
	// but never stalls.
	speedFloor = 0.05
	speedBoost = 0.45
)

// Snake owns the body segments, facing direction, growth target and
// the step-timing accumulator. Segments are head-first: segments[0]
// is the most recently added cell.
type Snake struct {
	board           *Board
	segments        []Coord
	direction       Direction
	targetLength    int
	speedMultiplier float64
	cooldown        float64
}

func NewSnake(start Coord, dir Direction, board *Board) *Snake {
	return &Snake{
		board:           board,
		segments:        []Coord{start},
		direction:       dir,
		targetLength:    initialTargetLength,
		speedMultiplier: initialSpeed,
		cooldown:        board.CellSize,
	}
}

func (s *Snake) Head() Coord {
	return s.segments[0]
}

// IsFacing reports whether the snake's current movement, derived from
// the relative position of the head and neck segments, matches d. It
// deliberately ignores the stored direction field: with a single
// segment the facing cannot be determined and this is always false.
// The raw difference is compared, so for the one step where head and
// neck straddle the wrap seam no facing matches.
func (s *Snake) IsFacing(d Direction) bool {
	if len(s.segments) < 2 {
		return false
	}
	return s.segments[0].Equals(s.segments[1].Add(d.Delta()))
}

// HandleDirectionIntent applies a requested turn. The turn is legal
// only if the request is perpendicular to the current facing, i.e. the
// snake is moving along the orthogonal axis. Reports whether the
// direction changed.
func (s *Snake) HandleDirectionIntent(requested Direction) bool {
	var legal bool
	if requested.IsVertical() {
		legal = s.IsFacing(DirectionLeft) || s.IsFacing(DirectionRight)
	} else {
		legal = s.IsFacing(DirectionUp) || s.IsFacing(DirectionDown)
	}
	if !legal {
		return false
	}
	s.direction = requested
	return true
}

// Update advances the step timer. When the cooldown crosses zero it
// resets to the cell size and exactly one discrete step is taken:
// one cell prepended at the head and at most one dropped at the tail.
// This is the only place body topology changes.
func (s *Snake) Update(elapsedUnits float64) {
	s.cooldown -= elapsedUnits * s.speedMultiplier
	if s.cooldown >= 0 {
		return
	}
	s.cooldown = s.board.CellSize

	head := s.board.Step(s.segments[0], s.direction)
	s.segments = append([]Coord{head}, s.segments...)
	if len(s.segments) > s.targetLength {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// IncreaseDifficulty extends the growth target and speeds the snake
// up. The speed gain is strictly positive but shrinks with the level,
// and the multiplier is clamped to maxSpeed.
func (s *Snake) IncreaseDifficulty(level int) {
	s.targetLength += growthPerFood
	s.speedMultiplier += speedIncrease(level)
	if s.speedMultiplier > maxSpeed {
		s.speedMultiplier = maxSpeed
	}
}

func speedIncrease(level int) float64 {
	return speedFloor + speedBoost/float64(level+1)
}

// HasSelfCollision reports whether the head occupies the same cell as
// any other segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if seg.Equals(head) {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on the given cell.
func (s *Snake) Occupies(c Coord) bool {
	for _, seg := range s.segments {
		if seg.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.segments)
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

func (s *Snake) Speed() float64 {
	return s.speedMultiplier
}

// SegmentsSnapshot returns an independent copy of the body, head
// first. Callers may mutate it freely.
func (s *Snake) SegmentsSnapshot() []Coord {
	out := make([]Coord, len(s.segments))
	copy(out, s.segments)
	return out
}

// DebugSummary dumps length, speed and the segment list. Diagnostic
// only; the format is not stable.
func (s *Snake) DebugSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "len=%d target=%d speed=%.2f cooldown=%.2f dir=%s segments=",
		len(s.segments), s.targetLength, s.speedMultiplier, s.cooldown, s.direction)
	for i, seg := range s.segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}
