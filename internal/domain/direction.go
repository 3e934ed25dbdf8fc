package domain

import "fmt"

type Direction int32

const (
	DirectionUp    Direction = 1
	DirectionRight Direction = 2
	DirectionDown  Direction = 3
	DirectionLeft  Direction = 4
)

// DirectionScanOrder is the fixed order in which direction intents are
// polled each frame. Each intent is validated independently, so the
// last accepted one in this order wins.
var DirectionScanOrder = [4]Direction{
	DirectionUp,
	DirectionRight,
	DirectionDown,
	DirectionLeft,
}

// Delta maps a direction to its unit cell offset. Y grows upward.
// A value outside the four enumerants is a programming defect;
// there is no corrective action, so it panics.
func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, 1}
	case DirectionRight:
		return Coord{1, 0}
	case DirectionDown:
		return Coord{0, -1}
	case DirectionLeft:
		return Coord{-1, 0}
	}
	panic(fmt.Sprintf("domain: invalid direction %d", int32(d)))
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionRight:
		return DirectionLeft
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	}
	panic(fmt.Sprintf("domain: invalid direction %d", int32(d)))
}

func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionLeft
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int32(d))
}
