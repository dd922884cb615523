package snakebreak

import "github.com/vovakirdan/snakebreak/internal/core"

// Direction is one of the four cardinal headings of the paddle.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionPriority is the order in which simultaneous steering actions are
// considered; only the first one present in a frame is used.
var directionPriority = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// directionFromInput returns the steering request carried by a frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	for _, p := range directionPriority {
		if in.Has(p.action) {
			return p.dir, true
		}
	}
	return 0, false
}
