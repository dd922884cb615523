package snakebreak

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snakebreak/internal/core"
)

// ErrUnknownPowerUp is returned when a power-up is created with a type
// outside PowerUpTypes.
var ErrUnknownPowerUp = errors.New("unknown power-up type")

// PowerUpType identifies a collectible effect.
type PowerUpType int

const (
	WiderPaddle PowerUpType = iota
	SlowBall
)

// PowerUpTypes lists every valid type, in the order used for random drops.
var PowerUpTypes = []PowerUpType{WiderPaddle, SlowBall}

func (t PowerUpType) String() string {
	switch t {
	case WiderPaddle:
		return "wider_paddle"
	case SlowBall:
		return "slow_ball"
	default:
		return fmt.Sprintf("PowerUpType(%d)", int(t))
	}
}

// Valid reports whether t is a known type.
func (t PowerUpType) Valid() bool {
	return t == WiderPaddle || t == SlowBall
}

// Color returns the display color of the pickup.
func (t PowerUpType) Color() core.Color {
	switch t {
	case WiderPaddle:
		return core.ColorCyan
	case SlowBall:
		return core.ColorPink
	default:
		return core.ColorGray
	}
}

// PowerUp is a falling pickup released by a broken brick.
type PowerUp struct {
	Rect  core.Rect
	Type  PowerUpType
	Speed int
	Alive bool
}

var (
	_ core.Steppable     = (*PowerUp)(nil)
	_ core.CollisionBody = (*PowerUp)(nil)
)

// NewPowerUp creates a pickup of the given size centered on (cx, cy).
func NewPowerUp(cx, cy int, t PowerUpType, size, speed int) (*PowerUp, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPowerUp, int(t))
	}
	return &PowerUp{
		Rect:  core.RectFromCenter(cx, cy, size, size),
		Type:  t,
		Speed: speed,
		Alive: true,
	}, nil
}

// Step moves the pickup down. It dies once its top edge is below the field.
func (p *PowerUp) Step(field core.Rect) {
	if !p.Alive {
		return
	}
	p.Rect = p.Rect.Translate(0, p.Speed)
	if p.Rect.Y > field.Bottom() {
		p.Alive = false
	}
}

// Bounds implements core.CollisionBody.
func (p *PowerUp) Bounds() core.Rect {
	return p.Rect
}

// Tint returns the display color of the pickup.
func (p *PowerUp) Tint() core.Color {
	return p.Type.Color()
}
