package snakebreak

import "github.com/vovakirdan/snakebreak/internal/core"

// Ball is the bouncing body. Its position is the bounding box of the circle.
type Ball struct {
	rect   core.Rect
	radius int
	VX, VY int

	initialX, initialY int // center restored by Reset
}

var _ core.CollisionBody = (*Ball)(nil)

// NewBall creates a ball centered on (cx, cy).
func NewBall(cx, cy, radius, vx, vy int) *Ball {
	return &Ball{
		rect:     core.RectFromCenter(cx, cy, radius*2, radius*2),
		radius:   radius,
		VX:       vx,
		VY:       vy,
		initialX: cx,
		initialY: cy,
	}
}

// Step advances the ball one tick and resolves collisions in a fixed order:
// walls, then the first overlapping paddle segment, then the first overlapping
// active brick. It returns the points earned and any power-ups released.
// Leaving through the bottom is not handled; callers treat it as a loss.
func (b *Ball) Step(width, height int, segments []core.Rect, field *BrickField) (int, []*PowerUp) {
	b.rect = b.rect.Translate(b.VX, b.VY)

	b.bounceWalls(width)
	b.bouncePaddle(segments)
	return b.hitBrick(field)
}

// bounceWalls reflects the ball off the left, right and top edges and pulls it
// back inside on the axis that bounced. Touching an edge counts as a hit.
func (b *Ball) bounceWalls(width int) {
	if b.rect.X <= 0 {
		b.VX = core.Abs(b.VX)
		b.rect.X = 0
	}
	if b.rect.Right() >= width {
		b.VX = -core.Abs(b.VX)
		b.rect.X = width - b.rect.W
	}
	if b.rect.Y <= 0 {
		b.VY = core.Abs(b.VY)
		b.rect.Y = 0
	}
}

// bouncePaddle inverts the vertical velocity off the first segment the ball
// overlaps, in body order, and rests it on that segment's top edge.
func (b *Ball) bouncePaddle(segments []core.Rect) bool {
	for _, seg := range segments {
		if !b.rect.Intersects(seg) {
			continue
		}
		b.VY = -b.VY
		b.rect.Y = seg.Y - b.rect.H
		return true
	}
	return false
}

// hitBrick breaks the first active brick the ball overlaps, in build order.
func (b *Ball) hitBrick(field *BrickField) (int, []*PowerUp) {
	if field == nil {
		return 0, nil
	}

	for _, brick := range field.bricks {
		if !brick.Active || !b.rect.Intersects(brick.Rect) {
			continue
		}

		// Rest against the face that was struck before reflecting.
		if b.VY > 0 {
			b.rect.Y = brick.Rect.Y - b.rect.H
		} else {
			b.rect.Y = brick.Rect.Bottom()
		}
		b.VY = -b.VY

		brick.Break()

		var spawned []*PowerUp
		if brick.HasPowerUp {
			cx, cy := brick.Rect.Center()
			if pu, err := field.spawn(cx, cy, brick.PowerUp); err == nil {
				spawned = append(spawned, pu)
			}
		}
		return 1, spawned
	}
	return 0, nil
}

// Reset moves the ball back to its initial center. Velocity is kept.
func (b *Ball) Reset() {
	b.rect = b.rect.WithCenter(b.initialX, b.initialY)
}

// Bounds implements core.CollisionBody.
func (b *Ball) Bounds() core.Rect {
	return b.rect
}

// SetBounds places the ball's bounding box directly.
func (b *Ball) SetBounds(r core.Rect) {
	b.rect = r
}

// Center returns the center of the ball.
func (b *Ball) Center() (int, int) {
	return b.rect.Center()
}

// Radius returns the ball radius.
func (b *Ball) Radius() int {
	return b.radius
}

// Velocity returns the current velocity.
func (b *Ball) Velocity() (int, int) {
	return b.VX, b.VY
}

// SetVelocity replaces the velocity.
func (b *Ball) SetVelocity(vx, vy int) {
	b.VX, b.VY = vx, vy
}
