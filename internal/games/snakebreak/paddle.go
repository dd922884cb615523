package snakebreak

import "github.com/vovakirdan/snakebreak/internal/core"

// MinPaddleLength is the number of segments the paddle starts with and never
// drops below.
const MinPaddleLength = 3

// Paddle is the player-controlled snake. It is a chain of square segments,
// head first, that advances one segment length per move.
type Paddle struct {
	body        []core.Rect
	direction   Direction
	growPending int

	anchorX int // head top-left at reset
	anchorY int
	segment int
	length  int
}

var _ core.CollisionBody = (*Paddle)(nil)

// NewPaddle creates a paddle whose head sits at (anchorX, anchorY) with the
// remaining segments trailing to the left.
func NewPaddle(anchorX, anchorY, segment, length int) *Paddle {
	p := &Paddle{
		anchorX: anchorX,
		anchorY: anchorY,
		segment: segment,
		length:  max(length, MinPaddleLength),
	}
	p.Reset()
	return p
}

// Reset rebuilds the body at the anchor, heading right, with no pending growth.
func (p *Paddle) Reset() {
	p.body = make([]core.Rect, p.length)
	for i := range p.body {
		p.body[i] = core.NewRect(p.anchorX-i*p.segment, p.anchorY, p.segment, p.segment)
	}
	p.direction = DirRight
	p.growPending = 0
}

// Move steps the head one segment in the current direction. The tail is kept
// while growth is pending. Walls are not checked here.
func (p *Paddle) Move() {
	dx, dy := p.direction.Delta()
	head := p.body[0].Translate(dx*p.segment, dy*p.segment)

	p.body = append(p.body, core.Rect{})
	copy(p.body[1:], p.body)
	p.body[0] = head

	if p.growPending > 0 {
		p.growPending--
		return
	}
	p.body = p.body[:len(p.body)-1]
}

// Grow queues n segments to be added over the next n moves.
func (p *Paddle) Grow(n int) {
	if n <= 0 {
		return
	}
	p.growPending += n
}

// HandleDirectionInput turns the paddle unless d would reverse it.
func (p *Paddle) HandleDirectionInput(d Direction) bool {
	if d == p.direction.Opposite() {
		return false
	}
	p.direction = d
	return true
}

// CheckSelfCollision reports whether the head overlaps any other segment.
func (p *Paddle) CheckSelfCollision() bool {
	head := p.body[0]
	for _, seg := range p.body[1:] {
		if head.Intersects(seg) {
			return true
		}
	}
	return false
}

// CheckWallCollision reports whether the head's top-left corner has left
// [0,width) x [0,height).
func (p *Paddle) CheckWallCollision(width, height int) bool {
	head := p.body[0]
	return head.X < 0 || head.X >= width || head.Y < 0 || head.Y >= height
}

// Head returns the lead segment.
func (p *Paddle) Head() core.Rect {
	return p.body[0]
}

// Bounds implements core.CollisionBody using the head segment, which is the
// part that collects power-ups.
func (p *Paddle) Bounds() core.Rect {
	return p.body[0]
}

// Segments returns a copy of the body, head first.
func (p *Paddle) Segments() []core.Rect {
	return append([]core.Rect(nil), p.body...)
}

// Len returns the number of segments.
func (p *Paddle) Len() int {
	return len(p.body)
}

// Direction returns the current heading.
func (p *Paddle) Direction() Direction {
	return p.direction
}

// GrowPending returns the number of queued segments.
func (p *Paddle) GrowPending() int {
	return p.growPending
}
