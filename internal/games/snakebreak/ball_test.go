package snakebreak

import (
	"testing"

	"github.com/vovakirdan/snakebreak/internal/config"
	"github.com/vovakirdan/snakebreak/internal/core"
	"github.com/vovakirdan/snakebreak/internal/levels"
)

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy, vx, vy int
		wantX, wantY   int
		wantVX, wantVY int
	}{
		{"left wall", 12, 300, -4, 0, 0, 290, 4, 0},
		{"left wall touching", 14, 300, -4, 0, 0, 290, 4, 0},
		{"right wall", 788, 300, 4, 0, 780, 290, -4, 0},
		{"top wall", 400, 12, 0, -4, 390, 0, 0, 4},
		{"top left corner", 12, 12, -4, -4, 0, 0, 4, 4},
		{"open field", 400, 300, 4, -4, 394, 286, 4, -4},
		{"bottom is open", 400, 595, 0, 4, 390, 589, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(tt.cx, tt.cy, 10, tt.vx, tt.vy)
			b.Step(800, 600, nil, nil)

			r := b.Bounds()
			if r.X != tt.wantX || r.Y != tt.wantY {
				t.Errorf("position = (%d,%d), expected (%d,%d)", r.X, r.Y, tt.wantX, tt.wantY)
			}
			if b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("velocity = (%d,%d), expected (%d,%d)", b.VX, b.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestWallBounceKeepsSpeed(t *testing.T) {
	b := NewBall(400, 300, 10, 4, -4)
	for i := 0; i < 500; i++ {
		b.Step(800, 600, nil, nil)
		if core.Abs(b.VX) != 4 || core.Abs(b.VY) != 4 {
			t.Fatalf("tick %d: velocity = (%d,%d), expected magnitude 4", i, b.VX, b.VY)
		}
		r := b.Bounds()
		if r.X < 0 || r.Right() > 800 || r.Y < 0 {
			t.Fatalf("tick %d: ball %+v left the field", i, r)
		}
		if b.VY > 0 && r.Y > 500 {
			b.VY = -b.VY
		}
	}
}

func TestPaddleBounceSingle(t *testing.T) {
	// Ball overlaps two stacked segments in the same tick.
	segments := []core.Rect{
		core.NewRect(390, 500, 20, 20),
		core.NewRect(390, 515, 20, 20),
	}
	b := NewBall(400, 505, 10, 0, 4)
	b.Step(800, 600, segments, nil)

	if b.VY != -4 {
		t.Errorf("VY = %d, expected -4", b.VY)
	}
	if got := b.Bounds().Bottom(); got != 500 {
		t.Errorf("ball bottom = %d, expected 500 (top of first segment)", got)
	}
}

func TestPaddleBounceInverts(t *testing.T) {
	tests := []struct {
		name   string
		vy     int
		wantVY int
	}{
		{"falling", 4, -4},
		{"rising", -4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := []core.Rect{core.NewRect(390, 500, 20, 20)}
			b := NewBall(400, 510, 10, 0, tt.vy)
			b.Step(800, 600, segments, nil)

			if b.VY != tt.wantVY {
				t.Errorf("VY = %d, expected %d", b.VY, tt.wantVY)
			}
			if got := b.Bounds().Bottom(); got != 500 {
				t.Errorf("ball bottom = %d, expected 500", got)
			}
		})
	}
}

func singleBrickField(t *testing.T, row string, chance float64) *BrickField {
	t.Helper()
	cfg := config.DefaultConfig()
	tiers := TierSet{'S': {Code: 'S', Name: "standard", Color: core.ColorBlue, PowerUpChance: chance}}
	lvl := levels.Level{ID: "test", Rows: []string{row}}
	return NewBrickField(lvl, 800, LayoutFromConfig(cfg.Bricks), tiers, cfg.PowerUps, core.NewRNG(1), nil)
}

func TestBrickHitFromBelow(t *testing.T) {
	field := singleBrickField(t, "S", 0)
	brick := field.Bricks()[0]
	if brick.Rect != core.NewRect(362, 50, 75, 20) {
		t.Fatalf("brick rect = %+v, expected centered at x=362", brick.Rect)
	}

	b := NewBall(400, 82, 10, 0, -4)
	points, spawned := b.Step(800, 600, nil, field)

	if points != 1 {
		t.Errorf("points = %d, expected 1", points)
	}
	if len(spawned) != 0 {
		t.Errorf("spawned %d power-ups, expected 0", len(spawned))
	}
	if brick.Active {
		t.Error("brick should be broken")
	}
	if b.VY != 4 {
		t.Errorf("VY = %d, expected 4", b.VY)
	}
	if b.Bounds().Y != brick.Rect.Bottom() {
		t.Errorf("ball top = %d, expected brick bottom %d", b.Bounds().Y, brick.Rect.Bottom())
	}

	// The broken brick never scores again.
	b.SetBounds(core.NewRect(390, 72, 20, 20))
	b.SetVelocity(0, -4)
	if points, _ := b.Step(800, 600, nil, field); points != 0 {
		t.Errorf("second hit points = %d, expected 0", points)
	}
}

func TestBrickHitFromAbove(t *testing.T) {
	field := singleBrickField(t, "S", 0)
	brick := field.Bricks()[0]

	b := NewBall(400, 38, 10, 0, 4)
	points, _ := b.Step(800, 600, nil, field)

	if points != 1 {
		t.Errorf("points = %d, expected 1", points)
	}
	if b.VY != -4 {
		t.Errorf("VY = %d, expected -4", b.VY)
	}
	if b.Bounds().Bottom() != brick.Rect.Y {
		t.Errorf("ball bottom = %d, expected brick top %d", b.Bounds().Bottom(), brick.Rect.Y)
	}
}

func TestBrickOnePerTick(t *testing.T) {
	field := singleBrickField(t, "SS", 0)
	left, right := field.Bricks()[0], field.Bricks()[1]

	// Straddles the gap between both bricks.
	b := NewBall(0, 0, 10, 0, -4)
	b.SetBounds(core.NewRect(392, 70, 20, 20))
	points, _ := b.Step(800, 600, nil, field)

	if points != 1 {
		t.Errorf("points = %d, expected 1", points)
	}
	if left.Active {
		t.Error("first brick in build order should break")
	}
	if !right.Active {
		t.Error("second brick should survive this tick")
	}
	if field.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", field.ActiveCount())
	}
}

func TestBrickReleasesPowerUp(t *testing.T) {
	field := singleBrickField(t, "S", 1.0)
	brick := field.Bricks()[0]
	if !brick.HasPowerUp {
		t.Fatal("brick with chance 1 should carry a power-up")
	}

	b := NewBall(400, 82, 10, 0, -4)
	_, spawned := b.Step(800, 600, nil, field)

	if len(spawned) != 1 {
		t.Fatalf("spawned %d power-ups, expected 1", len(spawned))
	}
	pu := spawned[0]
	if pu.Type != brick.PowerUp {
		t.Errorf("power-up type = %v, expected %v", pu.Type, brick.PowerUp)
	}
	if pu.Rect != core.NewRect(392, 53, 15, 15) {
		t.Errorf("power-up rect = %+v, expected centered on brick", pu.Rect)
	}
	if !pu.Alive {
		t.Error("new power-up should be alive")
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(400, 535, 10, 4, -4)
	b.Step(800, 600, nil, nil)
	b.Reset()

	cx, cy := b.Center()
	if cx != 400 || cy != 535 {
		t.Errorf("Center() = (%d,%d), expected (400,535)", cx, cy)
	}
	if b.Radius() != 10 {
		t.Errorf("Radius() = %d, expected 10", b.Radius())
	}
}
