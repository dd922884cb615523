package snakebreak

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebreak/internal/config"
	"github.com/vovakirdan/snakebreak/internal/core"
	"github.com/vovakirdan/snakebreak/internal/levels"
)

// Tier is a brick category selected by a level code.
type Tier struct {
	Code          rune
	Name          string
	Color         core.Color
	PowerUpChance float64 // probability in [0,1] that a brick carries a power-up
}

// TierSet maps level codes to tiers.
type TierSet map[rune]Tier

// NewTierSet builds tiers from configuration. Unknown color names fall back
// to the default color and are logged.
func NewTierSet(cfgs []config.TierConfig, logger *log.Logger) TierSet {
	tiers := make(TierSet, len(cfgs))
	for _, tc := range cfgs {
		code := []rune(tc.Code)
		if len(code) != 1 {
			continue
		}
		color, ok := core.ParseColor(tc.Color)
		if !ok && logger != nil {
			logger.Warn("unknown tier color", "code", tc.Code, "color", tc.Color)
		}
		tiers[code[0]] = Tier{
			Code:          code[0],
			Name:          tc.Name,
			Color:         color,
			PowerUpChance: tc.PowerUpChance,
		}
	}
	return tiers
}

// Valid reports whether code is empty space or a known tier.
func (t TierSet) Valid(code rune) bool {
	if code == levels.EmptyCode {
		return true
	}
	_, ok := t[code]
	return ok
}

// Unknown returns the codes a level uses that are not tiers.
func (t TierSet) Unknown(lvl levels.Level) []rune {
	var unknown []rune
	for _, code := range lvl.Codes() {
		if !t.Valid(code) {
			unknown = append(unknown, code)
		}
	}
	return unknown
}

// Layout is the fixed geometry of the brick grid.
type Layout struct {
	BrickW, BrickH int
	Padding        int
	OffsetTop      int
}

// LayoutFromConfig extracts the brick layout.
func LayoutFromConfig(c config.BrickConfig) Layout {
	return Layout{BrickW: c.Width, BrickH: c.Height, Padding: c.Padding, OffsetTop: c.OffsetTop}
}

// Brick is one breakable cell.
type Brick struct {
	Rect       core.Rect
	Tier       rune
	Color      core.Color
	Active     bool
	PowerUp    PowerUpType
	HasPowerUp bool
}

var _ core.CollisionBody = (*Brick)(nil)

// Break deactivates the brick. It reports whether the brick was active.
func (b *Brick) Break() bool {
	if !b.Active {
		return false
	}
	b.Active = false
	return true
}

// Bounds implements core.CollisionBody.
func (b *Brick) Bounds() core.Rect {
	return b.Rect
}

// Tint returns the tier color.
func (b *Brick) Tint() core.Color {
	return b.Color
}

// BrickField is the set of bricks of one level, in row-major order.
type BrickField struct {
	bricks []*Brick

	dropSize  int
	dropSpeed int
}

// NewBrickField lays out a level centered in playWidth. Each tier rolls its
// power-up chance once per brick using rng. Codes with no tier are logged and
// left empty.
func NewBrickField(lvl levels.Level, playWidth int, layout Layout, tiers TierSet, drops config.PowerUpConfig, rng *core.RNG, logger *log.Logger) *BrickField {
	f := &BrickField{dropSize: drops.Size, dropSpeed: drops.FallSpeed}

	cols := 0
	if len(lvl.Rows) > 0 {
		cols = len([]rune(lvl.Rows[0]))
	}
	total := cols*layout.BrickW + (cols-1)*layout.Padding
	offsetLeft := (playWidth - total) / 2

	for r, row := range lvl.Rows {
		for c, code := range []rune(row) {
			if code == levels.EmptyCode {
				continue
			}
			tier, ok := tiers[code]
			if !ok {
				if logger != nil {
					logger.Warn("unknown brick code, skipping", "level", lvl.ID, "code", string(code), "row", r, "col", c)
				}
				continue
			}

			brick := &Brick{
				Rect: core.NewRect(
					offsetLeft+c*(layout.BrickW+layout.Padding),
					layout.OffsetTop+r*(layout.BrickH+layout.Padding),
					layout.BrickW, layout.BrickH,
				),
				Tier:   code,
				Color:  tier.Color,
				Active: true,
			}
			if rng != nil && rng.Float64() < tier.PowerUpChance {
				brick.PowerUp = PowerUpTypes[rng.Intn(len(PowerUpTypes))]
				brick.HasPowerUp = true
			}
			f.bricks = append(f.bricks, brick)
		}
	}
	return f
}

// spawn releases a power-up centered on (cx, cy).
func (f *BrickField) spawn(cx, cy int, t PowerUpType) (*PowerUp, error) {
	return NewPowerUp(cx, cy, t, f.dropSize, f.dropSpeed)
}

// Cleared reports whether the field had bricks and none remain active.
func (f *BrickField) Cleared() bool {
	return len(f.bricks) > 0 && f.ActiveCount() == 0
}

// ActiveCount returns the number of unbroken bricks.
func (f *BrickField) ActiveCount() int {
	n := 0
	for _, b := range f.bricks {
		if b.Active {
			n++
		}
	}
	return n
}

// Len returns the number of bricks built.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Bricks returns the bricks in row-major order.
func (f *BrickField) Bricks() []*Brick {
	return f.bricks
}
