package tui

import (
	"fmt"

	"github.com/vovakirdan/snakebreak/internal/core"
	"github.com/vovakirdan/snakebreak/internal/games/snakebreak"
)

// Glyphs used for game entities.
const (
	glyphBrick   = '█'
	glyphPaddle  = '█'
	glyphHead    = '▓'
	glyphBall    = '●'
	glyphPowerUp = '◆'
)

// Default colors for entities that carry no tint of their own.
const (
	paddleColor = core.ColorGreen
	headColor   = core.ColorDarkGreen
	ballColor   = core.ColorYellow
)

// drawable is anything with a position in world units.
type drawable interface {
	Bounds() core.Rect
}

// tinted is implemented by entities that choose their own color.
type tinted interface {
	Tint() core.Color
}

// viewport maps world coordinates onto a block of terminal cells.
type viewport struct {
	world core.Rect // play field in world units
	area  core.Rect // target cells on screen
}

// newViewport fits a world of ww x wh units into area.
func newViewport(ww, wh int, area core.Rect) viewport {
	return viewport{world: core.NewRect(0, 0, ww, wh), area: area}
}

// cellX converts a world x to a column.
func (v viewport) cellX(x int) int {
	if v.world.W == 0 {
		return v.area.X
	}
	return v.area.X + x*v.area.W/v.world.W
}

// cellY converts a world y to a row.
func (v viewport) cellY(y int) int {
	if v.world.H == 0 {
		return v.area.Y
	}
	return v.area.Y + y*v.area.H/v.world.H
}

// project converts a world rectangle to cells. Anything with a size keeps at
// least one cell in each direction, and the result never leaves the area.
func (v viewport) project(r core.Rect) core.Rect {
	x0, y0 := v.cellX(r.X), v.cellY(r.Y)
	x1, y1 := v.cellX(r.Right()), v.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, v.area.X, v.area.Right())
	x1 = core.Clamp(x1, v.area.X, v.area.Right())
	y0 = core.Clamp(y0, v.area.Y, v.area.Bottom())
	y1 = core.Clamp(y1, v.area.Y, v.area.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// draw fills the projected bounds of d. Tinted entities use their own color.
func (v viewport) draw(s *core.Screen, d drawable, glyph rune, fallback core.Color) {
	color := fallback
	if t, ok := d.(tinted); ok {
		color = t.Tint()
	}
	s.FillRect(v.project(d.Bounds()), glyph, color)
}

// segment wraps a paddle segment so it can be drawn.
type segment core.Rect

func (s segment) Bounds() core.Rect { return core.Rect(s) }

// renderGame draws the play field, HUD and any menu overlay for the current mode.
func renderGame(s *core.Screen, g *snakebreak.Game) {
	s.Clear()
	if s.Width() < 20 || s.Height() < 8 {
		s.DrawText(0, 0, "Window too small")
		return
	}

	switch g.Mode() {
	case snakebreak.ModeMainMenu:
		renderMainMenu(s, g)
		return
	case snakebreak.ModeLevelSelect:
		renderLevelSelect(s, g)
		return
	}

	// Row 0 holds the HUD; the field is boxed below it.
	frame := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(frame)
	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	bounds := g.Bounds()
	vp := newViewport(bounds.W, bounds.H, inner)

	renderField(s, vp, g)
	renderHUD(s, g)

	switch g.Mode() {
	case snakebreak.ModePaused:
		renderOverlay(s, "PAUSED", menuLines(g))
	case snakebreak.ModeGameOver:
		renderOverlay(s, "GAME OVER", gameOverLines(g))
	}
}

func renderField(s *core.Screen, vp viewport, g *snakebreak.Game) {
	for _, brick := range g.Field().Bricks() {
		if brick.Active {
			vp.draw(s, brick, glyphBrick, core.ColorWhite)
		}
	}
	for _, pu := range g.PowerUps() {
		vp.draw(s, pu, glyphPowerUp, core.ColorWhite)
	}

	segs := g.Paddle().Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		if i == 0 {
			vp.draw(s, segment(segs[i]), glyphHead, headColor)
			continue
		}
		vp.draw(s, segment(segs[i]), glyphPaddle, paddleColor)
	}

	vp.draw(s, g.Ball(), glyphBall, ballColor)
}

func renderHUD(s *core.Screen, g *snakebreak.Game) {
	lvls := g.Levels()
	name := lvls[g.LevelIndex()].Name
	if name == "" {
		name = lvls[g.LevelIndex()].ID
	}
	hud := fmt.Sprintf(" Score: %d   Level %d/%d: %s", g.Score(), g.LevelIndex()+1, len(lvls), name)

	if g.Effects().Active(snakebreak.SlowBall) {
		secs := g.Effects().Remaining(snakebreak.SlowBall) / max(g.TickRate(), 1)
		hud += fmt.Sprintf("   Slow ball %ds", secs)
	}
	s.DrawText(0, 0, hud)
}

func renderMainMenu(s *core.Screen, g *snakebreak.Game) {
	y := s.Height()/2 - 5
	s.DrawTextCentered(y, "S N A K E B R E A K")
	s.DrawTextCentered(y+1, "a snake that plays breakout")

	for i, line := range menuLines(g) {
		s.DrawTextCentered(y+4+i, line)
	}

	if best := g.HighScores(); len(best) > 0 {
		s.DrawTextCentered(y+10, fmt.Sprintf("Best: %s %d", best[0].Name, best[0].Score))
	}
}

func renderLevelSelect(s *core.Screen, g *snakebreak.Game) {
	y := 2
	s.DrawTextCentered(y, "SELECT LEVEL")
	lvls := g.Levels()

	// Keep the cursor in view when there are more levels than rows.
	rows := s.Height() - y - 3
	first := 0
	if g.LevelCursor() >= rows {
		first = g.LevelCursor() - rows + 1
	}
	for i := first; i < len(lvls) && i-first < rows; i++ {
		cursor := "  "
		if i == g.LevelCursor() {
			cursor = "> "
		}
		name := lvls[i].Name
		if name == "" {
			name = lvls[i].ID
		}
		s.DrawTextCentered(y+2+i-first, fmt.Sprintf("%s%2d. %s", cursor, i+1, name))
	}
}

// menuLines returns the active menu with the cursor marked.
func menuLines(g *snakebreak.Game) []string {
	items := g.MenuItems()
	lines := make([]string, len(items))
	for i, item := range items {
		cursor := "  "
		if i == g.MenuCursor() {
			cursor = "> "
		}
		lines[i] = fmt.Sprintf("%s%s", cursor, item)
	}
	return lines
}

func gameOverLines(g *snakebreak.Game) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", g.Score()),
		g.LastCause(),
	}
	if rank := g.LastRank(); rank >= 0 {
		lines = append(lines, fmt.Sprintf("New high score! Rank #%d", rank+1))
	}
	return append(lines, "", "enter/r: play again", "esc: main menu")
}

// renderOverlay draws a boxed message in the middle of the screen.
func renderOverlay(s *core.Screen, title string, lines []string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, title)
	for i, l := range lines {
		s.DrawText(box.X+2, box.Y+3+i, l)
	}
}
