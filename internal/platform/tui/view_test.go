package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snakebreak/internal/config"
	"github.com/vovakirdan/snakebreak/internal/core"
	"github.com/vovakirdan/snakebreak/internal/games/snakebreak"
	"github.com/vovakirdan/snakebreak/internal/scores"
)

func TestViewportProject(t *testing.T) {
	vp := newViewport(800, 600, core.NewRect(1, 2, 80, 20))

	tests := []struct {
		name     string
		world    core.Rect
		expected core.Rect
	}{
		{"brick", core.NewRect(362, 50, 75, 20), core.NewRect(37, 3, 7, 1)},
		{"ball", core.NewRect(390, 525, 20, 20), core.NewRect(40, 19, 2, 1)},
		{"tiny keeps a cell", core.NewRect(0, 0, 1, 1), core.NewRect(1, 2, 1, 1)},
		{"clipped to area", core.NewRect(790, 590, 40, 40), core.NewRect(80, 21, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.project(tt.world); got != tt.expected {
				t.Errorf("project(%+v) = %+v, expected %+v", tt.world, got, tt.expected)
			}
		})
	}
}

func TestViewportDrawUsesTint(t *testing.T) {
	s := core.NewScreen(10, 10)
	vp := newViewport(10, 10, core.NewRect(0, 0, 10, 10))
	brick := &snakebreak.Brick{Rect: core.NewRect(2, 2, 2, 1), Color: core.ColorRed, Active: true}

	vp.draw(s, brick, glyphBrick, core.ColorWhite)
	if cell := s.GetCell(2, 2); cell.Rune != glyphBrick || cell.Color != core.ColorRed {
		t.Errorf("cell = %+v, expected red brick", cell)
	}

	vp.draw(s, segment(core.NewRect(5, 5, 1, 1)), glyphPaddle, paddleColor)
	if cell := s.GetCell(5, 5); cell.Color != paddleColor {
		t.Errorf("cell color = %v, expected fallback %v", cell.Color, paddleColor)
	}
}

func TestRenderGameModes(t *testing.T) {
	g := snakebreak.New(config.DefaultConfig(), nil, nil, nil)
	g.Reset(core.RuntimeConfig{Seed: 7})
	s := core.NewScreen(80, 24)

	renderGame(s, g)
	if out := s.String(); !strings.Contains(out, "Start Game") {
		t.Errorf("main menu missing Start Game:\n%s", out)
	}

	g.Step(core.InputOf(core.ActionConfirm))
	renderGame(s, g)
	out := s.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing score:\n%s", out)
	}
	if !strings.ContainsRune(out, glyphBall) {
		t.Error("ball not drawn")
	}

	g.Step(core.InputOf(core.ActionPause))
	renderGame(s, g)
	if out := s.String(); !strings.Contains(out, "PAUSED") || !strings.Contains(out, "Restart Level") {
		t.Errorf("pause overlay missing:\n%s", out)
	}
}

func TestRenderGameTooSmall(t *testing.T) {
	g := snakebreak.New(config.DefaultConfig(), nil, nil, nil)
	s := core.NewScreen(10, 4)
	renderGame(s, g)

	if !strings.Contains(s.Row(0), "Window") {
		t.Errorf("Row(0) = %q, expected size warning", s.Row(0))
	}
}

func TestRenderHighScores(t *testing.T) {
	out := renderHighScores(nil, 80, 24)
	if !strings.Contains(out, "No scores recorded yet") {
		t.Errorf("empty board missing placeholder:\n%s", out)
	}

	out = renderHighScores([]scores.Entry{{Name: "ACE", Score: 42}}, 80, 24)
	if !strings.Contains(out, "ACE") || !strings.Contains(out, "42") {
		t.Errorf("board missing entry:\n%s", out)
	}
}
