// Package levels provides the brick layouts played by SnakeBreak.
// A level is a grid of single-character brick codes; the simulation decides
// what each code means. This package depends on nothing in the game.
package levels

import (
	"errors"
	"unicode/utf8"
)

// EmptyCode marks a grid cell that never becomes a brick.
const EmptyCode = ' '

// ErrNotFound is returned when a level lookup fails.
var ErrNotFound = errors.New("level not found")

// Level represents one brick layout.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	FilePath string // empty for built-in levels
}

// Width returns the length of the longest row in runes.
func (l Level) Width() int {
	w := 0
	for _, row := range l.Rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	return w
}

// Rectangular reports whether every row has the same rune count. Ragged
// levels still load; columns and centering follow the first row.
func (l Level) Rectangular() bool {
	for _, row := range l.Rows {
		if utf8.RuneCountInString(row) != utf8.RuneCountInString(l.Rows[0]) {
			return false
		}
	}
	return true
}

// Height returns the number of rows.
func (l Level) Height() int {
	return len(l.Rows)
}

// Codes returns the distinct non-empty codes used by the level, in order of
// first appearance.
func (l Level) Codes() []rune {
	seen := make(map[rune]bool)
	var codes []rune
	for _, row := range l.Rows {
		for _, r := range row {
			if r == EmptyCode || seen[r] {
				continue
			}
			seen[r] = true
			codes = append(codes, r)
		}
	}
	return codes
}

// Source supplies an ordered list of levels.
type Source interface {
	Levels() []Level
}

// Set is an in-memory Source.
type Set []Level

// Levels implements Source.
func (s Set) Levels() []Level {
	return s
}

// Find returns the level with the given ID.
func (s Set) Find(id string) (Level, error) {
	for _, lvl := range s {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, ErrNotFound
}
