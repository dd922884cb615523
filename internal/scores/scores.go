// Package scores provides the ranked high-score list and the persistence
// contract its backends implement.
package scores

import (
	"sort"
	"strings"
)

// DefaultMaxEntries is the board length used when none is configured.
const DefaultMaxEntries = 5

// DefaultName is recorded when the player did not choose a name.
const DefaultName = "PLY"

// Entry is a single high-score record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store persists a full high-score list.
// Load on a store that has never been saved returns an empty list.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Result describes one finished game.
type Result struct {
	Name  string
	Score int
	Level int
	Cause string
}

// Recorder is implemented by stores that also keep a history of every game.
type Recorder interface {
	Record(r Result) error
}

// Board is a ranked, bounded list of entries, highest score first.
// Entries with equal scores keep their insertion order.
type Board struct {
	max     int
	entries []Entry
}

// NewBoard creates a board holding at most max entries, seeded with the
// given entries. Negative scores are dropped.
func NewBoard(max int, entries []Entry) *Board {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	b := &Board{max: max}
	for _, e := range entries {
		if e.Score < 0 {
			continue
		}
		b.entries = append(b.entries, Entry{Name: normalizeName(e.Name), Score: e.Score})
	}
	b.rank()
	return b
}

// Add records a score and returns its rank (0 = best), or -1 if the score
// did not make the board.
func (b *Board) Add(name string, score int) int {
	if !b.Qualifies(score) {
		return -1
	}
	b.entries = append(b.entries, Entry{Name: normalizeName(name), Score: score})
	b.rank()

	// The newest entry sorts after equal scores.
	for j := len(b.entries) - 1; j >= 0; j-- {
		if b.entries[j].Score == score {
			return j
		}
	}
	return -1
}

// Qualifies reports whether a score would enter the board.
func (b *Board) Qualifies(score int) bool {
	if score < 0 {
		return false
	}
	if len(b.entries) < b.max {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Entries returns a copy of the ranked entries.
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.entries)
}

// Max returns the board capacity.
func (b *Board) Max() int {
	return b.max
}

// Best returns the top score, or 0 for an empty board.
func (b *Board) Best() int {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

func (b *Board) rank() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > b.max {
		b.entries = b.entries[:b.max]
	}
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// MemoryStore keeps scores in memory. It is used when no persistent store
// can be opened.
type MemoryStore struct {
	entries []Entry
}

// Load implements Store.
func (m *MemoryStore) Load() ([]Entry, error) {
	return append([]Entry(nil), m.entries...), nil
}

// Save implements Store.
func (m *MemoryStore) Save(entries []Entry) error {
	m.entries = append([]Entry(nil), entries...)
	return nil
}
