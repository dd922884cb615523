package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/vovakirdan/snakebreak/internal/scores"
)

// FileStore keeps the board in a JSON file as a list of
// {"name": ..., "score": ...} objects.
type FileStore struct {
	path string
}

var _ scores.Store = (*FileStore)(nil)

// NewFileStore creates a store for the given path. The file is not touched
// until the first Load or Save.
func NewFileStore(path string) (*FileStore, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the board. A missing file is an empty board. A file that is
// not a JSON list yields an empty board and an error describing why.
// Records without a string name or a non-negative integer score are dropped.
func (f *FileStore) Load() ([]scores.Entry, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("storage: corrupt score file %s: %w", f.path, err)
	}

	entries := make([]scores.Entry, 0, len(raw))
	for _, r := range raw {
		name, ok := r["name"].(string)
		if !ok {
			continue
		}
		score, ok := r["score"].(float64)
		if !ok || score < 0 || score != math.Trunc(score) {
			continue
		}
		entries = append(entries, scores.Entry{Name: name, Score: int(score)})
	}
	return entries, nil
}

// Save writes the full board, replacing the file atomically.
func (f *FileStore) Save(entries []scores.Entry) error {
	if entries == nil {
		entries = []scores.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}
