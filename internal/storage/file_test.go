package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snakebreak/internal/scores"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "high_scores.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Errorf("Load() on missing file should not fail, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty board, got %v", entries)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "high_scores.json")
	store, _ := NewFileStore(path)

	want := []scores.Entry{{Name: "PLY", Score: 12}, {Name: "AAA", Score: 4}}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	// No temp files left behind
	files, _ := os.ReadDir(filepath.Dir(path))
	if len(files) != 1 {
		t.Errorf("Expected only the score file in directory, got %d files", len(files))
	}
}

func TestFileStoreFiltersInvalidRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	content := `[
		{"name": "OK", "score": 10},
		{"name": "STR", "score": "12"},
		{"name": "FRAC", "score": 1.5},
		{"name": "NEG", "score": -3},
		{"score": 8},
		{"name": "ALSO", "score": 2}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store, _ := NewFileStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "OK" || got[1].Name != "ALSO" {
		t.Errorf("Load() = %+v, expected only OK and ALSO", got)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"object instead of list", `{"name": "X", "score": 1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_scores.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			store, _ := NewFileStore(path)
			got, err := store.Load()
			if err == nil {
				t.Error("Expected an error describing the corrupt file")
			}
			if len(got) != 0 {
				t.Errorf("Corrupt file should load as empty, got %v", got)
			}
		})
	}
}

func TestFileStoreSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	store, _ := NewFileStore(path)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("Save(nil) wrote %q, expected []", data)
	}
}
