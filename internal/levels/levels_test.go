package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinLevels(t *testing.T) {
	set := Builtin()
	if len(set) != 5 {
		t.Fatalf("expected 5 built-in levels, got %d", len(set))
	}

	for _, lvl := range set {
		if lvl.Height() != 7 {
			t.Errorf("%s: expected 7 rows, got %d", lvl.ID, lvl.Height())
		}
		if !lvl.Rectangular() {
			t.Errorf("%s: rows have unequal width", lvl.ID)
		}
	}

	// Mutating the copy must not leak into later calls
	set[0].Rows[0] = "XXXXXXX"
	if Builtin()[0].Rows[0] == "XXXXXXX" {
		t.Error("Builtin() should return an independent copy")
	}
}

func TestLevelCodes(t *testing.T) {
	lvl := Level{Rows: []string{" SH", "PS ", "  H"}}
	got := string(lvl.Codes())
	if got != "SHP" {
		t.Errorf("Codes() = %q, expected %q", got, "SHP")
	}
}

func TestLevelRectangular(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected bool
	}{
		{"empty", nil, true},
		{"single row", []string{"SSS"}, true},
		{"even", []string{"S S", "HHH"}, true},
		{"short row", []string{"SSS", "S"}, false},
		{"long row", []string{"S", "SSS"}, false},
		{"runes not bytes", []string{"ÄÖ", "SS"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := Level{Rows: tt.rows}
			if got := lvl.Rectangular(); got != tt.expected {
				t.Errorf("Rectangular() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSetFind(t *testing.T) {
	set := Builtin()
	lvl, err := set.Find("level3")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if lvl.Name != "Checkers" {
		t.Errorf("expected Checkers, got %q", lvl.Name)
	}

	if _, err := set.Find("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(nope) error = %v, expected ErrNotFound", err)
	}
}

func TestTrimGrid(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected []string
	}{
		{
			name:     "trailing empty rows and columns",
			rows:     []string{" S   ", "  H  ", "     ", "     "},
			expected: []string{" S ", "  H"},
		},
		{
			name:     "leading empty rows kept",
			rows:     []string{"     ", " P   "},
			expected: []string{"  ", " P"},
		},
		{
			name:     "all empty",
			rows:     []string{"   ", "   "},
			expected: []string{""},
		},
		{
			name:     "no rows",
			rows:     nil,
			expected: []string{""},
		},
		{
			name:     "already tight",
			rows:     []string{"SS", "HH"},
			expected: []string{"SS", "HH"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TrimGrid(tc.rows)
			if strings.Join(got, "|") != strings.Join(tc.expected, "|") {
				t.Errorf("TrimGrid() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestSanitizeGrid(t *testing.T) {
	valid := func(r rune) bool { return strings.ContainsRune("SHP", r) }
	got := SanitizeGrid([]string{"SXH", "?P "}, valid)
	if got[0] != "S H" || got[1] != " P " {
		t.Errorf("SanitizeGrid() = %q", got)
	}

	same := SanitizeGrid([]string{"XYZ"}, nil)
	if same[0] != "XYZ" {
		t.Errorf("nil validator should keep all codes, got %q", same[0])
	}
}

func TestFormatExport(t *testing.T) {
	valid := func(r rune) bool { return strings.ContainsRune("SHP", r) }
	got := FormatExport("LEVEL_X", []string{" SX  ", " H   ", "     "}, valid)
	expected := "LEVEL_X = [\n    \" S\",\n    \" H\"\n]\n"
	if got != expected {
		t.Errorf("FormatExport() =\n%s\nexpected\n%s", got, expected)
	}

	empty := FormatExport("EMPTY", []string{"   "}, valid)
	if empty != "EMPTY = [\n    \"\"\n]\n" {
		t.Errorf("FormatExport(empty) = %q", empty)
	}
}

func TestParseExportRoundTrip(t *testing.T) {
	rows := []string{"HHHHHHH", "H SPH H", "HHHHHHH"}
	lvl, err := ParseExport([]byte(FormatExport("LEVEL_20250101_120000", rows, nil)))
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}
	if lvl.ID != "LEVEL_20250101_120000" {
		t.Errorf("ID = %q", lvl.ID)
	}
	if strings.Join(lvl.Rows, "|") != strings.Join(rows, "|") {
		t.Errorf("Rows = %q, expected %q", lvl.Rows, rows)
	}
}

func TestParseExportMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no header", "\"SSS\",\n]\n"},
		{"unquoted row", "L = [\n    SSS\n]\n"},
		{"no closing bracket", "L = [\n    \"SSS\"\n"},
		{"no rows", "L = [\n]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExport([]byte(tc.input))
			if !errors.Is(err, ErrMalformedExport) {
				t.Errorf("ParseExport() error = %v, expected ErrMalformedExport", err)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte("id: tunnel\nname: Tunnel\nrows:\n  - \"HHH\"\n  - \"S P\"\n")
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "tunnel" || lvl.Name != "Tunnel" {
		t.Errorf("unexpected header: %+v", lvl)
	}
	if len(lvl.Rows) != 2 || lvl.Rows[1] != "S P" {
		t.Errorf("Rows = %q", lvl.Rows)
	}

	if _, err := ParseYAML([]byte("id: empty\n")); err == nil {
		t.Error("expected error for level without rows")
	}

	out, err := MarshalYAML(lvl)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	again, err := ParseYAML(out)
	if err != nil || strings.Join(again.Rows, "|") != "HHH|S P" {
		t.Errorf("re-parse = %+v, %v", again, err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: b\nrows: [\"SS\"]\n")
	writeFile(t, dir, "nested/a.yml", "id: a\nname: First\nrows: [\"HH\"]\n")
	writeFile(t, dir, "level_c.txt", "LEVEL_C = [\n    \"P\"\n]\n")
	writeFile(t, dir, "broken.yaml", "rows: [\n")
	writeFile(t, dir, "notes.md", "# ignored")

	loader := NewLoader(dir)
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}

	// Should be sorted by ID
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	if lvls[0].ID != "LEVEL_C" {
		t.Errorf("expected export level first, got %q", lvls[0].ID)
	}
	if lvls[2].Name != "b" {
		t.Errorf("level without name should take its ID, got %q", lvls[2].Name)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "one.yaml", "rows: [\"S\"]\n")

	loader := NewLoader(dir)
	lvl, err := loader.LoadByID("one")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.FilePath != path {
		t.Errorf("FilePath = %q, expected %q", lvl.FilePath, path)
	}

	if _, err := loader.LoadByID("two"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(two) error = %v, expected ErrNotFound", err)
	}
}

func TestLoaderMissingDir(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing"))
	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}
