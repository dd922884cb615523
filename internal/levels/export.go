package levels

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedExport is returned when an editor export cannot be parsed.
var ErrMalformedExport = errors.New("malformed level export")

var exportHeader = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*\[\s*$`)

// FormatExport renders a grid in the level editor's export format:
//
//	NAME = [
//	    "row",
//	    "row"
//	]
//
// Cells rejected by valid become empty. Trailing empty rows are dropped and
// every row is cut to the rightmost non-empty column of the grid. A grid with
// no bricks is written as a single empty row. A nil valid accepts every code.
func FormatExport(name string, rows []string, valid func(rune) bool) string {
	trimmed := TrimGrid(SanitizeGrid(rows, valid))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s = [\n", name)
	for i, row := range trimmed {
		fmt.Fprintf(&sb, "    %q", row)
		if i < len(trimmed)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]\n")
	return sb.String()
}

// SanitizeGrid replaces every code rejected by valid with EmptyCode.
func SanitizeGrid(rows []string, valid func(rune) bool) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = strings.Map(func(r rune) rune {
			if r == EmptyCode || valid == nil || valid(r) {
				return r
			}
			return EmptyCode
		}, row)
	}
	return out
}

// TrimGrid drops trailing empty rows and cuts all rows to the rightmost
// non-empty column. The result is never empty.
func TrimGrid(rows []string) []string {
	end := len(rows)
	for end > 0 && strings.TrimRight(rows[end-1], string(EmptyCode)) == "" {
		end--
	}

	width := 0
	for _, row := range rows[:end] {
		width = max(width, len([]rune(strings.TrimRight(row, string(EmptyCode)))))
	}
	if width == 0 {
		return []string{""}
	}

	out := make([]string, end)
	for i, row := range rows[:end] {
		runes := []rune(row)
		out[i] = string(runes[:min(width, len(runes))])
	}
	return out
}

// ParseExport reads a level written by FormatExport. The assignment name
// becomes the level ID and name.
func ParseExport(data []byte) (Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return Level{}, fmt.Errorf("%w: empty input", ErrMalformedExport)
	}

	m := exportHeader.FindStringSubmatch(lines[i])
	if m == nil {
		return Level{}, fmt.Errorf("%w: line %d: expected NAME = [", ErrMalformedExport, i+1)
	}
	lvl := Level{ID: m[1], Name: m[1]}

	for i++; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "":
			continue
		case line == "]":
			if len(lvl.Rows) == 0 {
				return Level{}, fmt.Errorf("%w: no rows", ErrMalformedExport)
			}
			return lvl, nil
		}

		row, err := strconv.Unquote(strings.TrimSuffix(line, ","))
		if err != nil {
			return Level{}, fmt.Errorf("%w: line %d: %v", ErrMalformedExport, i+1, err)
		}
		lvl.Rows = append(lvl.Rows, row)
	}

	return Level{}, fmt.Errorf("%w: missing closing ]", ErrMalformedExport)
}
