package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebreak/internal/games/snakebreak"
	"github.com/vovakirdan/snakebreak/internal/levels"
)

var flagCopy bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage levels",
	Long: `List, export and check the levels the game will load.

Levels come from --levels (or levels.dir in the config); the built-in set is
used when no directory is configured.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available levels",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Print a level in editor export format",
	Long: `Print a level as a named list of row strings. Codes with no tier are
written as empty cells, trailing empty rows are dropped, and rows are cut to
the rightmost brick.

Examples:
  snakebreak levels export level2
  snakebreak levels export level2 --copy > level2.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runLevelsExport,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report ragged levels and brick codes that have no tier",
	Args:  cobra.NoArgs,
	Run:   runLevelsCheck,
}

func init() {
	levelsExportCmd.Flags().BoolVar(&flagCopy, "copy", false, "Also copy the export to the clipboard")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsExportCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevelsList(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	set := loadLevels(cfg, logger)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range set {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-7s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %s\n", "-", maxIDLen, "--", "----", "----")
	for i, lvl := range set {
		size := fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
		fmt.Printf("  %-3d  %-*s  %-7s  %s\n", i+1, maxIDLen, lvl.ID, size, lvl.Name)
	}
}

func runLevelsExport(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lvl, err := loadLevels(cfg, logger).Find(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snakebreak levels list' to see available levels.")
		os.Exit(1)
	}

	tiers := snakebreak.NewTierSet(cfg.Tiers, logger)
	out := levels.FormatExport(exportName(lvl.ID), lvl.Rows, tiers.Valid)
	fmt.Print(out)

	if flagCopy {
		if err := clipboard.WriteAll(out); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
			return
		}
		logger.Info("export copied to clipboard", "level", lvl.ID)
	}
}

func runLevelsCheck(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tiers := snakebreak.NewTierSet(cfg.Tiers, logger)
	bad := 0
	for _, lvl := range loadLevels(cfg, logger) {
		problems := levelProblems(lvl, tiers)
		if len(problems) == 0 {
			continue
		}
		bad++
		fmt.Printf("%s: %s\n", lvl.ID, strings.Join(problems, "; "))
	}

	if bad > 0 {
		os.Exit(1)
	}
	fmt.Println("All levels OK.")
}

// levelProblems lists what is wrong with a level: rows of unequal width and
// codes with no tier.
func levelProblems(lvl levels.Level, tiers snakebreak.TierSet) []string {
	var problems []string
	if !lvl.Rectangular() {
		problems = append(problems, fmt.Sprintf("rows of unequal width (first row %d, widest %d)",
			utf8.RuneCountInString(lvl.Rows[0]), lvl.Width()))
	}
	if unknown := tiers.Unknown(lvl); len(unknown) > 0 {
		problems = append(problems, fmt.Sprintf("unknown codes %q", string(unknown)))
	}
	return problems
}

// exportName turns a level ID into an identifier for the export header.
func exportName(id string) string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, id)
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}
