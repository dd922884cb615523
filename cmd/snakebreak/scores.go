package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakebreak/internal/storage"
)

var flagHistory int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score board",
	Long: `Display the high-score board. With the database backend, lifetime
statistics and the most recent games are shown as well.

Examples:
  snakebreak scores
  snakebreak scores --history 20
  snakebreak scores --scores-file ./high_scores.json`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagHistory, "history", 10, "Number of recent games to list")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, closeStore := openStore(cfg, logger)
	defer closeStore()

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - SnakeBreak")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakebreak play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-12s  %s\n", "Rank", "Name", "Score")
		fmt.Printf("  %-4s  %-12s  %s\n", "----", "----", "-----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-12s  %d\n", i+1, e.Name, e.Score)
		}
	}

	db, ok := store.(*storage.SQLiteStore)
	if !ok {
		return
	}

	stats, err := db.Stats()
	if err != nil {
		logger.Warn("could not read statistics", "error", err)
		return
	}
	if stats.GamesCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", stats.GamesCount)
	fmt.Printf("Best: %d  Average: %.1f  Total: %d\n", stats.HighScore, stats.AvgScore, stats.TotalScore)
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	games, err := db.RecentGames(flagHistory)
	if err != nil {
		logger.Warn("could not read history", "error", err)
		return
	}
	if len(games) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	fmt.Printf("  %-16s  %-12s  %-6s  %-5s  %s\n", "Date", "Name", "Score", "Level", "Cause")
	for _, g := range games {
		fmt.Printf("  %-16s  %-12s  %-6d  %-5d  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.Name, g.Score, g.Level+1, g.Cause)
	}
}
