// snakebreak is a terminal brick breaker where the paddle is a snake.
//
// Usage:
//
//	snakebreak play              - Play the game
//	snakebreak scores            - Show the high-score board and history
//	snakebreak levels list       - List available levels
//	snakebreak levels export <id> - Print a level in editor export format
//	snakebreak levels check      - Report brick codes with no tier
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default from config: 30)
//	--seed <value>        - Set RNG seed for reproducible power-up drops
//	--config <path>       - Custom config YAML
//	--db <path>           - Scores database path
//	--scores-file <path>  - Use a JSON score file instead of the database
//	--levels <dir>        - Directory of level files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagScoresFile string
	flagLevelsDir  string
	flagName       string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakebreak",
	Short: "SnakeBreak - brick breaking with a snake for a paddle",
	Long: `SnakeBreak is a terminal game: steer a snake along the bottom of the
field, keep the ball in play, and clear every brick to reach the next level.

Available commands:
  play     - Start the game
  scores   - View the high-score board
  levels   - List, export and check levels

Examples:
  snakebreak play
  snakebreak play --difficulty hard --seed 42
  snakebreak play --levels ./levels
  snakebreak scores
  snakebreak levels export level2 --copy`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	pf.StringVar(&flagScoresFile, "scores-file", "", "Store scores in a JSON file instead of the database")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory with level files (.yaml, .yml, .txt)")
	pf.StringVar(&flagName, "name", "", "Player name recorded with high scores")
	pf.StringVar(&flagLogFile, "log", "", "Log file path (default from config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
