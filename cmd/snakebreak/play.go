package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakebreak/internal/core"
	"github.com/vovakirdan/snakebreak/internal/games/snakebreak"
	"github.com/vovakirdan/snakebreak/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play SnakeBreak",
	Long: `Start the game at the main menu.

Controls:
  Arrows/WASD - Steer the snake, move menu cursor
  Enter/Space - Select
  P           - Pause
  Esc/B       - Back, pause
  R           - Play again after game over
  Ctrl+S      - Save a screenshot to ~/.snakebreak/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower ball, slower snake
  normal - Configured values
  hard   - Faster ball, faster snake

Examples:
  snakebreak play
  snakebreak play --difficulty easy
  snakebreak play --seed 42 --fps 60
  snakebreak play --config ./my-snakebreak.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(newLogger(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	defer closeLog()

	store, closeStore := openStore(cfg, logger)
	lvls := loadLevels(cfg, logger)
	game := snakebreak.New(cfg, lvls, store, logger)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Play.TickRate
	rc.Seed = flagSeed
	logger.Info("starting", "levels", len(lvls), "tick_rate", rc.TickRate, "seed", rc.Seed)

	runErr := tui.Run(game, rc, logger)

	// Close store before potential exit
	closeStore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
