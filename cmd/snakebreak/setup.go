package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebreak/internal/config"
	"github.com/vovakirdan/snakebreak/internal/games/snakebreak"
	"github.com/vovakirdan/snakebreak/internal/levels"
	"github.com/vovakirdan/snakebreak/internal/scores"
	"github.com/vovakirdan/snakebreak/internal/storage"
)

// loadConfig resolves the configuration and applies command-line overrides.
// Invalid values are replaced with defaults and reported through logger.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config loaded", "source", source)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Play.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagScoresFile != "" {
		cfg.Storage.File = flagScoresFile
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagName != "" {
		cfg.Scores.PlayerName = flagName
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	for _, fix := range cfg.Validate() {
		logger.Warn("config value replaced", "fix", fix)
	}
	return cfg, nil
}

// newLogger creates the logger used before the config is known.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakebreak",
	})
}

// fileLogger redirects logging to the configured file so it does not draw
// over the terminal UI. The returned function closes the file.
func fileLogger(cfg config.LoggingConfig) (*log.Logger, func(), error) {
	logger := newLogger(io.Discard)
	if lvl, err := log.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		logger.SetLevel(lvl)
	}
	if cfg.File == "" {
		return logger, func() {}, nil
	}

	path, err := storage.ExpandPath(cfg.File)
	if err != nil {
		return logger, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logger, func() {}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logger, func() {}, err
	}
	logger.SetOutput(f)
	return logger, func() { _ = f.Close() }, nil
}

// openStore selects the score backend. A score file wins over the database;
// if neither can be opened, scores are kept in memory for this session.
func openStore(cfg config.Config, logger *log.Logger) (scores.Store, func()) {
	if cfg.Storage.File != "" {
		fs, err := storage.NewFileStore(cfg.Storage.File)
		if err == nil {
			logger.Info("using score file", "path", fs.Path())
			return fs, func() {}
		}
		logger.Warn("could not use score file", "path", cfg.Storage.File, "error", err)
	} else {
		db, err := storage.Open(cfg.Storage.DB)
		if err == nil {
			return db, func() { _ = db.Close() }
		}
		logger.Warn("could not open scores database", "path", cfg.Storage.DB, "error", err)
	}

	logger.Warn("scores will not be persisted")
	return &scores.MemoryStore{}, func() {}
}

// loadLevels reads the level directory, falling back to the built-in set.
// Levels using codes with no tier are reported; those cells stay empty.
func loadLevels(cfg config.Config, logger *log.Logger) levels.Set {
	set := levels.Builtin()
	if cfg.Levels.Dir != "" {
		loaded, err := levels.NewLoader(cfg.Levels.Dir).LoadAll()
		switch {
		case err != nil:
			logger.Warn("could not load levels, using built-in levels", "dir", cfg.Levels.Dir, "error", err)
		case len(loaded) == 0:
			logger.Warn("no level files found, using built-in levels", "dir", cfg.Levels.Dir)
		default:
			set = loaded
		}
	}

	tiers := snakebreak.NewTierSet(cfg.Tiers, logger)
	for _, lvl := range set {
		if unknown := tiers.Unknown(lvl); len(unknown) > 0 {
			logger.Warn("level uses unknown brick codes", "level", lvl.ID, "codes", string(unknown))
		}
		if !lvl.Rectangular() {
			logger.Warn("level rows have unequal width, columns follow the first row", "level", lvl.ID)
		}
	}
	return set
}
