package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "snakebreak.yaml"

// Load loads SnakeBreak configuration.
// Search order: customPath -> ~/.snakebreak/configs/snakebreak.yaml ->
// ./configs/snakebreak.yaml -> embedded default.
// Files are decoded over DefaultConfig, so a partial file only overrides the
// keys it sets. The returned source names where the config came from.
func Load(customPath string) (cfg Config, source string, err error) {
	// Try custom path first
	if customPath != "" {
		cfg, err = parse(customPath)
		if err != nil {
			return DefaultConfig(), "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := parse(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", FileName)
	if cfg, err := parse(local); err == nil {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg = DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func parse(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakebreak", "configs", filename)
}
