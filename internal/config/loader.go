package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.greedy-snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			fromUser := DefaultSnakeConfig()
			if err := yaml.Unmarshal(data, &fromUser); err == nil {
				fromUser.Validate()
				return fromUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		local := DefaultSnakeConfig()
		if err := yaml.Unmarshal(data, &local); err == nil {
			local.Validate()
			return local, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
