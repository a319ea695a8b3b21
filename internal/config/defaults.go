package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols: 30,
			Rows: 20,
		},
		Speed: SpeedConfig{
			Initial:      8,
			Min:          5,
			FoodBonus:    1,
			LevelBonus:   2,
			SpecialDelta: 5,
		},
		Lives: LivesConfig{
			Initial: 3,
		},
		Levels: LevelsConfig{
			PointsPerLevel: 5,
		},
		Special: SpecialConfig{
			Chance: 0.02,
			TTL:    8 * time.Second,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SFXVolume:   0.6,
			MusicVolume: 0.1,
		},
	}
}
