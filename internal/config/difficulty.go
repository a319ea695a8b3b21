package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. The empty string means
// "leave the loaded config untouched" and is reported as DifficultyNormal
// with ok=false.
func ParsePreset(s string) (preset DifficultyPreset, ok bool, err error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DifficultyNormal, false, nil
	case DifficultyEasy:
		return DifficultyEasy, true, nil
	case DifficultyNormal:
		return DifficultyNormal, true, nil
	case DifficultyHard:
		return DifficultyHard, true, nil
	default:
		return "", false, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values as they are.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Initial = 5
		cfg.Speed.Initial = 6
		cfg.Speed.FoodBonus = 1
		cfg.Speed.LevelBonus = 1
		cfg.Special.TTL = 10 * time.Second
	case DifficultyHard:
		cfg.Lives.Initial = 2
		cfg.Speed.Initial = 10
		cfg.Speed.LevelBonus = 3
		cfg.Special.TTL = 5 * time.Second
	}
	if cfg.Speed.Initial < cfg.Speed.Min {
		cfg.Speed.Initial = cfg.Speed.Min
	}
}
