// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// SnakeConfig contains all tunable parameters of a snake session.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Lives   LivesConfig   `yaml:"lives"`
	Levels  LevelsConfig  `yaml:"levels"`
	Special SpecialConfig `yaml:"special"`
	Audio   AudioConfig   `yaml:"audio"`
}

// GridConfig defines the playfield size in blocks.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SpeedConfig defines tick rate progression (ticks per second).
type SpeedConfig struct {
	Initial      int `yaml:"initial"`
	Min          int `yaml:"min"`           // Floor applied by slow_down food
	FoodBonus    int `yaml:"food_bonus"`    // Added per normal food
	LevelBonus   int `yaml:"level_bonus"`   // Added on level up
	SpecialDelta int `yaml:"special_delta"` // speed_up / slow_down step
}

// LivesConfig defines the starting lives.
type LivesConfig struct {
	Initial int `yaml:"initial"`
}

// LevelsConfig defines level progression.
type LevelsConfig struct {
	PointsPerLevel int `yaml:"points_per_level"`
}

// SpecialConfig defines special food behavior.
type SpecialConfig struct {
	Chance float64       `yaml:"chance"` // Spawn probability per tick while none is active
	TTL    time.Duration `yaml:"ttl"`    // Lifetime before an uneaten special disappears
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	MusicVolume float64 `yaml:"music_volume"`
}

// Validate fills zero or out-of-range values with defaults so that a partial
// YAML file still yields a playable configuration.
func (c *SnakeConfig) Validate() {
	def := DefaultSnakeConfig()
	if c.Grid.Cols < 5 {
		c.Grid.Cols = def.Grid.Cols
	}
	if c.Grid.Rows < 5 {
		c.Grid.Rows = def.Grid.Rows
	}
	if c.Speed.Min <= 0 {
		c.Speed.Min = def.Speed.Min
	}
	if c.Speed.Initial < c.Speed.Min {
		c.Speed.Initial = max(def.Speed.Initial, c.Speed.Min)
	}
	if c.Speed.FoodBonus < 0 {
		c.Speed.FoodBonus = 0
	}
	if c.Speed.LevelBonus < 0 {
		c.Speed.LevelBonus = 0
	}
	if c.Speed.SpecialDelta <= 0 {
		c.Speed.SpecialDelta = def.Speed.SpecialDelta
	}
	if c.Lives.Initial <= 0 {
		c.Lives.Initial = def.Lives.Initial
	}
	if c.Levels.PointsPerLevel <= 0 {
		c.Levels.PointsPerLevel = def.Levels.PointsPerLevel
	}
	if c.Special.Chance < 0 || c.Special.Chance > 1 {
		c.Special.Chance = def.Special.Chance
	}
	if c.Special.TTL <= 0 {
		c.Special.TTL = def.Special.TTL
	}
	c.Audio.SFXVolume = clampF(c.Audio.SFXVolume, 0, 1)
	c.Audio.MusicVolume = clampF(c.Audio.MusicVolume, 0, 1)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
