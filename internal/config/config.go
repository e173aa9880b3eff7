// Package config provides YAML-based game configuration loading and
// difficulty management for the rabbit runner.
package config

import (
	"errors"
	"fmt"
)

// RabbitConfig contains all tunables of the simulation engine.
// Distances are playfield units, durations are ticks, spawn intervals are
// milliseconds of accumulated elapsed time.
type RabbitConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the logical playfield size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	BaseSpeed   float64 `yaml:"base_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
}

// IntRange is an inclusive integer range used for random draws.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SpawnConfig defines spawn timers and entity geometry.
type SpawnConfig struct {
	ObstacleInterval float64  `yaml:"obstacle_interval"`
	CoinInterval     float64  `yaml:"coin_interval"`
	ShieldInterval   float64  `yaml:"shield_interval"`
	BrewInterval     float64  `yaml:"brew_interval"`
	ObstacleWidth    IntRange `yaml:"obstacle_width"`
	GapEasy          IntRange `yaml:"gap_easy"`
	GapHard          IntRange `yaml:"gap_hard"`
	GapMargin        int      `yaml:"gap_margin"`
	SpawnOffset      IntRange `yaml:"spawn_offset"`
	PickupMargin     int      `yaml:"pickup_margin"`
	PlacementTries   int      `yaml:"placement_tries"`
	CoinSize         float64  `yaml:"coin_size"`
	ItemSize         float64  `yaml:"item_size"`
}

// PowerUpConfig defines timed state durations in ticks.
type PowerUpConfig struct {
	ShieldTicks  int `yaml:"shield_ticks"`
	BrewTicks    int `yaml:"brew_ticks"`
	NewHighTicks int `yaml:"new_high_ticks"`
}

// ScoringConfig defines score deltas and score-gated thresholds.
type ScoringConfig struct {
	Coin          int `yaml:"coin"`
	Brew          int `yaml:"brew"`
	Penalty       int `yaml:"penalty"`
	OneUpAt       int `yaml:"one_up_at"`
	OneUpInterval int `yaml:"one_up_interval"`
	HistorySize   int `yaml:"history_size"`
}

// HazardConfig defines the storm, thunder and camera-offset parameters.
type HazardConfig struct {
	StormAt         int      `yaml:"storm_at"`
	ThunderAt       int      `yaml:"thunder_at"`
	JitterAt        int      `yaml:"jitter_at"`
	ThunderTicks    IntRange `yaml:"thunder_ticks"`
	StrikeTicks     int      `yaml:"strike_ticks"`
	WobbleAmplitude float64  `yaml:"wobble_amplitude"`
	WobblePeriod    float64  `yaml:"wobble_period"`
	Jitter          float64  `yaml:"jitter"`
}

// DifficultyConfig defines how difficulty scales with score.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 to 1.0
	SpeedRampAt  int     `yaml:"speed_ramp_at"` // score at which scroll speed saturates
	GapRampAt    int     `yaml:"gap_ramp_at"`   // score at which gaps are narrowest
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the engine cannot simulate.
func (c RabbitConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Height >= c.Playfield.Height:
		return fmt.Errorf("%w: player taller than playfield", ErrInvalidConfig)
	case c.Physics.MaxSpeed < c.Physics.BaseSpeed:
		return fmt.Errorf("%w: max_speed %v below base_speed %v", ErrInvalidConfig, c.Physics.MaxSpeed, c.Physics.BaseSpeed)
	case c.Spawn.PlacementTries < 1:
		return fmt.Errorf("%w: placement_tries must be at least 1", ErrInvalidConfig)
	case c.Scoring.HistorySize < 1:
		return fmt.Errorf("%w: history_size must be at least 1", ErrInvalidConfig)
	}

	ranges := []struct {
		name string
		r    IntRange
	}{
		{"obstacle_width", c.Spawn.ObstacleWidth},
		{"gap_easy", c.Spawn.GapEasy},
		{"gap_hard", c.Spawn.GapHard},
		{"spawn_offset", c.Spawn.SpawnOffset},
		{"thunder_ticks", c.Hazard.ThunderTicks},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return fmt.Errorf("%w: %s min %d above max %d", ErrInvalidConfig, nr.name, nr.r.Min, nr.r.Max)
		}
	}

	if float64(c.Spawn.GapEasy.Max+2*c.Spawn.GapMargin) > c.Playfield.Height {
		return fmt.Errorf("%w: widest gap plus margins exceeds playfield height", ErrInvalidConfig)
	}
	if float64(2*c.Spawn.PickupMargin) > c.Playfield.Height {
		return fmt.Errorf("%w: pickup margins exceed playfield height", ErrInvalidConfig)
	}
	return nil
}
