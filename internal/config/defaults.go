package config

import (
	_ "embed"
)

//go:embed defaults/rabbit.yaml
var defaultRabbitYAML []byte

// DefaultRabbitConfig returns the built-in configuration.
func DefaultRabbitConfig() RabbitConfig {
	return RabbitConfig{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player:    PlayerConfig{X: 100, Width: 50, Height: 50},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -7,
			BaseSpeed:   5,
			MaxSpeed:    8,
		},
		Spawn: SpawnConfig{
			ObstacleInterval: 1500,
			CoinInterval:     2500,
			ShieldInterval:   10000,
			BrewInterval:     15000,
			ObstacleWidth:    IntRange{Min: 100, Max: 150},
			GapEasy:          IntRange{Min: 180, Max: 220},
			GapHard:          IntRange{Min: 100, Max: 140},
			GapMargin:        50,
			SpawnOffset:      IntRange{Min: 100, Max: 250},
			PickupMargin:     100,
			PlacementTries:   20,
			CoinSize:         30,
			ItemSize:         40,
		},
		PowerUps: PowerUpConfig{
			ShieldTicks:  180,
			BrewTicks:    300,
			NewHighTicks: 120,
		},
		Scoring: ScoringConfig{
			Coin:          100,
			Brew:          100,
			Penalty:       200,
			OneUpAt:       3000,
			OneUpInterval: 750,
			HistorySize:   10,
		},
		Hazard: HazardConfig{
			StormAt:         3000,
			ThunderAt:       4000,
			JitterAt:        5000,
			ThunderTicks:    IntRange{Min: 180, Max: 360},
			StrikeTicks:     15,
			WobbleAmplitude: 20,
			WobblePeriod:    5,
			Jitter:          15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			SpeedRampAt:  10000,
			GapRampAt:    5000,
		},
	}
}
