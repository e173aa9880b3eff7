package config

import "testing"

func TestDifficultySpeedRamp(t *testing.T) {
	d := NewDifficultyManager(DefaultRabbitConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 5},
		{5000, 6.5},
		{10000, 8},
		{25000, 8}, // saturates
		{-400, 5},  // negative scores do not slow below base
	}

	for _, tc := range tests {
		if got := d.Speed(5, 8, tc.score); got != tc.expected {
			t.Errorf("Speed(score=%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyGapBounds(t *testing.T) {
	cfg := DefaultRabbitConfig()
	d := NewDifficultyManager(cfg.Difficulty)

	tests := []struct {
		score  int
		lo, hi int
	}{
		{0, 180, 220},
		{2500, 140, 180},
		{5000, 100, 140},
		{9000, 100, 140},
	}

	for _, tc := range tests {
		lo, hi := d.GapBounds(cfg.Spawn.GapEasy, cfg.Spawn.GapHard, tc.score)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("GapBounds(score=%d) = [%d, %d], expected [%d, %d]", tc.score, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		SpeedRampAt:  10000,
		GapRampAt:    5000,
	})

	if got := d.Level(9999, 10000); got != 0.5 {
		t.Errorf("Level() = %v, expected fixed 0.5", got)
	}
}

func TestDifficultyInitialLevelRaisesFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialLevel: 0.5, SpeedRampAt: 100})

	if got := d.Level(0, 100); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := d.Level(100, 100); got != 1.0 {
		t.Errorf("Level(max) = %v, expected 1.0", got)
	}
}
