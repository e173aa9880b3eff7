package config

import "github.com/vovakirdan/tipsy-rabbit/internal/core"

// DifficultyManager calculates score-scaled game parameters.
// Scroll speed and obstacle gap follow independent linear ramps.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty level (0.0 to 1.0) for a score on a ramp that
// saturates at rampAt.
func (d *DifficultyManager) Level(score, rampAt int) float64 {
	initial := core.ClampF(d.cfg.InitialLevel, 0.0, 1.0)
	if !d.cfg.Enabled {
		return initial
	}

	maxAt := float64(rampAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := core.ClampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return initial + progress*(1.0-initial)
}

// Speed returns the horizontal scroll speed for the score.
func (d *DifficultyManager) Speed(base, max float64, score int) float64 {
	return base + d.Level(score, d.cfg.SpeedRampAt)*(max-base)
}

// GapBounds returns the inclusive gap-height range for the score,
// interpolated from the easy range to the hard range.
func (d *DifficultyManager) GapBounds(easy, hard IntRange, score int) (int, int) {
	f := d.Level(score, d.cfg.GapRampAt)
	lo := int(core.Lerp(float64(easy.Min), float64(hard.Min), f))
	hi := int(core.Lerp(float64(easy.Max), float64(hard.Max), f))
	return lo, hi
}
