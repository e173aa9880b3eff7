package rabbit

import (
	"math/rand"

	"github.com/vovakirdan/tipsy-rabbit/internal/config"
	"github.com/vovakirdan/tipsy-rabbit/internal/core"
)

// Field handles spawning, scrolling, and removal of obstacles and pickups.
type Field struct {
	obstacles  []ObstaclePair
	pickups    [pickupKinds][]Pickup
	rng        *rand.Rand
	cfg        *config.RabbitConfig
	difficulty *config.DifficultyManager
}

// NewField creates an empty field drawing randomness from rng.
func NewField(rng *rand.Rand, cfg *config.RabbitConfig, diff *config.DifficultyManager) *Field {
	f := &Field{
		obstacles:  make([]ObstaclePair, 0, 8),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
	for k := range f.pickups {
		f.pickups[k] = make([]Pickup, 0, 2)
	}
	return f
}

// Clear removes every obstacle and pickup.
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
	for k := range f.pickups {
		f.pickups[k] = f.pickups[k][:0]
	}
}

// Scroll moves every entity left by speed and drops those fully off-screen.
func (f *Field) Scroll(speed float64) {
	valid := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= speed
		if o.X+o.Width > 0 {
			valid = append(valid, o)
		}
	}
	f.obstacles = valid

	for k := range f.pickups {
		kept := f.pickups[k][:0]
		for _, p := range f.pickups[k] {
			p.Rect.X -= speed
			if !p.Rect.Offscreen() {
				kept = append(kept, p)
			}
		}
		f.pickups[k] = kept
	}
}

// Obstacles returns the current obstacle pairs in spawn order.
func (f *Field) Obstacles() []ObstaclePair {
	return f.obstacles
}

// Pickups returns the in-flight pickups of one kind in spawn order.
func (f *Field) Pickups(kind PickupKind) []Pickup {
	return f.pickups[kind]
}

// Count returns how many pickups of a kind are in flight.
func (f *Field) Count(kind PickupKind) int {
	return len(f.pickups[kind])
}

// FirstObstacleHit returns the index of the first pair overlapping r, or -1.
func (f *Field) FirstObstacleHit(r core.Rect) int {
	for i, o := range f.obstacles {
		if o.Hit(r, f.cfg.Playfield.Height) {
			return i
		}
	}
	return -1
}

// RemoveObstacle deletes the pair at index i, preserving order.
func (f *Field) RemoveObstacle(i int) {
	f.obstacles = append(f.obstacles[:i], f.obstacles[i+1:]...)
}

// Take removes the first pickup of kind overlapping r and reports whether
// one was found.
func (f *Field) Take(kind PickupKind, r core.Rect) bool {
	list := f.pickups[kind]
	hit := -1
	for i, p := range list {
		if r.Intersects(p.Rect) {
			hit = i
			break
		}
	}
	if hit < 0 {
		return false
	}
	f.pickups[kind] = append(list[:hit], list[hit+1:]...)
	return true
}

// SpawnObstacle adds a pair past the right edge. The gap narrows as the
// score approaches the gap ramp.
func (f *Field) SpawnObstacle(score int) ObstaclePair {
	sp := f.cfg.Spawn
	fieldW, fieldH := f.cfg.Playfield.Width, f.cfg.Playfield.Height

	width := f.randRange(sp.ObstacleWidth)
	minGap, maxGap := f.difficulty.GapBounds(sp.GapEasy, sp.GapHard, score)
	gap := f.randInt(minGap, maxGap)

	// Edge case for very small playfields
	maxGapY := int(fieldH) - gap - sp.GapMargin
	if maxGapY < sp.GapMargin {
		maxGapY = sp.GapMargin
	}
	gapY := f.randInt(sp.GapMargin, maxGapY)
	offset := f.randRange(sp.SpawnOffset)

	pair := ObstaclePair{
		X:         fieldW + float64(offset),
		Width:     float64(width),
		GapY:      float64(gapY),
		GapHeight: float64(gap),
	}
	f.obstacles = append(f.obstacles, pair)
	return pair
}

// SpawnPickup adds a pickup of kind at the right edge at a vertical
// position that avoids current obstacles when possible.
func (f *Field) SpawnPickup(kind PickupKind) Pickup {
	size := f.cfg.Spawn.ItemSize
	if kind == PickupCoin {
		size = f.cfg.Spawn.CoinSize
	}

	y := f.placeY(size)
	p := Pickup{
		Kind: kind,
		Rect: core.NewRect(f.cfg.Playfield.Width, y-size/2, size, size),
	}
	f.pickups[kind] = append(f.pickups[kind], p)
	return p
}

// placeY draws up to PlacementTries candidate centre lines and returns the
// first whose box at the right edge clears every obstacle block. When all
// tries collide the last candidate is used anyway.
func (f *Field) placeY(size float64) float64 {
	margin := f.cfg.Spawn.PickupMargin
	fieldW, fieldH := f.cfg.Playfield.Width, f.cfg.Playfield.Height

	var y float64
	for attempt := 0; attempt < f.cfg.Spawn.PlacementTries; attempt++ {
		y = float64(f.randInt(margin, int(fieldH)-margin))
		candidate := core.NewRect(fieldW, y-size/2, size, size)
		if f.FirstObstacleHit(candidate) < 0 {
			return y
		}
	}
	return y
}

// randInt returns a uniform integer in [lo, hi].
func (f *Field) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Intn(hi-lo+1)
}

func (f *Field) randRange(r config.IntRange) int {
	return f.randInt(r.Min, r.Max)
}
