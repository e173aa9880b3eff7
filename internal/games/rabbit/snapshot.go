package rabbit

import (
	"math"

	"github.com/vovakirdan/tipsy-rabbit/internal/core"
)

// Snapshot is a read-only copy of everything presentation needs.
// It shares no memory with the Game and may be handed to another goroutine.
type Snapshot struct {
	Tick    uint64
	Session Session
	Paused  bool

	Player    core.Rect
	Velocity  float64
	Speed     float64
	Obstacles []ObstaclePair
	Coins     []core.Rect
	Shields   []core.Rect
	Brews     []core.Rect
	OneUps    []core.Rect

	Score     int
	HighScore int
	History   []int

	Invincible      bool
	InvincibleLeft  float64 // remaining fraction in [0,1]
	Tipsy           bool
	TipsyLeft       float64
	SpareLife       bool
	NewHigh         bool
	NewHighTicks    int
	NewHighFraction float64

	Strike     bool
	StrikeLeft float64
	Raining    bool
	Theme      int  // background palette index
	NearHigh   bool // within striking distance of the high score
	Music      Track

	// Camera offset parameters; presentation applies them
	WobbleX, WobbleY float64
	Jitter           float64 // max absolute offset per axis
}

// Themes is the number of background palettes the score cycles through.
const Themes = 5

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	r := &g.run
	cfg := &g.cfg

	obstacles := make([]ObstaclePair, len(g.field.Obstacles()))
	copy(obstacles, g.field.Obstacles())

	snap := Snapshot{
		Tick:      r.tick,
		Session:   r.session,
		Paused:    r.paused,
		Player:    g.playerRect(),
		Velocity:  r.playerVel,
		Speed:     g.Speed(),
		Obstacles: obstacles,
		Coins:     g.pickupRects(PickupCoin),
		Shields:   g.pickupRects(PickupShield),
		Brews:     g.pickupRects(PickupBrew),
		OneUps:    g.pickupRects(PickupOneUp),

		Score:     r.score,
		HighScore: g.highScore,
		History:   g.History(),

		Invincible:      r.invincible,
		InvincibleLeft:  fraction(r.invincibleTicks, cfg.PowerUps.ShieldTicks),
		Tipsy:           r.tipsy,
		TipsyLeft:       fraction(r.tipsyTicks, cfg.PowerUps.BrewTicks),
		SpareLife:       r.spareLife,
		NewHigh:         r.newHigh,
		NewHighTicks:    r.newHighTicks,
		NewHighFraction: fraction(r.newHighTicks, cfg.PowerUps.NewHighTicks),

		Strike:     r.strike,
		StrikeLeft: fraction(r.strikeTicks, cfg.Hazard.StrikeTicks),
		Raining:    r.score >= cfg.Hazard.StormAt,
		Theme:      (core.Max(r.score, 0) / 1000) % Themes,
		NearHigh:   g.highScore > 0 && r.score >= g.highScore-50 && r.score < g.highScore,
		Music:      r.music,
	}

	if r.tipsy && cfg.Hazard.WobblePeriod > 0 {
		t := float64(r.tick) / cfg.Hazard.WobblePeriod
		snap.WobbleX = cfg.Hazard.WobbleAmplitude * math.Sin(t)
		snap.WobbleY = cfg.Hazard.WobbleAmplitude * math.Cos(t)
	}
	if r.strike && r.score >= cfg.Hazard.JitterAt {
		snap.Jitter = cfg.Hazard.Jitter
	}
	return snap
}

func (g *Game) pickupRects(kind PickupKind) []core.Rect {
	list := g.field.Pickups(kind)
	out := make([]core.Rect, len(list))
	for i, p := range list {
		out[i] = p.Rect
	}
	return out
}

// fraction returns left/total clamped to [0,1].
func fraction(left, total int) float64 {
	if total <= 0 || left <= 0 {
		return 0
	}
	return core.ClampF(float64(left)/float64(total), 0, 1)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mixInt(int(snap.Session))
	mixInt(snap.Score)
	mixInt(snap.HighScore)
	mix(snap.Player.Y)
	mix(snap.Velocity)
	for _, o := range snap.Obstacles {
		mix(o.X)
		mix(o.Width)
		mix(o.GapY)
		mix(o.GapHeight)
	}
	for _, list := range [][]core.Rect{snap.Coins, snap.Shields, snap.Brews, snap.OneUps} {
		mixInt(len(list))
		for _, r := range list {
			mix(r.X)
			mix(r.Y)
		}
	}
	for _, s := range snap.History {
		mixInt(s)
	}
	return h
}
