// Package rabbit implements the Tipsy Rabbit side-scroller engine.
// The player flaps through scrolling obstacle gates while collecting coins,
// shields, brews and spare lives. The engine is a deterministic per-tick
// state machine: it performs no I/O and reports sounds, music changes and
// final scores through a Sink.
package rabbit

import (
	"math/rand"

	"github.com/vovakirdan/tipsy-rabbit/internal/config"
	"github.com/vovakirdan/tipsy-rabbit/internal/core"
)

// ID is the identifier used for score storage.
const ID = "rabbit"

// Session is the top-level run state.
type Session int

const (
	SessionNotStarted Session = iota
	SessionRunning
	SessionGameOver
)

// String returns the name of the session state.
func (s Session) String() string {
	switch s {
	case SessionNotStarted:
		return "not_started"
	case SessionRunning:
		return "running"
	case SessionGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a new Game. Zero values select defaults.
type Options struct {
	Config     *config.RabbitConfig
	Sink       Sink
	Clock      Clock  // nil derives a fixed clock from the tick rate
	PlayerName string // reported with the final score
	HighScore  int    // previously persisted high score
	History    []int  // previously completed runs, oldest first
}

// spawnTimers accumulate elapsed milliseconds per spawnable category.
type spawnTimers struct {
	obstacle float64
	coin     float64
	shield   float64
	brew     float64
}

// runState is every field that a restart returns to its defaults.
type runState struct {
	session Session
	paused  bool
	tick    uint64

	playerY   float64 // Top of hitbox
	playerVel float64 // Positive = down
	score     int

	invincible      bool
	invincibleTicks int
	tipsy           bool
	tipsyTicks      int
	spareLife       bool

	newHigh      bool // latched the first time score passes the high score
	newHighTicks int

	thunderTicks int
	strike       bool
	strikeTicks  int

	lastOneUpScore int
	timers         spawnTimers
	music          Track
}

// Game implements the Tipsy Rabbit engine.
type Game struct {
	cfg        config.RabbitConfig
	difficulty *config.DifficultyManager
	sink       Sink
	clock      Clock
	fixedClock bool // clock was supplied by the caller
	playerName string
	rng        *rand.Rand
	field      *Field
	run        runState

	// Survive restarts
	highScore int
	history   []int
}

// New creates a game on the start screen, seeded with 0 at 60 ticks per
// second. Reset applies the runtime seed and tick rate.
func New(opts Options) *Game {
	cfg := config.DefaultRabbitConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	g := &Game{
		cfg:        cfg,
		sink:       opts.Sink,
		clock:      opts.Clock,
		fixedClock: opts.Clock != nil,
		playerName: opts.PlayerName,
		highScore:  opts.HighScore,
	}
	if g.sink == nil {
		g.sink = NopSink{}
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	// Keep only the most recent runs that fit
	g.history = make([]int, 0, cfg.Scoring.HistorySize)
	for _, s := range opts.History {
		g.pushHistory(s)
	}

	g.Reset(core.DefaultConfig())
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tipsy Rabbit"
}

// Reset reseeds the random source and returns to the start screen.
// High score and history are kept.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	if !g.fixedClock {
		g.clock = TickClock(rt.TickRate)
	}
	g.field = NewField(g.rng, &g.cfg, g.difficulty)
	g.newRun()
}

// newRun resets all per-run state to its defaults.
func (g *Game) newRun() {
	g.field.Clear()
	g.run = runState{
		session:        SessionNotStarted,
		playerY:        g.cfg.Playfield.Height/2 - g.cfg.Player.Height/2,
		thunderTicks:   g.field.randRange(g.cfg.Hazard.ThunderTicks),
		lastOneUpScore: g.cfg.Scoring.OneUpAt,
	}
}

// Jump is the unified primary input: it starts the first run, flaps while
// running, and restarts after game over.
func (g *Game) Jump() {
	switch g.run.session {
	case SessionNotStarted:
		g.run.session = SessionRunning
	case SessionRunning:
		if !g.run.paused {
			g.run.playerVel = g.cfg.Physics.JumpImpulse
		}
	case SessionGameOver:
		g.Restart()
	}
}

// Restart begins a fresh run. It only has an effect after game over.
func (g *Game) Restart() {
	if g.run.session != SessionGameOver {
		return
	}
	wasPlaying := g.run.music != TrackNone
	g.newRun()
	g.run.session = SessionRunning
	if wasPlaying {
		g.sink.SetMusic(TrackNone)
	}
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.run.session == SessionRunning {
		g.run.paused = !g.run.paused
	}
}

// Step applies one frame of input and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restarted := false
	if in.Has(core.ActionRestart) && g.run.session == SessionGameOver {
		g.Restart()
		restarted = true
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionJump) && !restarted {
		g.Jump()
	}

	g.Tick()
	return core.StepResult{State: g.State()}
}

// Tick advances the simulation by one step. It does nothing before the
// first start input, while paused, or after game over.
func (g *Game) Tick() {
	r := &g.run
	if r.session != SessionRunning || r.paused {
		return
	}

	r.tick++
	g.advanceTimers()

	if !g.applyPhysics() {
		return
	}

	g.field.Scroll(g.Speed())

	if !g.resolveObstacles() {
		return
	}
	g.collectPickups()
	g.decayPowerUps()

	// Base trickle
	r.score++
	g.updateNewHigh()

	g.maybeSpawnOneUp()
	g.updateStorm()
	g.spawnFromTimers()
	g.updateMusic()
}

// Speed returns the current horizontal scroll speed.
func (g *Game) Speed() float64 {
	return g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.cfg.Physics.MaxSpeed, g.run.score)
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	p := g.cfg.Player
	return core.NewRect(p.X, g.run.playerY, p.Width, p.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.score,
		Started:  g.run.session != SessionNotStarted,
		GameOver: g.run.session == SessionGameOver,
		Paused:   g.run.paused,
	}
}

// Session returns the current session state.
func (g *Game) Session() Session {
	return g.run.session
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.run.score
}

// HighScore returns the best finalized score known to the engine.
func (g *Game) HighScore() int {
	return g.highScore
}

// History returns a copy of recent run totals, oldest first.
func (g *Game) History() []int {
	out := make([]int, len(g.history))
	copy(out, g.history)
	return out
}
