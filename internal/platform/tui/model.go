package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tipsy-rabbit/internal/audio"
	"github.com/vovakirdan/tipsy-rabbit/internal/config"
	"github.com/vovakirdan/tipsy-rabbit/internal/core"
	"github.com/vovakirdan/tipsy-rabbit/internal/games/rabbit"
	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

// Options configures a game model. Nil collaborators are optional.
type Options struct {
	Runtime core.RuntimeConfig
	Game    *config.RabbitConfig
	Store   *storage.Store
	Audio   *audio.SoundManager
	Logger  *log.Logger
	Player  string

	// Embedded models hand Back to their parent instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model that runs one Tipsy Rabbit game.
type Model struct {
	game       *rabbit.Game
	screen     *core.Screen
	sound      *audio.SoundManager
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	tickGen    int // current tick chain
	embedded   bool
	muted      bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model. High score and recent history are loaded
// from the store when one is given.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	var (
		high    int
		history []int
	)
	if opts.Store != nil {
		var err error
		if high, err = opts.Store.HighScore(rabbit.ID); err != nil && opts.Logger != nil {
			opts.Logger.Warn("cannot load high score", "error", err)
		}
		recent, err := opts.Store.RecentScores(rabbit.ID, historySize(opts.Game))
		if err != nil && opts.Logger != nil {
			opts.Logger.Warn("cannot load recent scores", "error", err)
		}
		for _, e := range recent {
			history = append(history, e.Score)
		}
	}

	sinks := rabbit.Sinks{scoreRecorder{store: opts.Store, logger: opts.Logger}}
	if opts.Audio != nil {
		sinks = append(sinks, opts.Audio)
	}

	game := rabbit.New(rabbit.Options{
		Config:     opts.Game,
		Sink:       sinks,
		PlayerName: opts.Player,
		HighScore:  high,
		History:    history,
	})
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sound:      opts.Audio,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		embedded:   opts.Embedded,
	}
}

// historySize is the number of past runs the game keeps.
func historySize(cfg *config.RabbitConfig) int {
	if cfg == nil {
		return config.DefaultRabbitConfig().Scoring.HistorySize
	}
	return cfg.Scoring.HistorySize
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// resumeTicks starts a new tick chain. Ticks still pending from the
// previous chain are ignored.
func (m Model) resumeTicks() (Model, tea.Cmd) {
	m.tickGen++
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case IsMuteKey(msg):
		m.muted = !m.muted
		if m.sound != nil {
			m.sound.SetMuted(m.muted)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game when nothing is in progress
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started) {
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the engine by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".rabbit", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", rabbit.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game returns the engine driven by this model.
func (m Model) Game() *rabbit.Game {
	return m.game
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local Bubble Tea program for one player.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
