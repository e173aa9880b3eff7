package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tipsy-rabbit/internal/audio"
	"github.com/vovakirdan/tipsy-rabbit/internal/config"
	"github.com/vovakirdan/tipsy-rabbit/internal/core"
	"github.com/vovakirdan/tipsy-rabbit/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tipsy Rabbit",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W  - Jump (also starts the run)
  P           - Pause
  R/Enter     - Restart (after game over)
  M           - Mute
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  rabbit play
  rabbit play --difficulty hard
  rabbit play --name alice --mute
  rabbit play --config ./my-rabbit.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name stored with scores (default: OS user)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

// loadGameConfig loads --config and applies --difficulty.
func loadGameConfig() (*config.RabbitConfig, error) {
	cfg, err := config.LoadRabbit(flagConfig)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return &cfg, nil
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("rabbit")
	if err != nil {
		return err
	}
	defer closer.Close()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.SoundManager
	if !flagMute {
		sound = audio.NewSoundManager(logger)
		//nolint:errcheck // Failure leaves the game silent and is logged
		sound.Initialize()
	}

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Game:   gameCfg,
		Store:  store,
		Audio:  sound,
		Logger: logger,
		Player: playerName(),
	})

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
