// Package audio plays the game's synthesized sound effects and music loops
// through the system speaker. Every operation is a no-op when no output
// device is available.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tipsy-rabbit/internal/games/rabbit"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager turns engine signals into audio. It implements rabbit.Sink;
// final scores are ignored.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       rabbit.Track
	initialized bool
	muted       bool
	logger      *log.Logger
}

var _ rabbit.Sink = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. A nil logger discards warnings.
func NewSoundManager(logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. Failure leaves the manager silent and is
// returned for logging only.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		if sm.logger != nil {
			sm.logger.Warn("audio disabled", "error", err)
		}
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// SetMuted silences new effects and pauses music without losing the track.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized && sm.music != nil {
		speaker.Lock()
		sm.music.Paused = muted
		speaker.Unlock()
	}
}

// Track returns the music track currently requested.
func (sm *SoundManager) Track() rabbit.Track {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.track
}

// PlaySound plays a one-shot effect.
func (sm *SoundManager) PlaySound(s rabbit.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	var streamer beep.Streamer
	switch s {
	case rabbit.SoundCoin:
		// B5 then E6
		streamer = Chime(sampleRate, 80*time.Millisecond, 987.77, 1318.51)
	case rabbit.SoundShield:
		streamer = Chime(sampleRate, 60*time.Millisecond, 523.25, 659.25, 783.99, 1046.5)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetMusic replaces the current loop. TrackNone stops it.
func (sm *SoundManager) SetMusic(t rabbit.Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if t == sm.track {
		return
	}
	sm.track = t

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
		sm.music = nil
	}

	loop := musicFor(t)
	if loop == nil {
		return
	}
	sm.music = &beep.Ctrl{Streamer: loop, Paused: sm.muted}
	sm.mixer.Add(sm.music)
}

// ScoreFinalized is ignored.
func (sm *SoundManager) ScoreFinalized(string, int) {}

func musicFor(t rabbit.Track) beep.Streamer {
	switch t {
	case rabbit.TrackStorm:
		return NewStormGenerator(sampleRate)
	case rabbit.TrackTipsyA:
		return NewTipsyGenerator(sampleRate, 220, 450*time.Millisecond)
	case rabbit.TrackTipsyB:
		return NewTipsyGenerator(sampleRate, 196, 600*time.Millisecond)
	default:
		return nil
	}
}
