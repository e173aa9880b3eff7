package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tipsy-rabbit/internal/games/rabbit"
	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

// scoreRecorder persists every finalized run. It implements rabbit.Sink and
// ignores audio signals.
type scoreRecorder struct {
	store  *storage.Store
	logger *log.Logger
}

var _ rabbit.Sink = scoreRecorder{}

func (r scoreRecorder) PlaySound(rabbit.Sound) {}
func (r scoreRecorder) SetMusic(rabbit.Track)  {}

// ScoreFinalized saves the run. Failures are logged and otherwise ignored.
func (r scoreRecorder) ScoreFinalized(name string, score int) {
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveScore(rabbit.ID, name, score); err != nil {
		if r.logger != nil {
			r.logger.Error("cannot save score", "player", name, "score", score, "error", err)
		}
		return
	}
	if r.logger != nil {
		r.logger.Info("run finished", "player", name, "score", score)
	}
}
