package rabbit

// endRun moves to game over and finalizes the score: history first, then the
// high score, then the outward signal.
func (g *Game) endRun() {
	r := &g.run
	if r.session != SessionRunning {
		return
	}
	r.session = SessionGameOver
	r.paused = false

	g.pushHistory(r.score)
	if r.score > g.highScore {
		g.highScore = r.score
	}
	g.sink.ScoreFinalized(g.playerName, r.score)
}

// pushHistory appends a run total, evicting the oldest beyond the limit.
func (g *Game) pushHistory(score int) {
	g.history = append(g.history, score)
	if over := len(g.history) - g.cfg.Scoring.HistorySize; over > 0 {
		g.history = append(g.history[:0], g.history[over:]...)
	}
}
