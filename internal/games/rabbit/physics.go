package rabbit

// applyPhysics integrates gravity and handles leaving the playfield.
// Returns false if the run ended.
func (g *Game) applyPhysics() bool {
	r := &g.run
	r.playerVel += g.cfg.Physics.Gravity
	r.playerY += r.playerVel

	if r.playerY >= 0 && r.playerY+g.cfg.Player.Height <= g.cfg.Playfield.Height {
		return true
	}

	// Tipsy players bounce back to the middle at a price
	if r.tipsy {
		r.score -= g.cfg.Scoring.Penalty
		r.playerY = g.cfg.Playfield.Height/2 - g.cfg.Player.Height/2
		r.playerVel = 0
		r.tipsy = false
		r.tipsyTicks = 0
		return true
	}

	g.endRun()
	return false
}
