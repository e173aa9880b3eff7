package rabbit

// decayPowerUps counts down the timed states. Natural expiry has no score
// effect.
func (g *Game) decayPowerUps() {
	r := &g.run
	if r.invincible {
		r.invincibleTicks--
		if r.invincibleTicks <= 0 {
			r.invincible = false
		}
	}
	if r.tipsy {
		r.tipsyTicks--
		if r.tipsyTicks <= 0 {
			r.tipsy = false
		}
	}
}

// updateNewHigh latches the new-high banner the first time this run's score
// passes the stored high score, then lets the banner fade.
func (g *Game) updateNewHigh() {
	r := &g.run
	if !r.newHigh && r.score > g.highScore {
		r.newHigh = true
		r.newHighTicks = g.cfg.PowerUps.NewHighTicks
	}
	if r.newHighTicks > 0 {
		r.newHighTicks--
	}
}
