package rabbit

// resolveObstacles applies the first obstacle hit of this tick.
// Precedence: invincible ignores every hit; tipsy pays a penalty; a spare
// life is consumed; otherwise the run ends. Returns false if the run ended.
func (g *Game) resolveObstacles() bool {
	r := &g.run
	if r.invincible {
		return true
	}

	hit := g.field.FirstObstacleHit(g.playerRect())
	if hit < 0 {
		return true
	}

	switch {
	case r.tipsy:
		r.score -= g.cfg.Scoring.Penalty
		r.tipsy = false
		r.tipsyTicks = 0
		g.field.RemoveObstacle(hit)
	case r.spareLife:
		r.spareLife = false
		g.field.RemoveObstacle(hit)
	default:
		g.endRun()
		return false
	}
	return true
}

// collectPickups consumes at most one pickup per kind and applies its effect.
func (g *Game) collectPickups() {
	r := &g.run
	pr := g.playerRect()

	if g.field.Take(PickupCoin, pr) {
		r.score += g.cfg.Scoring.Coin
		if !r.tipsy {
			g.sink.PlaySound(SoundCoin)
		}
	}

	if g.field.Take(PickupShield, pr) {
		r.invincible = true
		r.invincibleTicks = g.cfg.PowerUps.ShieldTicks
		if !r.tipsy {
			g.sink.PlaySound(SoundShield)
		}
	}

	if g.field.Take(PickupBrew, pr) {
		r.tipsy = true
		r.tipsyTicks = g.cfg.PowerUps.BrewTicks
		r.score += g.cfg.Scoring.Brew
	}

	if g.field.Take(PickupOneUp, pr) {
		r.spareLife = true
	}
}
