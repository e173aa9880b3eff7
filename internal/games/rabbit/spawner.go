package rabbit

// advanceTimers credits this tick's elapsed time to every spawn timer.
func (g *Game) advanceTimers() {
	dt := g.clock.Elapsed()
	t := &g.run.timers
	t.obstacle += dt
	t.coin += dt
	t.shield += dt
	t.brew += dt
}

// spawnFromTimers fires every timer that crossed its interval. A fired timer
// restarts from zero; overshoot is discarded.
func (g *Game) spawnFromTimers() {
	sp := g.cfg.Spawn
	t := &g.run.timers

	if t.obstacle >= sp.ObstacleInterval {
		g.field.SpawnObstacle(g.run.score)
		t.obstacle = 0
	}
	if t.coin >= sp.CoinInterval {
		g.field.SpawnPickup(PickupCoin)
		t.coin = 0
	}
	// Shields and brews never share the playfield
	if t.shield >= sp.ShieldInterval {
		if g.field.Count(PickupShield) == 0 && g.field.Count(PickupBrew) == 0 {
			g.field.SpawnPickup(PickupShield)
		}
		t.shield = 0
	}
	if t.brew >= sp.BrewInterval {
		if g.field.Count(PickupBrew) == 0 && g.field.Count(PickupShield) == 0 {
			g.field.SpawnPickup(PickupBrew)
		}
		t.brew = 0
	}
}

// maybeSpawnOneUp offers a spare life exactly at the one-up score and then
// every interval points after the previous offer, while none is held or in
// flight.
func (g *Game) maybeSpawnOneUp() {
	r := &g.run
	sc := g.cfg.Scoring
	if r.score < sc.OneUpAt || r.spareLife || g.field.Count(PickupOneUp) > 0 {
		return
	}
	if r.score != sc.OneUpAt && r.score-r.lastOneUpScore < sc.OneUpInterval {
		return
	}
	g.field.SpawnPickup(PickupOneUp)
	r.lastOneUpScore = r.score
}
