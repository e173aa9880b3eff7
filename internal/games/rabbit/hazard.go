package rabbit

// updateStorm runs the thunder countdown once the score reaches the thunder
// threshold. A strike is cosmetic: a short flash reported through Snapshot.
func (g *Game) updateStorm() {
	r := &g.run
	hz := g.cfg.Hazard
	if r.score < hz.ThunderAt {
		return
	}

	r.thunderTicks--
	if r.thunderTicks <= 0 {
		r.strike = true
		r.strikeTicks = hz.StrikeTicks
		r.thunderTicks = g.field.randRange(hz.ThunderTicks)
	}
	if r.strike {
		r.strikeTicks--
		if r.strikeTicks <= 0 {
			r.strike = false
		}
	}
}

// updateMusic decides which loop should be playing and signals changes.
// The storm loop, once started, plays until the next restart.
func (g *Game) updateMusic() {
	r := &g.run
	switch {
	case r.music == TrackStorm:
	case r.score >= g.cfg.Hazard.StormAt:
		g.setMusic(TrackStorm)
	case r.tipsy && !r.music.Tipsy():
		track := TrackTipsyA
		if g.rng.Intn(2) == 1 {
			track = TrackTipsyB
		}
		g.setMusic(track)
	case !r.tipsy && r.music.Tipsy():
		g.setMusic(TrackNone)
	}
}

func (g *Game) setMusic(t Track) {
	if g.run.music == t {
		return
	}
	g.run.music = t
	g.sink.SetMusic(t)
}
