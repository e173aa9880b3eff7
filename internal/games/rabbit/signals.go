package rabbit

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundCoin   Sound = iota // coin collected
	SoundShield              // shield (invincibility) collected
)

// String returns the name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Track identifies a looping music track. TrackNone means silence.
type Track int

const (
	TrackNone   Track = iota
	TrackStorm        // plays from the storm score onwards
	TrackTipsyA       // one of two tipsy loops, picked at random
	TrackTipsyB
)

// Tipsy reports whether the track is one of the tipsy loops.
func (t Track) Tipsy() bool {
	return t == TrackTipsyA || t == TrackTipsyB
}

// String returns the name of the track.
func (t Track) String() string {
	switch t {
	case TrackNone:
		return "none"
	case TrackStorm:
		return "storm"
	case TrackTipsyA:
		return "tipsy-a"
	case TrackTipsyB:
		return "tipsy-b"
	default:
		return "unknown"
	}
}

// Sink receives fire-and-forget signals from the engine.
// Implementations must not call back into the Game.
type Sink interface {
	// PlaySound is called when a one-shot effect should play.
	PlaySound(s Sound)
	// SetMusic is called whenever the desired looping track changes.
	// TrackNone means stop and rewind whatever is playing.
	SetMusic(t Track)
	// ScoreFinalized is called exactly once per run when it ends.
	ScoreFinalized(name string, score int)
}

// NopSink discards every signal.
type NopSink struct{}

func (NopSink) PlaySound(Sound)            {}
func (NopSink) SetMusic(Track)             {}
func (NopSink) ScoreFinalized(string, int) {}

// Sinks fans each signal out to every non-nil sink in order.
type Sinks []Sink

func (s Sinks) PlaySound(snd Sound) {
	for _, sink := range s {
		if sink != nil {
			sink.PlaySound(snd)
		}
	}
}

func (s Sinks) SetMusic(t Track) {
	for _, sink := range s {
		if sink != nil {
			sink.SetMusic(t)
		}
	}
}

func (s Sinks) ScoreFinalized(name string, score int) {
	for _, sink := range s {
		if sink != nil {
			sink.ScoreFinalized(name, score)
		}
	}
}

// Clock supplies the elapsed time, in milliseconds, credited to the spawn
// timers on each tick.
type Clock interface {
	Elapsed() float64
}

// FixedClock credits the same number of milliseconds every tick.
type FixedClock float64

// Elapsed returns the fixed per-tick duration.
func (c FixedClock) Elapsed() float64 {
	return float64(c)
}

// TickClock returns a FixedClock for a driver running at rate ticks per second.
func TickClock(rate int) FixedClock {
	if rate <= 0 {
		rate = 60
	}
	return FixedClock(1000 / float64(rate))
}
