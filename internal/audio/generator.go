package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Chime returns a sequence of short enveloped sine notes.
func Chime(sr beep.SampleRate, note time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, NewToneGenerator(sr, f, note))
	}
	return beep.Seq(notes...)
}

// ToneGenerator plays one sine note with a linear attack and an
// exponential release, then drains.
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewToneGenerator creates a note of the given length.
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-4 * float64(g.pos) / float64(g.samples))
		if g.pos < attack {
			env *= float64(g.pos) / float64(attack)
		}
		sample := 0.25 * env * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// StormGenerator produces an endless low rumble with rolling noise.
type StormGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	lp   float64 // low-passed noise state
}

// NewStormGenerator creates a storm loop.
func NewStormGenerator(sr beep.SampleRate) *StormGenerator {
	return &StormGenerator{sr: sr, seed: 1}
}

func (g *StormGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.lp += 0.02 * (noise - g.lp)

		// Swells every eight seconds
		swell := 0.5 + 0.5*math.Sin(2*math.Pi*t/8)
		rumble := 0.12 * math.Sin(2*math.Pi*55*t)
		sample := swell*0.6*g.lp + rumble

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StormGenerator) Err() error {
	return nil
}

// TipsyGenerator plays an endless detuned three-beat bass figure.
type TipsyGenerator struct {
	sr      beep.SampleRate
	root    float64
	pos     int
	samples int // per beat
}

// tipsyFigure holds semitone offsets of the repeating bass line.
var tipsyFigure = [...]float64{0, 7, 7, 5, 4, 4}

// NewTipsyGenerator creates a loop on root Hz with the given beat length.
func NewTipsyGenerator(sr beep.SampleRate, root float64, beat time.Duration) *TipsyGenerator {
	return &TipsyGenerator{
		sr:      sr,
		root:    root,
		samples: sr.N(beat),
	}
}

func (g *TipsyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		beat := g.pos / g.samples
		beatPos := float64(g.pos%g.samples) / float64(g.samples)

		semis := tipsyFigure[beat%len(tipsyFigure)]
		// Slow pitch drift
		detune := 1 + 0.015*math.Sin(2*math.Pi*t/3)
		freq := g.root * math.Pow(2, semis/12) * detune

		env := math.Exp(-3 * beatPos)
		sample := 0.18 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TipsyGenerator) Err() error {
	return nil
}
