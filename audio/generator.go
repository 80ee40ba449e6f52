package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps one octave up from a base frequency with a fast decay
type ChirpGenerator struct {
	sr      beep.SampleRate
	base    float64
	samples int
	pos     int
	phase   float64
}

// NewChirpGenerator creates a chirp lasting d
func NewChirpGenerator(sr beep.SampleRate, base float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		base:    base,
		samples: max(1, sr.N(d)),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.base * (1 + progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-4 * progress)
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// ThudGenerator is a low decaying tone with a little deterministic grit
type ThudGenerator struct {
	sr      beep.SampleRate
	freq    float64
	samples int
	pos     int
	noise   uint32
}

// NewThudGenerator creates a thud lasting d
func NewThudGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ThudGenerator {
	return &ThudGenerator{
		sr:      sr,
		freq:    freq,
		samples: max(1, sr.N(d)),
		noise:   0x9E3779B9,
	}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		// xorshift32
		g.noise ^= g.noise << 13
		g.noise ^= g.noise >> 17
		g.noise ^= g.noise << 5
		grit := float64(g.noise)/float64(math.MaxUint32)*2 - 1

		envelope := (1 - progress) * (1 - progress)
		sample := envelope * (0.25*math.Sin(2*math.Pi*g.freq*t) + 0.03*grit)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
