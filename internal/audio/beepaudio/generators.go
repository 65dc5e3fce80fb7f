package beepaudio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator produces a sine sweep from one frequency to another with a
// linear fade out, used for the melee swing.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)

		sample := 0.2 * (1 - progress) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// DroneGenerator produces an endless low drone with a slow swell.
type DroneGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewDroneGenerator creates the ambient music generator.
func NewDroneGenerator(sr beep.SampleRate) *DroneGenerator {
	return &DroneGenerator{sr: sr}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		swell := 0.5 + 0.5*math.Sin(2*math.Pi*0.1*t)
		sample := 0.05 * swell * (math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*82.5*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}
