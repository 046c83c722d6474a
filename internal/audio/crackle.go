// Package audio turns fire activity into a crackling noise stream.
package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"doomfire/internal/sims/fire"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	// energy added per ignition and the ceiling it saturates at
	popEnergy = 0.08
	maxEnergy = 1.0

	halfLife = 40 * time.Millisecond
	hiss     = 0.25
	popRate  = 0.002
)

// Crackle is a beep.Streamer whose loudness follows recent ignitions.
// Ignite may be called from the simulation goroutine while the speaker
// streams.
type Crackle struct {
	mu     sync.Mutex
	rng    *rand.Rand
	energy float64
	decay  float64
}

// NewCrackle builds a streamer for sr. The seed fixes the noise sequence.
func NewCrackle(sr beep.SampleRate, seed uint64) *Crackle {
	n := sr.N(halfLife)
	if n < 1 {
		n = 1
	}
	return &Crackle{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		decay: math.Pow(0.5, 1/float64(n)),
	}
}

// Ignite adds energy for n new flames.
func (c *Crackle) Ignite(n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	c.energy = math.Min(maxEnergy, c.energy+float64(n)*popEnergy)
	c.mu.Unlock()
}

// Observe feeds per-tick stats into the stream.
func (c *Crackle) Observe(s fire.Stats) { c.Ignite(s.Ignitions) }

// Energy reports the current loudness in [0, 1].
func (c *Crackle) Energy() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.energy
}

func (c *Crackle) Stream(samples [][2]float64) (n int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range samples {
		v := 0.0
		if c.energy > 1e-4 {
			v = (c.rng.Float64()*2 - 1) * c.energy * hiss
			if c.rng.Float64() < c.energy*popRate {
				pop := c.energy
				if c.rng.IntN(2) == 0 {
					pop = -pop
				}
				v += pop
			}
			v = math.Max(-1, math.Min(1, v))
			c.energy *= c.decay
		} else {
			c.energy = 0
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (c *Crackle) Err() error { return nil }

// Play opens the default output device and starts c. The returned stop
// function silences and releases the device.
func Play(c *Crackle) (stop func(), err error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(c)
	return func() {
		speaker.Clear()
		speaker.Close()
	}, nil
}
