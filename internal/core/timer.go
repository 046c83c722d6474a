package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a long stall.
const maxCatchUp = 4

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due accumulates the time elapsed since the previous call and returns how
// many ticks are owed, capped at maxCatchUp.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step && n < maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == maxCatchUp && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
