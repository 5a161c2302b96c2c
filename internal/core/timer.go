package core

import "time"

// FixedStep paces simulation updates at a steady sweeps-per-second rate.
type FixedStep struct {
	interval time.Duration
	carry    time.Duration
	prev     time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(sweepsPerSecond int) *FixedStep {
	f := &FixedStep{}
	f.SetRate(sweepsPerSecond)
	f.carry = f.interval
	return f
}

// SetRate changes the sweep rate. Safe to call from the main loop.
func (f *FixedStep) SetRate(sweepsPerSecond int) {
	if sweepsPerSecond <= 0 {
		sweepsPerSecond = 30
	}
	f.interval = time.Second / time.Duration(sweepsPerSecond)
}

// Tick reports whether one more sweep should run now.
func (f *FixedStep) Tick() bool {
	now := time.Now()
	if f.prev.IsZero() {
		f.prev = now
	}
	f.carry += now.Sub(f.prev)
	f.prev = now
	if f.carry >= f.interval {
		f.carry -= f.interval
		return true
	}
	return false
}
