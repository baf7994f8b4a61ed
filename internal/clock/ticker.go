// Package clock turns a monotonic frame clock into fixed-interval physics ticks.
package clock

import "time"

// DefaultMaxCatchUp bounds how many ticks one Due call may report after a stall.
const DefaultMaxCatchUp = 5

// Ticker emits ticks every Interval between Start and Stop. It does not own a goroutine:
// the frame loop asks it how many ticks are due.
type Ticker struct {
	Interval   time.Duration
	MaxCatchUp int
	next       time.Duration
	running    bool
	seq        uint64
}

// NewTicker returns a stopped ticker.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Ticker{Interval: interval, MaxCatchUp: DefaultMaxCatchUp}
}

// Start arms the ticker; the first tick is due one interval after now.
func (t *Ticker) Start(now time.Duration) {
	t.running = true
	t.next = now + t.Interval
}

// Stop disarms the ticker. Due returns 0 until the next Start.
func (t *Ticker) Stop() {
	t.running = false
}

// Running reports whether the ticker is armed.
func (t *Ticker) Running() bool {
	return t.running
}

// Seq returns the number of ticks emitted so far.
func (t *Ticker) Seq() uint64 {
	return t.seq
}

// Due returns how many ticks have elapsed by now and advances past them. When more than
// MaxCatchUp are pending, the extra ones are dropped and the schedule restarts from now.
func (t *Ticker) Due(now time.Duration) int {
	if !t.running || now < t.next {
		return 0
	}
	n := int((now-t.next)/t.Interval) + 1
	if t.MaxCatchUp > 0 && n > t.MaxCatchUp {
		n = t.MaxCatchUp
		t.next = now + t.Interval
	} else {
		t.next += time.Duration(n) * t.Interval
	}
	t.seq += uint64(n)
	return n
}
