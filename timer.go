package tm1637

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultQuantum is the delay inserted between two line transitions. The
// TM1637 needs at least this much setup and hold time on CLK and DIO.
const DefaultQuantum = 5 * time.Microsecond

// Timer is a one-shot countdown.
//
// Start arms the countdown for d. Wait blocks until it elapses.
type Timer interface {
	Start(d time.Duration)
	Wait()
}

// ClockTimer is a Timer backed by a clockwork.Clock.
type ClockTimer struct {
	clock clockwork.Clock
	t     clockwork.Timer
}

// NewClockTimer returns a Timer that counts down on c. Pass
// clockwork.NewRealClock() for hardware use.
func NewClockTimer(c clockwork.Clock) *ClockTimer {
	return &ClockTimer{clock: c}
}

// Start arms the countdown, discarding any previous one.
func (c *ClockTimer) Start(d time.Duration) {
	if c.t == nil {
		c.t = c.clock.NewTimer(d)
		return
	}
	if !c.t.Stop() {
		select {
		case <-c.t.Chan():
		default:
		}
	}
	c.t.Reset(d)
}

// Wait blocks until the countdown armed by Start fires. It returns
// immediately if Start was never called.
func (c *ClockTimer) Wait() {
	if c.t == nil {
		return
	}
	<-c.t.Chan()
}
