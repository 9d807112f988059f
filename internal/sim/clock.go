package sim

// Clock converts irregular real-time deltas into a bounded number of
// fixed simulation steps. Unconsumed time accumulates between calls; at
// most MaxSteps steps are released per call, and any backlog beyond
// MaxSteps×Step is collapsed to a single step's worth rather than being
// replayed later.
type Clock struct {
	Step     float64 // fixed step size in seconds
	MaxSteps int     // hard cap on steps released per Advance

	acc float64
}

// NewClock creates a clock with the given step and per-call cap.
func NewClock(step float64, maxSteps int) Clock {
	return Clock{Step: step, MaxSteps: maxSteps}
}

// Advance adds elapsed real time and returns how many fixed steps the
// caller should run now.
func (c *Clock) Advance(realDt float64) int {
	if realDt < 0 {
		realDt = 0
	}
	c.acc += realDt

	steps := 0
	for c.acc >= c.Step && steps < c.MaxSteps {
		c.acc -= c.Step
		steps++
	}

	// Discard the backlog instead of trying to catch up over future
	// calls; a stall must not snowball into more stalls.
	if c.acc > float64(c.MaxSteps)*c.Step {
		c.acc = c.Step
	}
	return steps
}

// Accumulated returns the unconsumed time, for tests and diagnostics.
func (c *Clock) Accumulated() float64 { return c.acc }
