package sim

import (
	"context"
	"time"
)

// Run drives the simulation from a wall-clock ticker until ctx is
// cancelled. Each outer frame feeds elapsed real time into Update — the
// fixed-step clock inside decides how many ticks that releases — and
// then publishes a fresh snapshot. Run is the single simulation
// goroutine; nothing else may call Update or Snapshot while it runs.
func (s *Simulation) Run(ctx context.Context, frame time.Duration, publish func(*Snapshot)) error {
	if frame <= 0 {
		frame = 33 * time.Millisecond
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			dt := t.Sub(last).Seconds()
			last = t
			s.Update(dt)
			if publish != nil {
				publish(s.Snapshot())
			}
		}
	}
}
