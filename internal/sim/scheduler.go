package sim

import "container/heap"

// A deferred action fired at a simulation timestamp. Deferred actions
// model despawn delays, windup/recover completions and block expiry;
// they run only between fixed ticks, never concurrently with one, and
// every callback re-validates its target handle before acting.
type deferred struct {
	at  float64
	seq uint64
	fn  func()
}

type deferredHeap []deferred

func (h deferredHeap) Len() int { return len(h) }
func (h deferredHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq // stable order for same-timestamp fires
}
func (h deferredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *deferredHeap) Push(x any)   { *h = append(*h, x.(deferred)) }
func (h *deferredHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Scheduler orders deferred actions against the simulation's monotonic
// clock. It is owned by the simulation goroutine; no locking.
type Scheduler struct {
	queue deferredHeap
	seq   uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{queue: make(deferredHeap, 0, 64)}
}

// After schedules fn to fire once the clock reaches now+delay.
func (s *Scheduler) After(now, delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, deferred{at: now + delay, seq: s.seq, fn: fn})
}

// RunDue fires every action scheduled at or before now, in timestamp
// order, and returns how many fired. Actions scheduled by a firing
// callback for a time at or before now fire in the same drain.
func (s *Scheduler) RunDue(now float64) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].at <= now {
		d := heap.Pop(&s.queue).(deferred)
		d.fn()
		fired++
	}
	return fired
}

// Pending returns the number of scheduled actions.
func (s *Scheduler) Pending() int { return len(s.queue) }
