package sim

// Handle is a stable, generation-tagged reference to a pooled entity.
// A handle held across ticks (by a scheduled callback, a projectile owner
// tag, or an AI target lock) stays valid until the entity is released;
// after release the generation advances and the stale handle is rejected
// by Get.
type Handle struct {
	Index int32
	Gen   uint32
}

// NoHandle is the zero target.
var NoHandle = Handle{Index: -1}

// Valid reports whether the handle points at a slot at all. It says
// nothing about liveness; use Pool.Get for that.
func (h Handle) Valid() bool { return h.Index >= 0 }

type slot[T any] struct {
	item  T
	gen   uint32
	inUse bool
}

// Pool is a free-list object pool. Acquire reuses released slots instead
// of allocating, so steady-state spawning churns no memory. Slots are
// heap-allocated individually, keeping item pointers stable across pool
// growth.
type Pool[T any] struct {
	slots []*slot[T]
	free  []int32
	reset func(*T)
	live  int
}

// NewPool creates a pool with room for capHint items before growing.
// reset is called on every acquired item before it is handed out.
func NewPool[T any](capHint int, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		slots: make([]*slot[T], 0, capHint),
		free:  make([]int32, 0, capHint),
		reset: reset,
	}
}

// Acquire returns a fresh handle and the item it refers to.
func (p *Pool[T]) Acquire() (Handle, *T) {
	var idx int32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = int32(len(p.slots))
		p.slots = append(p.slots, &slot[T]{})
	}
	s := p.slots[idx]
	s.inUse = true
	if p.reset != nil {
		p.reset(&s.item)
	}
	p.live++
	return Handle{Index: idx, Gen: s.gen}, &s.item
}

// Release returns the item behind h to the free list and invalidates
// every outstanding copy of the handle. Releasing a stale or already
// free handle is a no-op and reports false.
func (p *Pool[T]) Release(h Handle) bool {
	s := p.slot(h)
	if s == nil {
		return false
	}
	s.inUse = false
	s.gen++
	p.free = append(p.free, h.Index)
	p.live--
	return true
}

// Get resolves a handle, returning nil if it is stale or free.
func (p *Pool[T]) Get(h Handle) *T {
	s := p.slot(h)
	if s == nil {
		return nil
	}
	return &s.item
}

// Live returns the number of items currently acquired.
func (p *Pool[T]) Live() int { return p.live }

func (p *Pool[T]) slot(h Handle) *slot[T] {
	if h.Index < 0 || int(h.Index) >= len(p.slots) {
		return nil
	}
	s := p.slots[h.Index]
	if !s.inUse || s.gen != h.Gen {
		return nil
	}
	return s
}
