package sim

import "math"

type cellKey struct {
	X, Y int32
}

type gridEntry struct {
	h    Handle
	x, y float64
}

// Grid is a uniform spatial hash over the arena. It is rebuilt from the
// alive roster once per tick and answers radius queries by scanning only
// the cells the radius can reach.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]gridEntry
	where    map[Handle]cellKey
	buf      []Handle
}

// NewGrid creates a grid with the given cell size.
func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]gridEntry),
		where:    make(map[Handle]cellKey),
	}
}

func (g *Grid) keyFor(x, y float64) cellKey {
	return cellKey{
		X: int32(math.Floor(x / g.cellSize)),
		Y: int32(math.Floor(y / g.cellSize)),
	}
}

// Reset empties the grid, keeping allocated buckets for reuse.
func (g *Grid) Reset() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	clear(g.where)
}

// Insert places h at (x, y), relocating it from its previous cell if the
// cell changed.
func (g *Grid) Insert(h Handle, x, y float64) {
	key := g.keyFor(x, y)
	if prev, ok := g.where[h]; ok {
		if prev == key {
			// Same cell: refresh the stored position in place.
			bucket := g.cells[prev]
			for i := range bucket {
				if bucket[i].h == h {
					bucket[i].x, bucket[i].y = x, y
					return
				}
			}
		}
		g.removeFrom(prev, h)
	}
	g.cells[key] = append(g.cells[key], gridEntry{h: h, x: x, y: y})
	g.where[h] = key
}

// Remove deletes h from the grid if present.
func (g *Grid) Remove(h Handle) {
	if key, ok := g.where[h]; ok {
		g.removeFrom(key, h)
		delete(g.where, h)
	}
}

func (g *Grid) removeFrom(key cellKey, h Handle) {
	bucket := g.cells[key]
	for i := range bucket {
		if bucket[i].h == h {
			bucket[i] = bucket[len(bucket)-1]
			g.cells[key] = bucket[:len(bucket)-1]
			return
		}
	}
}

// Len returns the number of indexed entities.
func (g *Grid) Len() int { return len(g.where) }

// QueryRadius returns every indexed entity within r of (x, y). The result
// slice is reused between calls; callers must consume it before querying
// again.
func (g *Grid) QueryRadius(x, y, r float64) []Handle {
	g.buf = g.buf[:0]
	if r < 0 {
		return g.buf
	}
	reach := int32(math.Ceil(r / g.cellSize))
	center := g.keyFor(x, y)
	r2 := r * r
	for cy := center.Y - reach; cy <= center.Y+reach; cy++ {
		for cx := center.X - reach; cx <= center.X+reach; cx++ {
			for _, e := range g.cells[cellKey{X: cx, Y: cy}] {
				dx := e.x - x
				dy := e.y - y
				if dx*dx+dy*dy <= r2 {
					g.buf = append(g.buf, e.h)
				}
			}
		}
	}
	return g.buf
}
