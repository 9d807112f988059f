package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestGridQueryMatchesBruteForce(t *testing.T) {
	type point struct {
		h    Handle
		x, y float64
	}

	rng := rand.New(rand.NewSource(7))
	for _, cellSize := range []float64{16, 64, 200} {
		g := NewGrid(cellSize)
		points := make([]point, 0, 200)
		for i := 0; i < 200; i++ {
			p := point{
				h: Handle{Index: int32(i)},
				x: rng.Float64() * 960,
				y: rng.Float64() * 540,
			}
			points = append(points, p)
			g.Insert(p.h, p.x, p.y)
		}

		for trial := 0; trial < 50; trial++ {
			qx := rng.Float64() * 960
			qy := rng.Float64() * 540
			r := rng.Float64() * 150

			want := make(map[Handle]bool)
			for _, p := range points {
				if math.Hypot(p.x-qx, p.y-qy) <= r {
					want[p.h] = true
				}
			}

			got := g.QueryRadius(qx, qy, r)
			if len(got) != len(want) {
				t.Fatalf("cell %v query (%.1f,%.1f,r=%.1f): got %d results, want %d",
					cellSize, qx, qy, r, len(got), len(want))
			}
			for _, h := range got {
				if !want[h] {
					t.Fatalf("cell %v: result %v outside radius", cellSize, h)
				}
			}
		}
	}
}

func TestGridInsertRelocates(t *testing.T) {
	g := NewGrid(64)
	h := Handle{Index: 1}

	g.Insert(h, 10, 10)
	g.Insert(h, 500, 500) // crosses into a different cell

	if got := g.QueryRadius(10, 10, 5); len(got) != 0 {
		t.Fatalf("stale cell still answers: %v", got)
	}
	if got := g.QueryRadius(500, 500, 5); len(got) != 1 || got[0] != h {
		t.Fatalf("relocated entity missing: %v", got)
	}
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
}

func TestGridRemove(t *testing.T) {
	g := NewGrid(64)
	h := Handle{Index: 3}
	g.Insert(h, 100, 100)
	g.Remove(h)

	if g.Len() != 0 {
		t.Fatalf("Len() = %d after remove, want 0", g.Len())
	}
	if got := g.QueryRadius(100, 100, 50); len(got) != 0 {
		t.Fatalf("removed entity still found: %v", got)
	}
	// Removing twice is a no-op.
	g.Remove(h)
}

func TestGridResetKeepsNothing(t *testing.T) {
	g := NewGrid(64)
	for i := 0; i < 10; i++ {
		g.Insert(Handle{Index: int32(i)}, float64(i)*30, 50)
	}
	g.Reset()
	if g.Len() != 0 {
		t.Fatalf("Len() = %d after reset, want 0", g.Len())
	}
	if got := g.QueryRadius(100, 50, 1000); len(got) != 0 {
		t.Fatalf("reset grid still answers: %v", got)
	}
}
