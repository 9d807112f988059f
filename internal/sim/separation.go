package sim

import "math"

// separate runs the positional de-overlap pass: for each alive fighter,
// up to a few nearest neighbors are pushed apart by half the overlap
// each, with a mild velocity damp to keep pairs from oscillating. Purely
// positional; no mass or impulse model.
func (s *Simulation) separate() {
	minDist := s.tun.MinSeparation
	for iter := 0; iter < s.tun.SeparationIters; iter++ {
		for _, h := range s.roster {
			f := s.fighters.Get(h)
			if f == nil || !f.Alive() {
				continue
			}
			processed := 0
			for _, nh := range s.grid.QueryRadius(f.X, f.Y, minDist) {
				if nh == h {
					continue
				}
				if processed >= s.tun.SeparationNeighbors {
					break
				}
				other := s.fighters.Get(nh)
				if other == nil || !other.Alive() {
					continue
				}
				processed++

				dx := other.X - f.X
				dy := other.Y - f.Y
				dist := math.Hypot(dx, dy)
				if dist >= minDist {
					continue
				}
				var nx, ny float64
				if dist > 1e-6 {
					nx, ny = dx/dist, dy/dist
				} else {
					// Perfectly stacked: pick an arbitrary axis.
					nx, ny = 1, 0
				}
				push := (minDist - dist) / 2
				f.X -= nx * push
				f.Y -= ny * push
				other.X += nx * push
				other.Y += ny * push

				f.VX *= s.tun.SeparationDamp
				f.VY *= s.tun.SeparationDamp
				other.VX *= s.tun.SeparationDamp
				other.VY *= s.tun.SeparationDamp
			}
		}
	}
}
