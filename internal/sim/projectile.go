package sim

import (
	"math"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/units"
)

// Projectile is a pooled ballistic shot. Velocity is fixed at launch;
// there is no homing.
type Projectile struct {
	Handle Handle
	Team   Team
	Kind   units.ProjectileKind

	X, Y   float64
	VX, VY float64

	Damage float64
	Radius float64
	AoE    float64 // area-of-effect radius, 0 for single target

	Owner     Handle
	OwnerName string

	Age float64
}

func resetProjectile(p *Projectile) {
	*p = Projectile{Handle: NoHandle, Owner: NoHandle}
}

// launchProjectile fires the attacker's configured shot at a point,
// computing damage identically to a melee swing at launch time.
func (s *Simulation) launchProjectile(a *Fighter, tx, ty float64) {
	spec := a.Def.Projectile
	if spec == nil {
		return
	}

	dx := tx - a.X
	dy := ty - a.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		dx, dy, dist = 1, 0, 1
	}

	h, p := s.projectiles.Acquire()
	p.Handle = h
	p.Team = a.Team
	p.Kind = spec.Kind
	p.X, p.Y = a.X, a.Y
	p.VX = dx / dist * spec.Speed
	p.VY = dy / dist * spec.Speed
	p.Damage = float64(meleeRaw(a))
	p.Radius = spec.Radius
	p.AoE = spec.AoERadius
	p.Owner = a.Handle
	p.OwnerName = a.Name

	s.shots = append(s.shots, h)
	metricProjectiles.Inc()
}

// updateProjectiles advances every live shot and resolves at most one
// collision per projectile per tick, with the magic AoE branch fanning
// the hit out over the impact area.
func (s *Simulation) updateProjectiles(dt float64) {
	n := 0
	for _, h := range s.shots {
		p := s.projectiles.Get(h)
		if p == nil {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Age += dt

		if p.Age > s.tun.ProjectileLifetime || s.outOfBounds(p.X, p.Y) {
			s.projectiles.Release(h)
			continue
		}
		if s.collideProjectile(p) {
			s.projectiles.Release(h)
			continue
		}
		s.shots[n] = h
		n++
	}
	s.shots = s.shots[:n]
}

func (s *Simulation) outOfBounds(x, y float64) bool {
	const margin = 64
	return x < -margin || x > s.tun.WorldW+margin || y < -margin || y > s.tun.WorldH+margin
}

// collideProjectile scans opposing living fighters from the snapshot and
// reports whether the projectile hit anything.
func (s *Simulation) collideProjectile(p *Projectile) bool {
	hitR := p.Radius + s.tun.HitRadius
	hitR2 := hitR * hitR
	snap := s.snapshotFor(p.Team.Opponent())
	for i := range snap {
		dx := snap[i].x - p.X
		dy := snap[i].y - p.Y
		if dx*dx+dy*dy > hitR2 {
			continue
		}
		victim := s.fighters.Get(snap[i].h)
		if victim == nil || !victim.Alive() {
			continue
		}

		if p.Kind == units.ProjectileMagic && p.AoE > 0 {
			s.explode(p, p.X, p.Y)
		} else {
			s.applyDamage(victim, int(p.Damage), p.Owner, p.OwnerName, p.Team)
		}
		return true
	}
	return false
}

// explode damages every opposing living fighter within the AoE radius of
// the impact point, each tagged with the projectile's owner.
func (s *Simulation) explode(p *Projectile, ix, iy float64) {
	r2 := p.AoE * p.AoE
	snap := s.snapshotFor(p.Team.Opponent())
	for i := range snap {
		dx := snap[i].x - ix
		dy := snap[i].y - iy
		if dx*dx+dy*dy > r2 {
			continue
		}
		if victim := s.fighters.Get(snap[i].h); victim != nil && victim.Alive() {
			s.applyDamage(victim, int(p.Damage), p.Owner, p.OwnerName, p.Team)
		}
	}
}
