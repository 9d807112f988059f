package sim

import (
	"math"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/units"
)

// think runs cooldown bookkeeping every tick and one AI decision per
// fighter whose think interval elapsed. Decisions read the frozen
// snapshot; only the deciding fighter's own state is mutated.
func (s *Simulation) think(dt float64) {
	for _, h := range s.roster {
		f := s.fighters.Get(h)
		if f == nil || !f.Alive() {
			continue
		}
		f.tickCooldowns(dt)
		if f.thinkCD > 0 || f.staggerCD > 0 {
			continue
		}
		switch f.State {
		case StateWindup, StateRecover, StateDead:
			continue
		}
		s.decide(f)
		f.thinkCD = s.thinkInterval()
	}
}

// nearestOpponent picks the closest living opposite-team fighter by
// squared distance, ties broken by snapshot iteration order.
func (s *Simulation) nearestOpponent(f *Fighter) (*targetInfo, float64) {
	var best *targetInfo
	bestD2 := math.MaxFloat64
	snap := s.snapshotFor(f.Team.Opponent())
	for i := range snap {
		dx := snap[i].x - f.X
		dy := snap[i].y - f.Y
		d2 := dx*dx + dy*dy
		if d2 < bestD2 {
			bestD2 = d2
			best = &snap[i]
		}
	}
	return best, bestD2
}

func (s *Simulation) decide(f *Fighter) {
	tgt, d2 := s.nearestOpponent(f)
	if tgt == nil {
		f.VX *= s.tun.DecelDamp
		f.VY *= s.tun.DecelDamp
		if f.State == StateChase {
			f.State = StateIdle
		}
		f.target = NoHandle
		// Healers keep tending wounds with no enemy on the field.
		if f.Def.Role == units.RoleHealer && f.attackCD <= 0 && f.State != StateBlock {
			s.beginHeal(f)
		}
		return
	}

	f.target = tgt.h
	dx := tgt.x - f.X
	dy := tgt.y - f.Y
	dist := math.Sqrt(d2)
	f.Facing = math.Atan2(dy, dx)

	var nx, ny float64
	if dist > 1e-6 {
		nx, ny = dx/dist, dy/dist
	}

	switch {
	case f.MinRange > 0 && dist < f.MinRange:
		// Too close: kite directly away at reduced speed.
		f.VX = -nx * f.Speed * s.tun.KiteSpeedScale
		f.VY = -ny * f.Speed * s.tun.KiteSpeedScale
		f.State = StateChase

	case dist > f.Range && f.Def.Role != units.RoleHealer:
		f.VX = nx * f.Speed
		f.VY = ny * f.Speed
		f.State = StateChase

	default:
		f.VX *= s.tun.DecelDamp
		f.VY *= s.tun.DecelDamp
		if f.State == StateChase {
			f.State = StateIdle
		}
		if f.attackCD <= 0 && f.State != StateBlock {
			s.tryAttack(f, tgt)
		}
	}
}

func (s *Simulation) tryAttack(f *Fighter, tgt *targetInfo) {
	switch f.Def.Role {
	case units.RoleMelee:
		s.beginMelee(f)
	case units.RoleRanged, units.RoleMagic:
		s.beginShot(f)
	case units.RoleHealer:
		s.beginHeal(f)
	}
}

// beginMelee enters windup; the hit lands when the windup timer elapses,
// provided the attacker was not interrupted and the locked target still
// lives.
func (s *Simulation) beginMelee(f *Fighter) {
	f.State = StateWindup
	f.attackCD = s.jitter(f.Def.AttackCooldown, s.tun.AttackJitter)

	attacker := f.Handle
	target := f.target
	s.sched.After(s.now, f.Def.Windup, func() {
		a := s.fighters.Get(attacker)
		if a == nil || a.State != StateWindup {
			return
		}
		if v := s.fighters.Get(target); v != nil && v.Alive() {
			s.applyDamage(v, meleeRaw(a), attacker, a.Name, a.Team)
		}
		s.enterRecover(a)
	})
}

// beginShot enters windup; on completion the projectile launches aimed
// at the target's position at that moment and never re-aims.
func (s *Simulation) beginShot(f *Fighter) {
	f.State = StateWindup
	f.attackCD = s.jitter(f.Def.AttackCooldown, s.tun.AttackJitter)

	attacker := f.Handle
	target := f.target
	s.sched.After(s.now, f.Def.Windup, func() {
		a := s.fighters.Get(attacker)
		if a == nil || a.State != StateWindup {
			return
		}
		if v := s.fighters.Get(target); v != nil && v.Alive() {
			s.launchProjectile(a, v.X, v.Y)
		}
		s.enterRecover(a)
	})
}

// beginHeal scans living allies inside attack range for the lowest hp
// fraction below full. With no wounded ally in range, no attack happens
// this cycle and the cooldown is left untouched.
func (s *Simulation) beginHeal(f *Fighter) {
	var best *targetInfo
	bestFrac := 1.0
	r2 := f.Range * f.Range
	snap := s.snapshotFor(f.Team)
	for i := range snap {
		if snap[i].h == f.Handle {
			continue
		}
		dx := snap[i].x - f.X
		dy := snap[i].y - f.Y
		if dx*dx+dy*dy > r2 {
			continue
		}
		frac := float64(snap[i].hp) / float64(snap[i].maxHP)
		if frac < bestFrac {
			bestFrac = frac
			best = &snap[i]
		}
	}
	if best == nil {
		return
	}

	f.healTarget = best.h
	f.State = StateWindup
	f.attackCD = s.jitter(f.Def.AttackCooldown, s.tun.AttackJitter)

	attacker := f.Handle
	s.sched.After(s.now, f.Def.Windup, func() {
		a := s.fighters.Get(attacker)
		if a == nil || a.State != StateWindup {
			return
		}
		// Re-validate the locked ally at completion: it may have died or
		// been repooled during the windup.
		if ally := s.fighters.Get(a.healTarget); ally != nil && ally.Alive() {
			s.applyHeal(ally, meleeRaw(a))
		}
		a.healTarget = NoHandle
		s.enterRecover(a)
	})
}

func (s *Simulation) enterRecover(f *Fighter) {
	if !f.Alive() {
		return
	}
	f.State = StateRecover
	h := f.Handle
	s.sched.After(s.now, f.Def.Recover, func() {
		if a := s.fighters.Get(h); a != nil && a.State == StateRecover {
			a.State = StateIdle
		}
	})
}

// meleeRaw is the raw damage formula shared by melee swings, projectile
// launches and heals.
func meleeRaw(f *Fighter) int {
	return f.Attack + f.Level*2
}
