package sim

import "math"

// applyDamage resolves one hit against victim. The damage source is
// tagged on the victim in the same step that reduces hp, before any
// death check, so simultaneous end-of-tick deaths still credit the
// correct source.
func (s *Simulation) applyDamage(victim *Fighter, raw int, src Handle, srcName string, srcTeam Team) {
	if victim == nil || !victim.Alive() {
		return
	}

	// Reactive block: capable, not already blocking, off block cooldown.
	if victim.Def.CanBlock && victim.State != StateBlock && victim.blockCD <= 0 &&
		victim.State != StateDead && s.rng.Float64() < s.tun.BlockChance {
		s.enterBlock(victim)
	}
	if victim.State == StateBlock {
		raw = int(math.Floor(float64(raw) * (1 - victim.Def.BlockReduction)))
	}

	eff := raw - victim.Defense
	if eff < 1 {
		eff = 1
	}

	victim.lastHitBy = src
	victim.lastHitName = srcName
	victim.lastHitTeam = srcTeam
	victim.wasHit = true

	victim.HP -= eff
	if victim.HP < 0 {
		victim.HP = 0
	}
	victim.staggerCD = s.tun.StaggerTime
}

// enterBlock raises the guard for a fixed duration and starts the block
// cooldown so the unit cannot chain-block.
func (s *Simulation) enterBlock(f *Fighter) {
	f.State = StateBlock
	f.blockCD = s.tun.BlockCooldown
	f.VX *= s.tun.DecelDamp
	f.VY *= s.tun.DecelDamp

	h := f.Handle
	s.sched.After(s.now, s.tun.BlockDuration, func() {
		if b := s.fighters.Get(h); b != nil && b.State == StateBlock {
			b.State = StateIdle
		}
	})
}

// applyHeal raises hp, clamped to [current, max]. Healing a full or dead
// fighter changes nothing.
func (s *Simulation) applyHeal(f *Fighter, amount int) {
	if f == nil || !f.Alive() || amount <= 0 {
		return
	}
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
}
