package sim

import "github.com/google/uuid"

// WaveState is the director's book-keeping. Only the wave director
// mutates it.
type WaveState struct {
	Number     int
	Active     bool
	SpawnsLeft int
	BurstCD    float64
	InterCD    float64
}

// enemyCountFor is the wave quota formula.
func enemyCountFor(playerCount, wave, basePerPlayer, waveBonus int) int {
	if playerCount < 1 {
		playerCount = 1
	}
	return playerCount*basePerPlayer + (wave-1)*waveBonus
}

// enemyPoolSize is how many enemy kinds, in ascending power order, a
// wave may draw from.
func enemyPoolSize(wave, available int) int {
	n := 1 + (wave-1)/2
	if n > available {
		n = available
	}
	return n
}

// updateWaves advances the wave director: no-wave → wave-active →
// between-waves. Waves only run during the battle phase and freeze once
// a winner is declared.
func (s *Simulation) updateWaves(dt float64) {
	if s.phase != PhaseBattle || s.winnerDeclared {
		return
	}
	w := &s.wave

	if !w.Active {
		// The next wave is gated on at least one living player fighter.
		if s.aliveCount(TeamPlayer) == 0 {
			return
		}
		if w.Number == 0 {
			s.startWave(1)
			return
		}
		w.InterCD -= dt
		if w.InterCD <= 0 {
			s.startWave(w.Number + 1)
		}
		return
	}

	if w.SpawnsLeft > 0 {
		w.BurstCD -= dt
		if w.BurstCD <= 0 {
			n := s.tun.BurstSize
			if n > w.SpawnsLeft {
				n = w.SpawnsLeft
			}
			for i := 0; i < n; i++ {
				s.spawnWaveEnemy(w.Number)
			}
			w.SpawnsLeft -= n
			w.BurstCD = s.tun.BurstInterval
		}
		return
	}

	if s.aliveCount(TeamEnemy) == 0 {
		w.Active = false
		w.InterCD = s.tun.Intermission
		s.pushBanner(Banner{Kind: BannerWaveClear})
		s.log.Infow("wave cleared", "wave", w.Number)
	}
}

func (s *Simulation) startWave(n int) {
	w := &s.wave
	w.Number = n
	w.Active = true
	w.SpawnsLeft = enemyCountFor(s.aliveCount(TeamPlayer), n, s.tun.BasePerPlayer, s.tun.WaveBonus)
	w.BurstCD = 0
	s.pushBanner(Banner{Kind: BannerWaveStart})
	s.log.Infow("wave started", "wave", n, "quota", w.SpawnsLeft)

	if s.tun.BossEvery > 0 && n%s.tun.BossEvery == 0 {
		s.spawnBoss(n)
		w.SpawnsLeft -= 2
		if w.SpawnsLeft < 0 {
			w.SpawnsLeft = 0
		}
	}
}

// waveScale returns the per-wave hp and attack multipliers.
func (s *Simulation) waveScale(wave int) (hp, atk float64) {
	return 1 + s.tun.WaveHPScale*float64(wave-1), 1 + s.tun.WaveAttackScale*float64(wave-1)
}

func (s *Simulation) spawnWaveEnemy(wave int) {
	pool := s.catalog.Enemies()
	if len(pool) == 0 {
		return
	}
	def := pool[s.rng.Intn(enemyPoolSize(wave, len(pool)))]
	hpMult, atkMult := s.waveScale(wave)
	s.spawnFromDef(TeamEnemy, def, uuid.NewString(), def.Name, 1+(wave-1)/3, hpMult, atkMult, 1.0)
}

// spawnBoss spawns exactly one boss, uniformly chosen, with the boss
// multipliers compounded on top of normal wave scaling.
func (s *Simulation) spawnBoss(wave int) {
	bosses := s.catalog.Bosses()
	if len(bosses) == 0 {
		return
	}
	def := bosses[s.rng.Intn(len(bosses))]
	hpMult, atkMult := s.waveScale(wave)
	s.spawnFromDef(TeamEnemy, def, uuid.NewString(), def.Name, 1+wave/s.tun.BossEvery,
		hpMult*s.tun.BossHPMult, atkMult*s.tun.BossAttackMult, s.tun.BossSpeedMult)
	s.pushBanner(Banner{Kind: BannerBossWave, Name: def.Name})
	s.log.Infow("boss wave", "wave", wave, "boss", def.Kind)
}
