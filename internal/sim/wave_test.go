package sim

import "testing"

func TestEnemyCountFor(t *testing.T) {
	tests := []struct {
		players, wave int
		want          int
	}{
		{1, 1, 3},
		{2, 1, 6},
		{1, 2, 5},
		{3, 4, 15},
		{0, 1, 3}, // no living players still seeds a minimum wave
	}
	for _, tt := range tests {
		if got := enemyCountFor(tt.players, tt.wave, 3, 2); got != tt.want {
			t.Errorf("enemyCountFor(%d, %d) = %d, want %d", tt.players, tt.wave, got, tt.want)
		}
	}
}

func TestEnemyCountNonDecreasingInWave(t *testing.T) {
	prev := 0
	for wave := 1; wave <= 20; wave++ {
		got := enemyCountFor(2, wave, 3, 2)
		if got < prev {
			t.Fatalf("wave %d quota %d below wave %d quota %d", wave, got, wave-1, prev)
		}
		prev = got
	}
}

func TestEnemyPoolSize(t *testing.T) {
	tests := []struct {
		wave, available, want int
	}{
		{1, 6, 1},
		{2, 6, 1},
		{3, 6, 2},
		{9, 6, 5},
		{30, 6, 6}, // capped at the catalog
	}
	for _, tt := range tests {
		if got := enemyPoolSize(tt.wave, tt.available); got != tt.want {
			t.Errorf("enemyPoolSize(%d, %d) = %d, want %d", tt.wave, tt.available, got, tt.want)
		}
	}
}

func TestWaveDirectorGatedOnPhase(t *testing.T) {
	s := newTestSim(t, nil)
	mustSpawn(t, s, TeamPlayer, "swordsman", "u", "A", 1)

	s.updateWaves(s.tun.Step) // still in lobby
	if s.wave.Number != 0 {
		t.Fatalf("wave started during lobby: %d", s.wave.Number)
	}

	s.applyPhase("battle")
	s.updateWaves(s.tun.Step)
	if s.wave.Number != 1 || !s.wave.Active {
		t.Fatalf("wave state = %+v, want wave 1 active", s.wave)
	}
}

func TestWaveSpawnsInBursts(t *testing.T) {
	s := newTestSim(t, nil)
	mustSpawn(t, s, TeamPlayer, "swordsman", "u", "A", 1)
	mustSpawn(t, s, TeamPlayer, "swordsman", "v", "B", 1)
	s.applyPhase("battle")

	s.updateWaves(s.tun.Step) // starts wave 1 with quota 6
	if s.wave.SpawnsLeft != 6 {
		t.Fatalf("quota = %d, want 6", s.wave.SpawnsLeft)
	}

	s.updateWaves(s.tun.Step) // first burst
	if got := s.aliveCount(TeamEnemy); got != s.tun.BurstSize {
		t.Fatalf("first burst spawned %d, want %d", got, s.tun.BurstSize)
	}
	if s.wave.SpawnsLeft != 2 {
		t.Fatalf("SpawnsLeft = %d after burst, want 2", s.wave.SpawnsLeft)
	}

	// The next burst waits out the interval, then drains the remainder.
	s.updateWaves(s.tun.Step)
	if got := s.aliveCount(TeamEnemy); got != s.tun.BurstSize {
		t.Fatalf("burst fired before its interval: %d enemies", got)
	}
	s.updateWaves(s.tun.BurstInterval)
	if got := s.aliveCount(TeamEnemy); got != 6 {
		t.Fatalf("enemies = %d after second burst, want 6", got)
	}
}

func TestWaveClearStartsIntermission(t *testing.T) {
	s := newTestSim(t, nil)
	mustSpawn(t, s, TeamPlayer, "swordsman", "u", "A", 1)
	s.applyPhase("battle")

	s.updateWaves(s.tun.Step) // wave 1, quota 3
	s.updateWaves(s.tun.Step) // single burst spawns all 3
	for _, h := range append([]Handle{}, s.roster...) {
		f := s.fighters.Get(h)
		if f.Team == TeamEnemy {
			s.applyDamage(f, 10000, NoHandle, "", TeamPlayer)
		}
	}
	s.processDeaths()
	s.banners = s.banners[:0]

	s.updateWaves(s.tun.Step)
	if s.wave.Active {
		t.Fatal("wave still active with no living enemies")
	}
	if s.wave.InterCD != s.tun.Intermission {
		t.Fatalf("intermission = %v, want %v", s.wave.InterCD, s.tun.Intermission)
	}
	if len(s.banners) != 1 || s.banners[0].Kind != BannerWaveClear {
		t.Fatalf("banners = %v, want a wave_clear", s.banners)
	}

	// Intermission elapses into the next wave.
	s.updateWaves(s.tun.Intermission + 0.01)
	if s.wave.Number != 2 || !s.wave.Active {
		t.Fatalf("wave state = %+v, want wave 2 active", s.wave)
	}
}

func TestWaveWaitsForLivingPlayer(t *testing.T) {
	s := newTestSim(t, nil)
	s.applyPhase("battle")
	s.updateWaves(s.tun.Step)
	if s.wave.Number != 0 {
		t.Fatalf("wave started with no players: %d", s.wave.Number)
	}
}

func TestBossWaveSpawnsBossAndTrimsQuota(t *testing.T) {
	s := newTestSim(t, nil)
	mustSpawn(t, s, TeamPlayer, "swordsman", "u", "A", 1)
	s.applyPhase("battle")

	s.startWave(5)
	// Quota 3 + 4×2 = 11, minus the boss's double slot.
	if s.wave.SpawnsLeft != 9 {
		t.Fatalf("SpawnsLeft = %d, want 9", s.wave.SpawnsLeft)
	}

	var boss *Fighter
	for _, h := range s.roster {
		if f := s.fighters.Get(h); f != nil && f.Def.Boss {
			boss = f
		}
	}
	if boss == nil {
		t.Fatal("no boss spawned on wave 5")
	}

	hpScale, atkScale := s.waveScale(5)
	wantHP := int(float64(boss.Def.MaxHP)*hpScale*s.tun.BossHPMult + 0.5)
	if boss.MaxHP != wantHP {
		t.Fatalf("boss MaxHP = %d, want %d", boss.MaxHP, wantHP)
	}
	wantAtk := int(float64(boss.Def.Attack)*atkScale*s.tun.BossAttackMult + 0.5)
	if boss.Attack != wantAtk {
		t.Fatalf("boss Attack = %d, want %d", boss.Attack, wantAtk)
	}
	if boss.Speed <= boss.Def.Speed {
		t.Fatalf("boss speed %v not scaled above base %v", boss.Speed, boss.Def.Speed)
	}
}

func TestWaveScalingGrows(t *testing.T) {
	s := newTestSim(t, nil)
	hp1, atk1 := s.waveScale(1)
	if hp1 != 1 || atk1 != 1 {
		t.Fatalf("wave 1 scale = %v/%v, want 1/1", hp1, atk1)
	}
	hp10, atk10 := s.waveScale(10)
	if hp10 <= hp1 || atk10 <= atk1 {
		t.Fatalf("wave 10 scale %v/%v did not grow", hp10, atk10)
	}
}

func TestWavesFreezeAfterWinner(t *testing.T) {
	s := newTestSim(t, nil)
	mustSpawn(t, s, TeamPlayer, "swordsman", "u", "A", 1)
	s.applyPhase("battle")
	s.DeclareWinner("Alice")

	s.updateWaves(s.tun.Step)
	if s.wave.Number != 0 {
		t.Fatalf("wave started after winner declaration: %d", s.wave.Number)
	}
}
