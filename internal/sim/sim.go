// Package sim implements the arena battle core: pooled fighters and
// projectiles, per-unit AI, combat resolution, a spatial index, a
// separation solver and the wave director, all advanced by a
// fixed-timestep clock. One goroutine owns the simulation; external
// events cross into it only through the bounded intake queue and are
// applied at tick boundaries.
package sim

import (
	"errors"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/units"
)

// Phase gates the wave director. The lobby authority owns phase timing;
// the simulation only follows its notifications.
type Phase uint8

const (
	PhaseLobby Phase = iota
	PhaseBattle
)

func (p Phase) String() string {
	if p == PhaseBattle {
		return "battle"
	}
	return "lobby"
}

// Spawn rejection reasons.
var (
	ErrUnknownKind  = errors.New("unknown unit kind")
	ErrSideMismatch = errors.New("unit kind not allowed on that team")
)

// Options configures a Simulation.
type Options struct {
	Catalog *units.Catalog
	Tuning  Tuning
	Logger  *zap.Logger
	Seed    int64

	// DeclareWinner is invoked at most once when an external win
	// condition is reported through the core. Optional.
	DeclareWinner func(name string)
}

// targetInfo is one row of the frozen alive-fighter snapshot captured at
// tick start. AI decisions read positions from here, never from live
// state, so no decision can observe another fighter's movement from
// later in the same tick.
type targetInfo struct {
	h     Handle
	x, y  float64
	hp    int
	maxHP int
}

// Simulation is the arena core.
type Simulation struct {
	log     *zap.SugaredLogger
	tun     Tuning
	catalog *units.Catalog
	rng     *rand.Rand

	clock Clock
	now   float64
	tick  uint64

	fighters    *Pool[Fighter]
	projectiles *Pool[Projectile]
	roster      []Handle // active fighters, alive or awaiting despawn
	shots       []Handle // active projectiles

	grid  *Grid
	sched *Scheduler

	wave  WaveState
	phase Phase

	boards *Leaderboards

	intake  *intake
	banners []Banner

	declareWinner  func(string)
	winnerDeclared bool
	winnerName     string

	snapPlayers []targetInfo
	snapEnemies []targetInfo
}

// New builds a simulation. The catalog is shared read-only; it must not
// be mutated afterwards.
func New(opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tun := opts.Tuning
	if tun.Step <= 0 {
		tun = DefaultTuning()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = units.DefaultCatalog()
	}
	return &Simulation{
		log:           logger.Sugar(),
		tun:           tun,
		catalog:       catalog,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		clock:         NewClock(tun.Step, tun.MaxSteps),
		fighters:      NewPool[Fighter](128, resetFighter),
		projectiles:   NewPool[Projectile](256, resetProjectile),
		grid:          NewGrid(tun.CellSize),
		sched:         NewScheduler(),
		boards:        NewLeaderboards(),
		intake:        newIntake(tun.MaxQueuedEvents),
		declareWinner: opts.DeclareWinner,
	}
}

// Update ingests queued external events, then releases and runs zero or
// more fixed ticks for the elapsed real time. It must be called from the
// single simulation goroutine.
func (s *Simulation) Update(realDt float64) {
	for _, ev := range s.intake.drain() {
		s.apply(ev)
	}
	steps := s.clock.Advance(realDt)
	for i := 0; i < steps; i++ {
		s.step()
	}
}

// step runs one fixed tick. This is the only place simulation state
// changes.
func (s *Simulation) step() {
	dt := s.tun.Step
	s.tick++
	s.now += dt
	metricTicks.Inc()

	s.captureSnapshots()
	s.rebuildGrid()
	s.think(dt)
	s.integrate(dt)
	s.separate()
	s.updateProjectiles(dt)
	s.processDeaths()
	s.updateWaves(dt)

	// Deferred actions are drained between ticks, never during one.
	s.sched.RunDue(s.now)
}

// captureSnapshots freezes the alive roster split by team.
func (s *Simulation) captureSnapshots() {
	s.snapPlayers = s.snapPlayers[:0]
	s.snapEnemies = s.snapEnemies[:0]
	for _, h := range s.roster {
		f := s.fighters.Get(h)
		if f == nil || !f.Alive() {
			continue
		}
		info := targetInfo{h: h, x: f.X, y: f.Y, hp: f.HP, maxHP: f.MaxHP}
		if f.Team == TeamPlayer {
			s.snapPlayers = append(s.snapPlayers, info)
		} else {
			s.snapEnemies = append(s.snapEnemies, info)
		}
	}
}

func (s *Simulation) snapshotFor(t Team) []targetInfo {
	if t == TeamPlayer {
		return s.snapPlayers
	}
	return s.snapEnemies
}

func (s *Simulation) rebuildGrid() {
	s.grid.Reset()
	for _, h := range s.roster {
		if f := s.fighters.Get(h); f != nil && f.Alive() {
			s.grid.Insert(h, f.X, f.Y)
		}
	}
}

// integrate applies velocities and keeps fighters inside the arena.
func (s *Simulation) integrate(dt float64) {
	for _, h := range s.roster {
		f := s.fighters.Get(h)
		if f == nil || !f.Alive() {
			continue
		}
		f.X += f.VX * dt
		f.Y += f.VY * dt
		if f.X < 0 {
			f.X = 0
		} else if f.X > s.tun.WorldW {
			f.X = s.tun.WorldW
		}
		if f.Y < 0 {
			f.Y = 0
		} else if f.Y > s.tun.WorldH {
			f.Y = s.tun.WorldH
		}
	}
}

// SpawnFighter validates the request against the catalog and acquires a
// pooled fighter. Rejections leave the simulation unchanged.
func (s *Simulation) SpawnFighter(team Team, kind, id, name string, level int) (Handle, error) {
	def, ok := s.catalog.Get(kind)
	if !ok {
		s.log.Warnw("spawn rejected", "reason", "unknown kind", "kind", kind)
		return NoHandle, ErrUnknownKind
	}
	if !def.AllowedOn(team == TeamPlayer) {
		s.log.Warnw("spawn rejected", "reason", "side mismatch", "kind", kind, "team", team.String())
		return NoHandle, ErrSideMismatch
	}
	if level < 1 {
		level = 1
	}
	h := s.spawnFromDef(team, def, id, name, level, 1.0, 1.0, 1.0)
	return h, nil
}

// spawnFromDef performs the actual acquire. Multipliers cover wave and
// boss scaling; 1.0 passes the catalog stats through.
func (s *Simulation) spawnFromDef(team Team, def *units.Definition, id, name string, level int, hpMult, atkMult, spdMult float64) Handle {
	h, f := s.fighters.Acquire()
	f.Handle = h
	f.ID = id
	f.Name = name
	f.Team = team
	f.Def = def
	f.Level = level
	f.MaxHP = int(math.Round(float64(def.MaxHP) * hpMult))
	if f.MaxHP < 1 {
		f.MaxHP = 1
	}
	f.HP = f.MaxHP
	f.Attack = int(math.Round(float64(def.Attack) * atkMult))
	f.Defense = def.Defense
	f.Range = def.Range
	f.MinRange = def.MinRange
	f.Speed = def.Speed * spdMult
	f.State = StateIdle
	f.thinkCD = s.thinkInterval()
	f.X, f.Y = s.spawnPoint(team)

	s.roster = append(s.roster, h)
	metricSpawns.WithLabelValues(team.String()).Inc()
	return h
}

// spawnPoint picks a spawn position: players muster on the left third,
// enemies enter from a random arena edge.
func (s *Simulation) spawnPoint(team Team) (float64, float64) {
	if team == TeamPlayer {
		x := s.tun.WorldW * (0.12 + 0.22*s.rng.Float64())
		y := s.tun.WorldH * (0.15 + 0.70*s.rng.Float64())
		return x, y
	}
	switch s.rng.Intn(3) {
	case 0: // right edge
		return s.tun.WorldW - 4, s.tun.WorldH * s.rng.Float64()
	case 1: // top edge, right half
		return s.tun.WorldW * (0.5 + 0.5*s.rng.Float64()), 4
	default: // bottom edge, right half
		return s.tun.WorldW * (0.5 + 0.5*s.rng.Float64()), s.tun.WorldH - 4
	}
}

// processDeaths detects fighters that reached 0 hp this tick, credits
// the kill exactly once, and schedules the pooled despawn.
func (s *Simulation) processDeaths() {
	for _, h := range s.roster {
		f := s.fighters.Get(h)
		if f == nil || f.deathSeen || f.HP > 0 {
			continue
		}
		f.deathSeen = true
		f.State = StateDead
		f.VX, f.VY = 0, 0
		metricDeaths.WithLabelValues(f.Team.String()).Inc()

		// Only player-side attackers feed the named kill leaderboard.
		if f.wasHit && f.lastHitTeam == TeamPlayer && f.lastHitName != "" {
			s.boards.AddKill(f.lastHitName)
		}

		delay := f.Def.DespawnMin + s.rng.Float64()*(f.Def.DespawnMax-f.Def.DespawnMin)
		handle := h
		s.sched.After(s.now, delay, func() {
			s.despawn(handle)
		})
	}
}

// despawn returns a dead fighter to the pool. A stale handle (already
// repooled by a roster reset) is a no-op.
func (s *Simulation) despawn(h Handle) {
	f := s.fighters.Get(h)
	if f == nil || !f.deathSeen {
		return
	}
	s.removeFromRoster(h)
	s.grid.Remove(h)
	s.fighters.Release(h)
}

func (s *Simulation) removeFromRoster(h Handle) {
	for i, rh := range s.roster {
		if rh == h {
			s.roster[i] = s.roster[len(s.roster)-1]
			s.roster = s.roster[:len(s.roster)-1]
			return
		}
	}
}

// clearRoster releases every fighter and projectile, used when a lobby
// snapshot replaces the match state.
func (s *Simulation) clearRoster() {
	for _, h := range s.roster {
		s.fighters.Release(h)
	}
	s.roster = s.roster[:0]
	for _, h := range s.shots {
		s.projectiles.Release(h)
	}
	s.shots = s.shots[:0]
	s.grid.Reset()
	s.wave = WaveState{}
}

// aliveCount returns living fighters on a team.
func (s *Simulation) aliveCount(t Team) int {
	n := 0
	for _, h := range s.roster {
		if f := s.fighters.Get(h); f != nil && f.Alive() && f.Team == t {
			n++
		}
	}
	return n
}

// DeclareWinner forwards an externally-determined win to the transport
// collaborator, at most once per match.
func (s *Simulation) DeclareWinner(name string) {
	if s.winnerDeclared {
		return
	}
	s.winnerDeclared = true
	s.winnerName = name
	s.pushBanner(Banner{Kind: BannerWinner, Name: name})
	if s.declareWinner != nil {
		s.declareWinner(name)
	}
}

func (s *Simulation) pushBanner(b Banner) {
	b.Wave = s.wave.Number
	s.banners = append(s.banners, b)
}

func (s *Simulation) thinkInterval() float64 {
	return s.tun.ThinkMin + s.rng.Float64()*(s.tun.ThinkMax-s.tun.ThinkMin)
}

// jitter returns base scaled by a uniform ±frac factor.
func (s *Simulation) jitter(base, frac float64) float64 {
	return base * (1 + frac*(2*s.rng.Float64()-1))
}

// Tick returns the fixed tick counter.
func (s *Simulation) Tick() uint64 { return s.tick }

// Now returns the simulation clock in seconds.
func (s *Simulation) Now() float64 { return s.now }
