package sim

// Tuning gathers every gameplay constant the simulation consumes. The
// defaults are the shipped game feel; tests override individual knobs.
type Tuning struct {
	// Fixed-timestep clock.
	Step     float64 // seconds per fixed tick
	MaxSteps int     // cap on ticks released per outer update

	// Arena bounds.
	WorldW, WorldH float64

	// Spatial index.
	CellSize float64

	// Separation solver.
	MinSeparation       float64
	SeparationNeighbors int
	SeparationIters     int
	SeparationDamp      float64

	// AI pacing.
	ThinkMin       float64 // jittered think interval bounds
	ThinkMax       float64
	AttackJitter   float64 // ± fraction applied to attack cooldowns
	KiteSpeedScale float64 // retreat speed below minimum range
	DecelDamp      float64 // velocity damping when holding position

	// Reactive blocking.
	BlockChance   float64
	BlockDuration float64
	BlockCooldown float64
	StaggerTime   float64

	// Projectiles.
	HitRadius          float64 // victim body radius added to shot radius
	ProjectileLifetime float64

	// Wave director.
	BasePerPlayer   int
	WaveBonus       int
	BossEvery       int
	BossHPMult      float64
	BossAttackMult  float64
	BossSpeedMult   float64
	BurstSize       int
	BurstInterval   float64
	Intermission    float64
	WaveHPScale     float64 // per-wave compounding applied as 1+scale*(wave-1)
	WaveAttackScale float64

	// External event intake.
	MaxQueuedEvents int
	MaxHearts       int // single-event hearts clamp
}

// DefaultTuning returns the shipped constants.
func DefaultTuning() Tuning {
	return Tuning{
		Step:     1.0 / 60.0,
		MaxSteps: 5,

		WorldW: 960,
		WorldH: 540,

		CellSize: 64,

		MinSeparation:       26,
		SeparationNeighbors: 3,
		SeparationIters:     1,
		SeparationDamp:      0.95,

		ThinkMin:       0.100,
		ThinkMax:       0.140,
		AttackJitter:   0.20,
		KiteSpeedScale: 0.9,
		DecelDamp:      0.85,

		BlockChance:   0.28,
		BlockDuration: 0.45,
		BlockCooldown: 2.5,
		StaggerTime:   0.12,

		HitRadius:          14,
		ProjectileLifetime: 2.5,

		BasePerPlayer:   3,
		WaveBonus:       2,
		BossEvery:       5,
		BossHPMult:      3.0,
		BossAttackMult:  1.5,
		BossSpeedMult:   1.1,
		BurstSize:       4,
		BurstInterval:   0.5,
		Intermission:    2.2,
		WaveHPScale:     0.12,
		WaveAttackScale: 0.08,

		MaxQueuedEvents: 256,
		MaxHearts:       500,
	}
}
