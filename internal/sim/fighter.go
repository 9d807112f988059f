package sim

import (
	"github.com/JacksenSE/AutomatedGameTiktok/internal/units"
)

// Team is one of the two sides of the arena.
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

// FighterState is the per-fighter lifecycle state machine.
type FighterState uint8

const (
	StateIdle FighterState = iota
	StateChase
	StateWindup
	StateRecover
	StateBlock
	StateDead // terminal
)

func (s FighterState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	case StateWindup:
		return "windup"
	case StateRecover:
		return "recover"
	case StateBlock:
		return "block"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Fighter is one pooled combat unit. While inactive it is owned by the
// fighter pool; while active it appears in the simulation roster and,
// when alive, in the spatial index.
type Fighter struct {
	Handle Handle
	ID     string // external identity: platform user id or generated uuid
	Name   string
	Team   Team
	Def    *units.Definition
	Level  int

	HP      int
	MaxHP   int
	Attack  int
	Defense int

	Range    float64
	MinRange float64
	Speed    float64

	X, Y   float64
	VX, VY float64
	Facing float64

	State FighterState

	// Cooldown counters in seconds, clamped non-negative.
	attackCD  float64
	thinkCD   float64
	blockCD   float64
	staggerCD float64

	target      Handle
	healTarget  Handle
	lastHitBy   Handle
	lastHitName string
	lastHitTeam Team
	wasHit      bool
	deathSeen   bool
}

// Alive reports whether the fighter can still act and be targeted.
func (f *Fighter) Alive() bool {
	return f.State != StateDead && f.HP > 0
}

// resetFighter restores pool-neutral state before reuse.
func resetFighter(f *Fighter) {
	*f = Fighter{
		Handle:     NoHandle,
		target:     NoHandle,
		healTarget: NoHandle,
		lastHitBy:  NoHandle,
	}
}

func (f *Fighter) tickCooldowns(dt float64) {
	f.attackCD = clampZero(f.attackCD - dt)
	f.thinkCD = clampZero(f.thinkCD - dt)
	f.blockCD = clampZero(f.blockCD - dt)
	f.staggerCD = clampZero(f.staggerCD - dt)
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
