// Package units holds the static unit catalog: per-kind combat roles,
// stats and timing constants. The catalog is built once at startup and
// shared read-only across the simulation; definitions are never mutated
// after construction.
package units

import (
	"fmt"
	"sort"
)

// Role determines a unit's attack dispatch.
type Role uint8

const (
	RoleMelee Role = iota
	RoleRanged
	RoleMagic
	RoleHealer
)

func (r Role) String() string {
	switch r {
	case RoleMelee:
		return "melee"
	case RoleRanged:
		return "ranged"
	case RoleMagic:
		return "magic"
	case RoleHealer:
		return "healer"
	}
	return "unknown"
}

// ParseRole maps a config string onto a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "melee":
		return RoleMelee, nil
	case "ranged":
		return RoleRanged, nil
	case "magic":
		return RoleMagic, nil
	case "healer":
		return RoleHealer, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// Side restricts which team a kind may spawn on.
type Side uint8

const (
	SideEither Side = iota
	SidePlayer
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	}
	return "either"
}

// ParseSide maps a config string onto a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "", "either":
		return SideEither, nil
	case "player":
		return SidePlayer, nil
	case "enemy":
		return SideEnemy, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// ProjectileKind selects collision behavior for launched shots.
type ProjectileKind uint8

const (
	ProjectileGeneric ProjectileKind = iota
	ProjectileArrow
	ProjectileMagic
	ProjectileHeal
)

// ProjectileSpec describes the shot a ranged or magic unit launches.
type ProjectileSpec struct {
	Kind      ProjectileKind
	Speed     float64 // units per second
	Radius    float64 // collision radius
	AoERadius float64 // 0 means single target
}

// Definition is one immutable catalog entry, shared by reference across
// every fighter of its kind.
type Definition struct {
	Kind     string
	Name     string
	Role     Role
	Side     Side
	MaxHP    int
	Attack   int
	Defense  int
	Range    float64
	MinRange float64 // kite threshold, 0 disables kiting
	Speed    float64

	// Timing, in seconds of simulation time.
	Windup         float64
	Recover        float64
	AttackCooldown float64
	DespawnMin     float64
	DespawnMax     float64

	CanBlock       bool
	BlockReduction float64 // fraction of raw damage absorbed while blocking

	Projectile *ProjectileSpec // nil for melee and healer kinds

	Boss bool
}

// PowerScore ranks enemy kinds for progressive unlocking.
func (d *Definition) PowerScore() float64 {
	return float64(d.Attack) + 0.2*float64(d.MaxHP) + 0.02*d.Range + 10*d.Speed
}

// AllowedOn reports whether the kind may spawn on a player-side team.
func (d *Definition) AllowedOn(playerSide bool) bool {
	switch d.Side {
	case SidePlayer:
		return playerSide
	case SideEnemy:
		return !playerSide
	}
	return true
}

// Catalog is the full set of unit definitions plus derived orderings.
type Catalog struct {
	byKind  map[string]*Definition
	enemies []*Definition // enemy-side kinds, ascending power score
	bosses  []*Definition
}

func newCatalog(defs []*Definition) (*Catalog, error) {
	c := &Catalog{byKind: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if d.Kind == "" {
			return nil, fmt.Errorf("definition with empty kind")
		}
		if _, dup := c.byKind[d.Kind]; dup {
			return nil, fmt.Errorf("duplicate kind %q", d.Kind)
		}
		c.byKind[d.Kind] = d
		if d.Boss {
			c.bosses = append(c.bosses, d)
			continue
		}
		if d.Side == SideEnemy {
			c.enemies = append(c.enemies, d)
		}
	}
	sort.SliceStable(c.enemies, func(i, j int) bool {
		return c.enemies[i].PowerScore() < c.enemies[j].PowerScore()
	})
	sort.SliceStable(c.bosses, func(i, j int) bool {
		return c.bosses[i].Kind < c.bosses[j].Kind
	})
	return c, nil
}

// Get looks up a definition by kind.
func (c *Catalog) Get(kind string) (*Definition, bool) {
	d, ok := c.byKind[kind]
	return d, ok
}

// Enemies returns non-boss enemy kinds in ascending power order. Callers
// must not mutate the returned slice.
func (c *Catalog) Enemies() []*Definition { return c.enemies }

// Bosses returns the boss kinds in stable order.
func (c *Catalog) Bosses() []*Definition { return c.bosses }

// Kinds returns the number of definitions in the catalog.
func (c *Catalog) Kinds() int { return len(c.byKind) }
