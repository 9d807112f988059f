package units

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefinition is the YAML shape of one catalog entry. Any field left
// at its zero value inherits from the compiled-in default for that kind,
// so an overlay file only needs to state what it changes.
type fileDefinition struct {
	Name     string  `yaml:"name"`
	Role     string  `yaml:"role"`
	Side     string  `yaml:"side"`
	MaxHP    int     `yaml:"max_hp"`
	Attack   int     `yaml:"attack"`
	Defense  int     `yaml:"defense"`
	Range    float64 `yaml:"range"`
	MinRange float64 `yaml:"min_range"`
	Speed    float64 `yaml:"speed"`

	Windup         float64 `yaml:"windup"`
	Recover        float64 `yaml:"recover"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	DespawnMin     float64 `yaml:"despawn_min"`
	DespawnMax     float64 `yaml:"despawn_max"`

	CanBlock       *bool   `yaml:"can_block"`
	BlockReduction float64 `yaml:"block_reduction"`

	Projectile *struct {
		Kind      string  `yaml:"kind"`
		Speed     float64 `yaml:"speed"`
		Radius    float64 `yaml:"radius"`
		AoERadius float64 `yaml:"aoe_radius"`
	} `yaml:"projectile"`

	Boss *bool `yaml:"boss"`
}

type catalogFile struct {
	Units map[string]fileDefinition `yaml:"units"`
}

// Load builds the catalog from the compiled-in defaults, overlaid with
// the YAML file at path. An empty path returns the defaults unchanged.
func Load(path string) (*Catalog, error) {
	defs := defaultDefinitions()
	if path == "" {
		return newCatalog(defs)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byKind := make(map[string]*Definition, len(defs))
	for _, d := range defs {
		byKind[d.Kind] = d
	}

	for kind, fd := range file.Units {
		base, ok := byKind[kind]
		if !ok {
			base = &Definition{Kind: kind}
			byKind[kind] = base
			defs = append(defs, base)
		}
		if err := applyOverlay(base, fd); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", kind, err)
		}
	}

	for _, d := range defs {
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", d.Kind, err)
		}
	}
	return newCatalog(defs)
}

func applyOverlay(d *Definition, fd fileDefinition) error {
	if fd.Name != "" {
		d.Name = fd.Name
	}
	if fd.Role != "" {
		role, err := ParseRole(fd.Role)
		if err != nil {
			return err
		}
		d.Role = role
	}
	if fd.Side != "" {
		side, err := ParseSide(fd.Side)
		if err != nil {
			return err
		}
		d.Side = side
	}
	if fd.MaxHP != 0 {
		d.MaxHP = fd.MaxHP
	}
	if fd.Attack != 0 {
		d.Attack = fd.Attack
	}
	if fd.Defense != 0 {
		d.Defense = fd.Defense
	}
	if fd.Range != 0 {
		d.Range = fd.Range
	}
	if fd.MinRange != 0 {
		d.MinRange = fd.MinRange
	}
	if fd.Speed != 0 {
		d.Speed = fd.Speed
	}
	if fd.Windup != 0 {
		d.Windup = fd.Windup
	}
	if fd.Recover != 0 {
		d.Recover = fd.Recover
	}
	if fd.AttackCooldown != 0 {
		d.AttackCooldown = fd.AttackCooldown
	}
	if fd.DespawnMin != 0 {
		d.DespawnMin = fd.DespawnMin
	}
	if fd.DespawnMax != 0 {
		d.DespawnMax = fd.DespawnMax
	}
	if fd.CanBlock != nil {
		d.CanBlock = *fd.CanBlock
	}
	if fd.BlockReduction != 0 {
		d.BlockReduction = fd.BlockReduction
	}
	if fd.Boss != nil {
		d.Boss = *fd.Boss
	}
	if fd.Projectile != nil {
		spec := &ProjectileSpec{
			Speed:     fd.Projectile.Speed,
			Radius:    fd.Projectile.Radius,
			AoERadius: fd.Projectile.AoERadius,
		}
		switch fd.Projectile.Kind {
		case "", "generic":
			spec.Kind = ProjectileGeneric
		case "arrow":
			spec.Kind = ProjectileArrow
		case "magic":
			spec.Kind = ProjectileMagic
		case "heal":
			spec.Kind = ProjectileHeal
		default:
			return fmt.Errorf("unknown projectile kind %q", fd.Projectile.Kind)
		}
		d.Projectile = spec
	}
	return nil
}

func validate(d *Definition) error {
	if d.MaxHP <= 0 {
		return fmt.Errorf("max_hp must be positive")
	}
	if d.Speed < 0 || d.Range < 0 || d.MinRange < 0 {
		return fmt.Errorf("negative movement or range value")
	}
	if d.BlockReduction < 0 || d.BlockReduction > 1 {
		return fmt.Errorf("block_reduction outside [0,1]")
	}
	if (d.Role == RoleRanged || d.Role == RoleMagic) && d.Projectile == nil {
		return fmt.Errorf("%s role requires a projectile spec", d.Role)
	}
	if d.DespawnMax < d.DespawnMin {
		return fmt.Errorf("despawn_max below despawn_min")
	}
	return nil
}
