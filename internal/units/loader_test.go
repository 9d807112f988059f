package units

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Kinds() != DefaultCatalog().Kinds() {
		t.Fatalf("Kinds() = %d, want the default set", c.Kinds())
	}
}

func TestLoadOverlayKeepsUnsetFields(t *testing.T) {
	path := writeCatalog(t, `
units:
  swordsman:
    max_hp: 200
    attack: 20
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := c.Get("swordsman")
	if !ok {
		t.Fatal("swordsman missing after overlay")
	}
	if d.MaxHP != 200 || d.Attack != 20 {
		t.Fatalf("overlay not applied: hp=%d atk=%d", d.MaxHP, d.Attack)
	}
	base, _ := DefaultCatalog().Get("swordsman")
	if d.Speed != base.Speed || d.Defense != base.Defense || !d.CanBlock {
		t.Fatal("unset fields did not inherit the defaults")
	}
}

func TestLoadAddsNewKind(t *testing.T) {
	path := writeCatalog(t, `
units:
  giant:
    name: Giant
    role: melee
    side: enemy
    max_hp: 300
    attack: 24
    range: 40
    speed: 60
    windup: 0.5
    recover: 0.6
    attack_cooldown: 2.0
    despawn_min: 1.5
    despawn_max: 3.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := c.Get("giant")
	if !ok {
		t.Fatal("new kind missing")
	}
	if d.Role != RoleMelee || d.Side != SideEnemy || d.MaxHP != 300 {
		t.Fatalf("new kind mis-parsed: %+v", d)
	}
	// Non-boss enemy kinds join the progression pool.
	found := false
	for _, e := range c.Enemies() {
		if e.Kind == "giant" {
			found = true
		}
	}
	if !found {
		t.Fatal("new enemy kind absent from the pool")
	}
}

func TestLoadOverlayProjectile(t *testing.T) {
	path := writeCatalog(t, `
units:
  archer:
    projectile:
      kind: arrow
      speed: 600
      radius: 7
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	d, _ := c.Get("archer")
	if d.Projectile == nil || d.Projectile.Speed != 600 || d.Projectile.Kind != ProjectileArrow {
		t.Fatalf("projectile overlay not applied: %+v", d.Projectile)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"block reduction out of range", `
units:
  swordsman:
    block_reduction: 1.5
`},
		{"ranged without projectile", `
units:
  sniper:
    role: ranged
    max_hp: 50
`},
		{"despawn window inverted", `
units:
  swordsman:
    despawn_min: 5.0
    despawn_max: 2.0
`},
		{"unknown role", `
units:
  swordsman:
    role: tank
`},
		{"unknown projectile kind", `
units:
  archer:
    projectile:
      kind: boulder
      speed: 100
`},
		{"not yaml", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.body)
			if _, err := Load(path); err == nil {
				t.Fatal("invalid catalog accepted")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
