package units

import "testing"

func TestDefaultCatalogValidates(t *testing.T) {
	for _, d := range defaultDefinitions() {
		if err := validate(d); err != nil {
			t.Errorf("default %q invalid: %v", d.Kind, err)
		}
	}
}

func TestDefaultCatalogLookups(t *testing.T) {
	c := DefaultCatalog()
	for _, kind := range []string{"swordsman", "archer", "mage", "cleric", "slime", "ogre_king"} {
		if _, ok := c.Get(kind); !ok {
			t.Errorf("missing kind %q", kind)
		}
	}
	if _, ok := c.Get("dragon"); ok {
		t.Error("unknown kind resolved")
	}
}

func TestEnemiesSortedByPower(t *testing.T) {
	c := DefaultCatalog()
	enemies := c.Enemies()
	if len(enemies) == 0 {
		t.Fatal("no enemy kinds")
	}
	for i := 1; i < len(enemies); i++ {
		if enemies[i-1].PowerScore() > enemies[i].PowerScore() {
			t.Fatalf("enemies out of power order: %q (%.1f) before %q (%.1f)",
				enemies[i-1].Kind, enemies[i-1].PowerScore(),
				enemies[i].Kind, enemies[i].PowerScore())
		}
	}
	for _, d := range enemies {
		if d.Boss {
			t.Fatalf("boss %q listed among regular enemies", d.Kind)
		}
	}
}

func TestBossesExcludedFromEnemyPool(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Bosses()) == 0 {
		t.Fatal("no boss kinds")
	}
	for _, b := range c.Bosses() {
		if !b.Boss {
			t.Fatalf("%q in boss list without the flag", b.Kind)
		}
	}
}

func TestAllowedOn(t *testing.T) {
	tests := []struct {
		side       Side
		playerSide bool
		want       bool
	}{
		{SidePlayer, true, true},
		{SidePlayer, false, false},
		{SideEnemy, true, false},
		{SideEnemy, false, true},
		{SideEither, true, true},
		{SideEither, false, true},
	}
	for _, tt := range tests {
		d := &Definition{Side: tt.side}
		if got := d.AllowedOn(tt.playerSide); got != tt.want {
			t.Errorf("AllowedOn(side=%v, player=%v) = %v, want %v", tt.side, tt.playerSide, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"melee", "ranged", "magic", "healer"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q): %v", s, err)
		}
		if role.String() != s {
			t.Errorf("round trip %q -> %v", s, role)
		}
	}
	if _, err := ParseRole("tank"); err == nil {
		t.Error("ParseRole accepted an unknown role")
	}
}

func TestParseSide(t *testing.T) {
	if side, err := ParseSide(""); err != nil || side != SideEither {
		t.Errorf("ParseSide(\"\") = %v, %v", side, err)
	}
	if _, err := ParseSide("neutral"); err == nil {
		t.Error("ParseSide accepted an unknown side")
	}
}

func TestRangedDefaultsCarryProjectiles(t *testing.T) {
	for _, d := range defaultDefinitions() {
		switch d.Role {
		case RoleRanged, RoleMagic:
			if d.Projectile == nil {
				t.Errorf("%q has no projectile spec", d.Kind)
			}
		case RoleMelee, RoleHealer:
			if d.Projectile != nil {
				t.Errorf("%q carries an unused projectile spec", d.Kind)
			}
		}
	}
}
