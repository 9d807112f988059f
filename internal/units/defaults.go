package units

// defaultDefinitions is the compiled-in catalog. A YAML file may overlay
// or extend these entries at startup; see Load.
func defaultDefinitions() []*Definition {
	return []*Definition{
		// Player-side kinds, one per role.
		{
			Kind: "swordsman", Name: "Swordsman", Role: RoleMelee, Side: SidePlayer,
			MaxHP: 120, Attack: 14, Defense: 4, Range: 34, Speed: 95,
			Windup: 0.22, Recover: 0.30, AttackCooldown: 1.0,
			DespawnMin: 2.0, DespawnMax: 3.5,
			CanBlock: true, BlockReduction: 0.55,
		},
		{
			Kind: "archer", Name: "Archer", Role: RoleRanged, Side: SidePlayer,
			MaxHP: 80, Attack: 11, Defense: 1, Range: 240, MinRange: 110, Speed: 100,
			Windup: 0.30, Recover: 0.25, AttackCooldown: 1.4,
			DespawnMin: 2.0, DespawnMax: 3.5,
			Projectile: &ProjectileSpec{Kind: ProjectileArrow, Speed: 520, Radius: 6},
		},
		{
			Kind: "mage", Name: "Mage", Role: RoleMagic, Side: SidePlayer,
			MaxHP: 70, Attack: 16, Defense: 0, Range: 260, MinRange: 130, Speed: 88,
			Windup: 0.45, Recover: 0.35, AttackCooldown: 2.2,
			DespawnMin: 2.0, DespawnMax: 3.5,
			Projectile: &ProjectileSpec{Kind: ProjectileMagic, Speed: 380, Radius: 8, AoERadius: 42},
		},
		{
			Kind: "cleric", Name: "Cleric", Role: RoleHealer, Side: SidePlayer,
			MaxHP: 85, Attack: 9, Defense: 2, Range: 250, MinRange: 150, Speed: 92,
			Windup: 0.40, Recover: 0.30, AttackCooldown: 2.0,
			DespawnMin: 2.0, DespawnMax: 3.5,
		},

		// Enemy kinds spanning the power range; the wave director unlocks
		// them progressively by power score.
		{
			Kind: "slime", Name: "Slime", Role: RoleMelee, Side: SideEnemy,
			MaxHP: 55, Attack: 6, Defense: 0, Range: 28, Speed: 70,
			Windup: 0.28, Recover: 0.35, AttackCooldown: 1.3,
			DespawnMin: 1.5, DespawnMax: 3.0,
		},
		{
			Kind: "goblin", Name: "Goblin", Role: RoleMelee, Side: SideEnemy,
			MaxHP: 75, Attack: 9, Defense: 1, Range: 30, Speed: 105,
			Windup: 0.20, Recover: 0.28, AttackCooldown: 1.1,
			DespawnMin: 1.5, DespawnMax: 3.0,
		},
		{
			Kind: "skeleton_archer", Name: "Skeleton Archer", Role: RoleRanged, Side: SideEnemy,
			MaxHP: 65, Attack: 10, Defense: 0, Range: 220, MinRange: 100, Speed: 90,
			Windup: 0.32, Recover: 0.28, AttackCooldown: 1.6,
			DespawnMin: 1.5, DespawnMax: 3.0,
			Projectile: &ProjectileSpec{Kind: ProjectileArrow, Speed: 480, Radius: 6},
		},
		{
			Kind: "orc", Name: "Orc", Role: RoleMelee, Side: SideEnemy,
			MaxHP: 160, Attack: 15, Defense: 5, Range: 36, Speed: 82,
			Windup: 0.30, Recover: 0.40, AttackCooldown: 1.5,
			DespawnMin: 1.5, DespawnMax: 3.0,
			CanBlock: true, BlockReduction: 0.45,
		},
		{
			Kind: "warlock", Name: "Warlock", Role: RoleMagic, Side: SideEnemy,
			MaxHP: 90, Attack: 18, Defense: 1, Range: 250, MinRange: 120, Speed: 80,
			Windup: 0.50, Recover: 0.40, AttackCooldown: 2.5,
			DespawnMin: 1.5, DespawnMax: 3.0,
			Projectile: &ProjectileSpec{Kind: ProjectileMagic, Speed: 360, Radius: 8, AoERadius: 38},
		},
		{
			Kind: "ogre", Name: "Ogre", Role: RoleMelee, Side: SideEnemy,
			MaxHP: 260, Attack: 22, Defense: 8, Range: 42, Speed: 68,
			Windup: 0.45, Recover: 0.55, AttackCooldown: 2.0,
			DespawnMin: 1.5, DespawnMax: 3.0,
		},

		// Boss kinds; the director picks one uniformly on boss waves and
		// applies its boss multipliers on top of wave scaling.
		{
			Kind: "ogre_king", Name: "Ogre King", Role: RoleMelee, Side: SideEnemy, Boss: true,
			MaxHP: 420, Attack: 26, Defense: 10, Range: 48, Speed: 70,
			Windup: 0.50, Recover: 0.60, AttackCooldown: 2.2,
			DespawnMin: 3.0, DespawnMax: 5.0,
			CanBlock: true, BlockReduction: 0.50,
		},
		{
			Kind: "lich", Name: "Lich", Role: RoleMagic, Side: SideEnemy, Boss: true,
			MaxHP: 320, Attack: 30, Defense: 4, Range: 280, MinRange: 140, Speed: 75,
			Windup: 0.60, Recover: 0.50, AttackCooldown: 2.8,
			DespawnMin: 3.0, DespawnMax: 5.0,
			Projectile: &ProjectileSpec{Kind: ProjectileMagic, Speed: 340, Radius: 10, AoERadius: 56},
		},
	}
}

// DefaultCatalog builds the catalog from the compiled-in definitions.
func DefaultCatalog() *Catalog {
	c, err := newCatalog(defaultDefinitions())
	if err != nil {
		// The compiled-in table is validated by tests; this cannot fail
		// at runtime without a programming error.
		panic(err)
	}
	return c
}
