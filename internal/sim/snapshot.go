package sim

import "github.com/JacksenSE/AutomatedGameTiktok/internal/units"

// Banner kinds surfaced to the presentation collaborator.
const (
	BannerWaveStart = "wave_start"
	BannerWaveClear = "wave_clear"
	BannerBossWave  = "boss_wave"
	BannerGift      = "gift"
	BannerWinner    = "winner"
)

// Banner is a discrete named presentation event.
type Banner struct {
	Kind string `json:"kind"`
	Wave int    `json:"wave,omitempty"`
	Name string `json:"name,omitempty"`
	Gift string `json:"gift,omitempty"`
}

// FighterView is the read-only broadcast shape of one fighter.
type FighterView struct {
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Team   string  `json:"team"`
	Kind   string  `json:"kind"`
	Level  int     `json:"level"`
	HP     int     `json:"hp"`
	MaxHP  int     `json:"maxHp"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Facing float64 `json:"facing"`
	State  string  `json:"state"`
}

// ProjectileView is the read-only broadcast shape of one projectile.
type ProjectileView struct {
	Team string  `json:"team"`
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Stats is the per-tick read-only aggregate block.
type Stats struct {
	Wave          int          `json:"wave"`
	PlayersAlive  int          `json:"playersAlive"`
	EnemiesAlive  int          `json:"enemiesAlive"`
	Hearts        int          `json:"hearts"`
	TopKills      []ScoreEntry `json:"topKills"`
	TopSupporters []ScoreEntry `json:"topSupporters"`
}

// Snapshot is the full read-only state handed to presentation
// collaborators after an update. It shares nothing with live simulation
// state.
type Snapshot struct {
	Tick        uint64           `json:"tick"`
	Phase       string           `json:"phase"`
	Winner      string           `json:"winner,omitempty"`
	Stats       Stats            `json:"stats"`
	Fighters    []FighterView    `json:"fighters"`
	Projectiles []ProjectileView `json:"projectiles"`
	Banners     []Banner         `json:"banners,omitempty"`
}

func projectileKindName(p *Projectile) string {
	switch p.Kind {
	case units.ProjectileArrow:
		return "arrow"
	case units.ProjectileMagic:
		return "magic"
	case units.ProjectileHeal:
		return "heal"
	}
	return "generic"
}

// Snapshot copies the current state into a fresh read-only snapshot and
// drains pending banner events into it. Call from the simulation
// goroutine only.
func (s *Simulation) Snapshot() *Snapshot {
	snap := &Snapshot{
		Tick:        s.tick,
		Phase:       s.phase.String(),
		Winner:      s.winnerName,
		Fighters:    make([]FighterView, 0, len(s.roster)),
		Projectiles: make([]ProjectileView, 0, len(s.shots)),
	}
	players, enemies := 0, 0
	for _, h := range s.roster {
		f := s.fighters.Get(h)
		if f == nil {
			continue
		}
		if f.Alive() {
			if f.Team == TeamPlayer {
				players++
			} else {
				enemies++
			}
		}
		snap.Fighters = append(snap.Fighters, FighterView{
			ID:     f.ID,
			Name:   f.Name,
			Team:   f.Team.String(),
			Kind:   f.Def.Kind,
			Level:  f.Level,
			HP:     f.HP,
			MaxHP:  f.MaxHP,
			X:      f.X,
			Y:      f.Y,
			Facing: f.Facing,
			State:  f.State.String(),
		})
	}
	for _, h := range s.shots {
		p := s.projectiles.Get(h)
		if p == nil {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Team: p.Team.String(),
			Kind: projectileKindName(p),
			X:    p.X,
			Y:    p.Y,
		})
	}
	snap.Stats = Stats{
		Wave:          s.wave.Number,
		PlayersAlive:  players,
		EnemiesAlive:  enemies,
		Hearts:        s.boards.Hearts(),
		TopKills:      s.boards.TopKills(5),
		TopSupporters: s.boards.TopSupporters(5),
	}
	if len(s.banners) > 0 {
		snap.Banners = append(snap.Banners, s.banners...)
		s.banners = s.banners[:0]
	}
	return snap
}
