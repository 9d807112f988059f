package sim

import (
	"sync"

	"github.com/google/uuid"
)

// EventType discriminates external event payloads.
type EventType string

const (
	EventSnapshot EventType = "snapshot"
	EventJoin     EventType = "join"
	EventHearts   EventType = "hearts"
	EventGift     EventType = "gift"
	EventPhase    EventType = "phase"
	EventWinner   EventType = "winner"
)

// FighterSpec names one fighter to spawn, as delivered by the lobby
// authority.
type FighterSpec struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Kind  string `json:"kind"`
	Level int    `json:"level"`
}

// Event is one inbound external event. Exactly the fields for its Type
// are meaningful; everything else is ignored.
type Event struct {
	Type     EventType
	Phase    string
	Fighters []FighterSpec // snapshot roster
	Join     *FighterSpec
	Count    int    // hearts
	ID       string // attributed platform user id
	Name     string // attributed supporter or winner name
	GiftType string
}

// intake is the bounded queue external goroutines push events into.
// Events are drained at the start of each outer update, before any fixed
// tick runs, so spawns and heals never mutate state mid-iteration.
type intake struct {
	mu    sync.Mutex
	max   int
	queue []Event
	spill []Event // drained into, reused
}

func newIntake(max int) *intake {
	if max <= 0 {
		max = 256
	}
	return &intake{max: max, queue: make([]Event, 0, max)}
}

// push enqueues an event, reporting false when the queue is full and the
// event was dropped.
func (q *intake) push(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.queue) >= q.max {
		return false
	}
	q.queue = append(q.queue, ev)
	return true
}

// drain swaps out the pending events for processing.
func (q *intake) drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue, q.spill = q.spill[:0], q.queue
	return q.spill
}

// Enqueue queues an external event for the next tick boundary. Safe to
// call from any goroutine. A full queue drops the event with a warning.
func (s *Simulation) Enqueue(ev Event) bool {
	if !s.intake.push(ev) {
		metricEventsDropped.Inc()
		s.log.Warnw("event dropped, intake full", "type", ev.Type)
		return false
	}
	return true
}

// apply executes one drained event against simulation state. Malformed
// payloads are no-ops; out-of-range numbers are clamped.
func (s *Simulation) apply(ev Event) {
	metricEvents.WithLabelValues(string(ev.Type)).Inc()
	switch ev.Type {
	case EventSnapshot:
		s.applyLobbySnapshot(ev)
	case EventJoin:
		if ev.Join != nil {
			s.applyJoin(*ev.Join)
		}
	case EventHearts:
		s.applyHearts(ev)
	case EventGift:
		s.applyGift(ev)
	case EventPhase:
		s.applyPhase(ev.Phase)
	case EventWinner:
		s.winnerDeclared = true
		s.winnerName = ev.Name
		s.pushBanner(Banner{Kind: BannerWinner, Name: ev.Name})
	default:
		s.log.Warnw("unrecognized event", "type", ev.Type)
	}
}

// applyLobbySnapshot replaces the match roster with the authority's
// state, delivered on connect.
func (s *Simulation) applyLobbySnapshot(ev Event) {
	s.clearRoster()
	s.winnerDeclared = false
	s.winnerName = ""
	s.applyPhase(ev.Phase)
	for _, spec := range ev.Fighters {
		s.applyJoin(spec)
	}
	s.log.Infow("lobby snapshot applied", "fighters", len(ev.Fighters), "phase", s.phase.String())
}

func (s *Simulation) applyJoin(spec FighterSpec) {
	team := TeamPlayer
	if spec.Team == "enemy" {
		team = TeamEnemy
	}
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	kind := spec.Kind
	if kind == "" {
		kind = "swordsman"
	}
	// Rejections are already logged by SpawnFighter; the event is a no-op.
	_, _ = s.SpawnFighter(team, kind, id, spec.Name, spec.Level)
}

// applyHearts heals the player team and feeds the supporter boards.
// Negative counts clamp to zero, oversized counts to the configured cap.
func (s *Simulation) applyHearts(ev Event) {
	count := ev.Count
	if count < 0 {
		count = 0
	}
	if count > s.tun.MaxHearts {
		count = s.tun.MaxHearts
	}
	s.boards.AddHearts(count)
	if ev.Name != "" {
		s.boards.AddSupport(ev.Name, count)
	}
	if count == 0 {
		return
	}
	for _, h := range s.roster {
		if f := s.fighters.Get(h); f != nil && f.Alive() && f.Team == TeamPlayer {
			s.applyHeal(f, count)
		}
	}
}

// giftTier maps a platform gift type onto its gameplay effect.
type giftTier struct {
	kind   string
	count  int
	points int
}

var giftTiers = map[string]giftTier{
	"rose":         {kind: "swordsman", count: 1, points: 1},
	"finger_heart": {kind: "archer", count: 1, points: 5},
	"doughnut":     {kind: "cleric", count: 1, points: 30},
	"money_gun":    {kind: "mage", count: 2, points: 50},
	"galaxy":       {kind: "mage", count: 3, points: 200},
	"universe":     {kind: "mage", count: 5, points: 500},
}

// baselineGiftTier is used for unrecognized gift strings rather than
// rejecting the event.
var baselineGiftTier = giftTier{kind: "swordsman", count: 1, points: 1}

func (s *Simulation) applyGift(ev Event) {
	tier, ok := giftTiers[ev.GiftType]
	if !ok {
		tier = baselineGiftTier
	}
	if ev.Name != "" {
		s.boards.AddSupport(ev.Name, tier.points)
	}
	for i := 0; i < tier.count; i++ {
		id := ev.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := s.SpawnFighter(TeamPlayer, tier.kind, id, ev.Name, 1); err != nil {
			return
		}
	}
	s.pushBanner(Banner{Kind: BannerGift, Name: ev.Name, Gift: ev.GiftType})
}

func (s *Simulation) applyPhase(phase string) {
	switch phase {
	case "battle", "fight", "arena":
		s.phase = PhaseBattle
	case "lobby", "waiting", "intermission":
		s.phase = PhaseLobby
	case "":
		// snapshot without a phase keeps the current one
	default:
		s.log.Warnw("unrecognized phase", "phase", phase)
	}
}
