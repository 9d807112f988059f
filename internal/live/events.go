package live

import (
	"encoding/json"
	"fmt"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/sim"
)

// wireEvent is the JSON shape shared by all lobby messages; only the
// fields for a given type carry meaning.
type wireEvent struct {
	Type     string            `json:"type"`
	Phase    string            `json:"phase"`
	Fighters []sim.FighterSpec `json:"fighters"`
	Fighter  *sim.FighterSpec  `json:"fighter"`
	Count    int               `json:"count"`
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	GiftType string            `json:"giftType"`
	Winner   string            `json:"winner"`
}

// ParseEvent decodes one lobby message into a simulation event. Unknown
// or malformed messages return an error and are treated as no-ops by the
// caller.
func ParseEvent(raw []byte) (sim.Event, error) {
	var w wireEvent
	if err := json.Unmarshal(raw, &w); err != nil {
		return sim.Event{}, fmt.Errorf("decode event: %w", err)
	}

	switch w.Type {
	case "snapshot", "state":
		return sim.Event{Type: sim.EventSnapshot, Phase: w.Phase, Fighters: w.Fighters}, nil

	case "join":
		spec := w.Fighter
		if spec == nil {
			// Flat join payloads carry the fields at the top level.
			spec = &sim.FighterSpec{ID: w.ID, Name: w.Name}
		}
		if spec.Name == "" && spec.ID == "" {
			return sim.Event{}, fmt.Errorf("join without identity")
		}
		return sim.Event{Type: sim.EventJoin, Join: spec}, nil

	case "hearts":
		return sim.Event{Type: sim.EventHearts, Count: w.Count, ID: w.ID, Name: w.Name}, nil

	case "gift":
		if w.GiftType == "" {
			return sim.Event{}, fmt.Errorf("gift without giftType")
		}
		return sim.Event{Type: sim.EventGift, GiftType: w.GiftType, ID: w.ID, Name: w.Name}, nil

	case "phase":
		if w.Phase == "" {
			return sim.Event{}, fmt.Errorf("phase event without phase")
		}
		return sim.Event{Type: sim.EventPhase, Phase: w.Phase}, nil

	case "winner":
		name := w.Winner
		if name == "" {
			name = w.Name
		}
		return sim.Event{Type: sim.EventWinner, Name: name}, nil
	}
	return sim.Event{}, fmt.Errorf("unknown event type %q", w.Type)
}
