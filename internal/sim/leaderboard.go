package sim

import (
	"sort"
	"time"
)

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Leaderboards tracks per-name kills under the current day key, per-name
// supporter points for the current match, and the running hearts total.
// Kills reset when the day key rolls over; supporters and hearts never
// reset during a match.
type Leaderboards struct {
	now func() time.Time

	dayKey     string
	kills      map[string]int
	supporters map[string]int
	hearts     int
}

// NewLeaderboards creates empty boards on the wall clock.
func NewLeaderboards() *Leaderboards {
	return newLeaderboards(time.Now)
}

func newLeaderboards(now func() time.Time) *Leaderboards {
	lb := &Leaderboards{
		now:        now,
		kills:      make(map[string]int),
		supporters: make(map[string]int),
	}
	lb.dayKey = dayKeyFor(lb.now())
	return lb
}

func dayKeyFor(t time.Time) string {
	return t.Format("2006-01-02")
}

// rollover resets the kill board when the day changes.
func (lb *Leaderboards) rollover() {
	key := dayKeyFor(lb.now())
	if key != lb.dayKey {
		lb.dayKey = key
		clear(lb.kills)
	}
}

// AddKill credits one kill under the active day key.
func (lb *Leaderboards) AddKill(name string) {
	if name == "" {
		return
	}
	lb.rollover()
	lb.kills[name]++
}

// AddSupport adds supporter points for the current match.
func (lb *Leaderboards) AddSupport(name string, points int) {
	if name == "" || points <= 0 {
		return
	}
	lb.supporters[name] += points
}

// AddHearts raises the running hearts total; negative counts clamp to 0.
func (lb *Leaderboards) AddHearts(n int) {
	if n < 0 {
		n = 0
	}
	lb.hearts += n
}

// Hearts returns the running total.
func (lb *Leaderboards) Hearts() int { return lb.hearts }

// TopKills returns up to n kill entries for the active day key, highest
// first, names breaking ties deterministically.
func (lb *Leaderboards) TopKills(n int) []ScoreEntry {
	lb.rollover()
	return topN(lb.kills, n)
}

// TopSupporters returns up to n supporter entries for the match.
func (lb *Leaderboards) TopSupporters(n int) []ScoreEntry {
	return topN(lb.supporters, n)
}

func topN(m map[string]int, n int) []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(m))
	for name, score := range m {
		entries = append(entries, ScoreEntry{Name: name, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
