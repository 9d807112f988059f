package sim

import (
	"testing"
	"time"
)

func TestLeaderboardTopKillsOrdering(t *testing.T) {
	lb := NewLeaderboards()
	lb.AddKill("carol")
	lb.AddKill("alice")
	lb.AddKill("alice")
	lb.AddKill("bob")
	lb.AddKill("bob")

	top := lb.TopKills(10)
	if len(top) != 3 {
		t.Fatalf("entries = %d, want 3", len(top))
	}
	// alice and bob tie on 2; names break the tie.
	want := []ScoreEntry{{"alice", 2}, {"bob", 2}, {"carol", 1}}
	for i, w := range want {
		if top[i] != w {
			t.Fatalf("top[%d] = %v, want %v", i, top[i], w)
		}
	}
}

func TestLeaderboardTopKillsLimit(t *testing.T) {
	lb := NewLeaderboards()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		lb.AddKill(name)
	}
	if got := len(lb.TopKills(5)); got != 5 {
		t.Fatalf("TopKills(5) returned %d entries", got)
	}
}

func TestLeaderboardDailyRollover(t *testing.T) {
	cur := time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)
	lb := newLeaderboards(func() time.Time { return cur })

	lb.AddKill("alice")
	lb.AddSupport("bob", 40)
	if got := lb.TopKills(5); len(got) != 1 {
		t.Fatalf("kills before midnight = %v", got)
	}

	cur = cur.Add(20 * time.Minute) // crosses the day boundary

	if got := lb.TopKills(5); len(got) != 0 {
		t.Fatalf("kill board survived rollover: %v", got)
	}
	// Supporter points are per-match, not per-day.
	if got := lb.TopSupporters(5); len(got) != 1 || got[0].Score != 40 {
		t.Fatalf("supporter board lost across rollover: %v", got)
	}

	lb.AddKill("carol")
	if got := lb.TopKills(5); len(got) != 1 || got[0].Name != "carol" {
		t.Fatalf("post-rollover kills = %v", got)
	}
}

func TestLeaderboardIgnoresAnonymous(t *testing.T) {
	lb := NewLeaderboards()
	lb.AddKill("")
	lb.AddSupport("", 10)
	if len(lb.TopKills(5)) != 0 || len(lb.TopSupporters(5)) != 0 {
		t.Fatal("unnamed credit reached the boards")
	}
}

func TestLeaderboardHearts(t *testing.T) {
	lb := NewLeaderboards()
	lb.AddHearts(10)
	lb.AddHearts(-5)
	lb.AddHearts(3)
	if lb.Hearts() != 13 {
		t.Fatalf("Hearts() = %d, want 13", lb.Hearts())
	}
}
