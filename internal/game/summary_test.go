package game

import (
	"testing"
	"time"
)

func TestSummarizeRanksStablyAndComputesStats(t *testing.T) {
	players := []Player{
		{ID: 0, Name: "Alpha", Score: 20},
		{ID: 1, Name: "Beta", Score: 35},
		{ID: 2, Name: "Gamma", Score: 20},
		{ID: 3, Name: "Delta", Score: 5},
	}
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(42 * time.Second)

	s := Summarize(players, start, end)

	wantOrder := []string{"Beta", "Alpha", "Gamma", "Delta"}
	for i, name := range wantOrder {
		if s.Ranking[i].Name != name {
			t.Fatalf("rank %d = %s, want %s", i+1, s.Ranking[i].Name, name)
		}
	}
	if s.Winner.Name != "Beta" {
		t.Fatalf("expected winner Beta, got %s", s.Winner.Name)
	}
	if s.Stats.TotalScore != 80 || s.Stats.MeanScore != 20 || s.Stats.MaxScore != 35 || s.Stats.MinScore != 5 {
		t.Fatalf("unexpected stats: %+v", s.Stats)
	}
	if s.Duration != 42*time.Second {
		t.Fatalf("expected 42s, got %s", s.Duration)
	}
	if players[0].Name != "Alpha" || players[1].Name != "Beta" {
		t.Fatal("Summarize must not reorder its input")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Time{}, time.Time{})
	if len(s.Ranking) != 0 || s.Winner.Name != "" || s.Stats != (Stats{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestSummaryCloneDoesNotAlias(t *testing.T) {
	s := Summarize([]Player{{Name: "Alpha", Score: 1}}, time.Time{}, time.Time{})
	c := s.clone()
	c.Ranking[0].Score = 99
	if s.Ranking[0].Score != 1 {
		t.Fatal("clone shares ranking storage")
	}
}
