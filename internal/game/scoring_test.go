package game

import (
	"math/rand"
	"testing"
)

func TestRollUpdateBonusOnEnteringBonusBand(t *testing.T) {
	r := stubRandom{gain: 9}
	p := Player{Name: "Alpha"}
	for i := 1; i <= 5; i++ {
		u := RollUpdate(p.Score, r)
		if u.Outcome != OutcomeScore {
			t.Fatalf("update %d: expected plain score, got %s", i, u.Outcome)
		}
		p.Apply(u)
	}
	if p.Score != 45 || p.Bonuses != 0 {
		t.Fatalf("expected 45 with no bonus after 5 updates, got %d (bonuses %d)", p.Score, p.Bonuses)
	}

	u := RollUpdate(p.Score, r)
	if u.Outcome != OutcomeBonus || u.Points != 9 || u.Bonus != 10 {
		t.Fatalf("expected +9 then +10 bonus on update 6, got %+v", u)
	}
	p.Apply(u)
	if p.Score != 64 || p.Bonuses != 1 {
		t.Fatalf("expected 54+10=64 with one bonus, got %d (bonuses %d)", p.Score, p.Bonuses)
	}

	// 73, 82, 91 sit in the gap with no bonus.
	for i := 0; i < 3; i++ {
		u := RollUpdate(p.Score, r)
		if u.Outcome != OutcomeScore {
			t.Fatalf("expected no bonus at %d, got %+v", p.Score+9, u)
		}
		p.Apply(u)
	}
	u = RollUpdate(p.Score, r)
	if u.Outcome != OutcomeBonus || u.Bonus != 15 || u.NewScore != 115 {
		t.Fatalf("expected 100+15 at the high threshold, got %+v", u)
	}
	p.Apply(u)
	if p.Bonuses != 2 || p.SuccessfulScores != 10 || p.TotalAttempts != 10 {
		t.Fatalf("unexpected counters: %+v", p)
	}
}

func TestRollUpdatePenaltyClampsAtZero(t *testing.T) {
	r := stubRandom{penalty: true, penaltySize: 5}
	p := Player{Score: 3}

	u := RollUpdate(p.Score, r)
	if u.Outcome != OutcomePenalty || u.Points != 5 {
		t.Fatalf("expected -5 penalty, got %+v", u)
	}
	p.Apply(u)
	if p.Score != 0 {
		t.Fatalf("expected clamp to 0, got %d", p.Score)
	}

	p.Apply(RollUpdate(p.Score, r))
	if p.Score != 0 {
		t.Fatalf("expected score to stay 0, got %d", p.Score)
	}
	if p.Penalties != 2 || p.SuccessfulScores != 0 || p.TotalAttempts != 2 {
		t.Fatalf("unexpected counters: %+v", p)
	}
	if p.AvgScore != 0 {
		t.Fatalf("expected avg 0, got %f", p.AvgScore)
	}
}

func TestRollUpdateZeroGainIsPlainScore(t *testing.T) {
	u := RollUpdate(10, stubRandom{gain: 0})
	if u.Outcome != OutcomeScore || u.NewScore != 10 {
		t.Fatalf("expected +0 score update, got %+v", u)
	}
}

func TestBonusFor(t *testing.T) {
	tcs := []struct {
		score int
		want  int
	}{
		{49, 0}, {50, 10}, {59, 10}, {60, 0}, {99, 0}, {100, 15}, {250, 15},
	}
	for _, tc := range tcs {
		if got := bonusFor(tc.score); got != tc.want {
			t.Fatalf("bonusFor(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestApplyKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Player{}
	for i := 0; i < 500; i++ {
		p.Apply(RollUpdate(p.Score, rng))
		if p.Score < 0 {
			t.Fatalf("negative score after %d updates", i+1)
		}
		if p.SuccessfulScores+p.Penalties != p.TotalAttempts {
			t.Fatalf("counters out of sync after %d updates: %+v", i+1, p)
		}
		if want := float64(p.Score) / float64(p.TotalAttempts); p.AvgScore != want {
			t.Fatalf("avg = %f, want %f", p.AvgScore, want)
		}
	}
}

func TestLogForMessages(t *testing.T) {
	p := Player{Name: "Beta", Score: 12}
	tcs := []struct {
		u   Update
		msg string
		cat Category
	}{
		{Update{Outcome: OutcomePenalty, Points: 3}, "PENALTY - Player Beta: -3 points (Total: 12)", CategoryPenalty},
		{Update{Outcome: OutcomeBonus, Points: 4, Bonus: 10}, "BONUS EARNED - Player Beta: +10 points (Total: 12)", CategoryBonus},
		{Update{Outcome: OutcomeScore, Points: 7}, "SCORE UPDATE - Player Beta: +7 points (Total: 12)", CategoryScore},
	}
	for _, tc := range tcs {
		msg, cat := logFor(p, tc.u)
		if msg != tc.msg || cat != tc.cat {
			t.Fatalf("logFor(%s) = %q/%s, want %q/%s", tc.u.Outcome, msg, cat, tc.msg, tc.cat)
		}
	}
}
