package game

import "fmt"

// Random is the source of every draw the simulation makes.
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

type Outcome int

const (
	OutcomeScore Outcome = iota
	OutcomeBonus
	OutcomePenalty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeScore:
		return "score"
	case OutcomeBonus:
		return "bonus"
	case OutcomePenalty:
		return "penalty"
	default:
		return "unknown"
	}
}

// Update is the result of one roll against a player's score.
// Points is the penalty size for OutcomePenalty and the raw gain otherwise.
type Update struct {
	Outcome  Outcome
	Points   int
	Bonus    int
	NewScore int
}

// RollUpdate decides what happens to a player currently holding score.
// Draw order is fixed: penalty roll, then either penalty size or gain.
func RollUpdate(score int, r Random) Update {
	if r.Intn(100) < PenaltyChance {
		penalty := r.Intn(MaxPenalty) + 1
		return Update{Outcome: OutcomePenalty, Points: penalty, NewScore: max(0, score-penalty)}
	}
	gain := r.Intn(MaxGain + 1)
	score += gain
	bonus := bonusFor(score)
	if bonus > 0 {
		return Update{Outcome: OutcomeBonus, Points: gain, Bonus: bonus, NewScore: score + bonus}
	}
	return Update{Outcome: OutcomeScore, Points: gain, NewScore: score}
}

// bonusFor leaves [60,100) without a bonus.
func bonusFor(score int) int {
	if score >= BonusThreshold && score < BonusThreshold+10 {
		return 10
	} else if score >= BonusThreshold*2 {
		return 15
	}
	return 0
}

// Apply records u against the player's counters.
func (p *Player) Apply(u Update) {
	p.TotalAttempts++
	p.Score = u.NewScore
	switch u.Outcome {
	case OutcomePenalty:
		p.Penalties++
	case OutcomeBonus:
		p.SuccessfulScores++
		p.Bonuses++
	default:
		p.SuccessfulScores++
	}
	p.AvgScore = float64(p.Score) / float64(p.TotalAttempts)
}

func (p *Player) reset() {
	p.Score = 0
	p.TotalAttempts = 0
	p.SuccessfulScores = 0
	p.Penalties = 0
	p.Bonuses = 0
	p.AvgScore = 0
}

// logFor renders the single activity line an update produces.
func logFor(p Player, u Update) (string, Category) {
	switch u.Outcome {
	case OutcomePenalty:
		return fmt.Sprintf("PENALTY - Player %s: -%d points (Total: %d)", p.Name, u.Points, p.Score), CategoryPenalty
	case OutcomeBonus:
		return fmt.Sprintf("BONUS EARNED - Player %s: +%d points (Total: %d)", p.Name, u.Bonus, p.Score), CategoryBonus
	default:
		return fmt.Sprintf("SCORE UPDATE - Player %s: +%d points (Total: %d)", p.Name, u.Points, p.Score), CategoryScore
	}
}
