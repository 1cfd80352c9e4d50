package game

import (
	"time"
)

type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// Fixed game rules.
const (
	NumPlayers        = 4
	UpdatesPerPlayer  = 10
	MaxUpdates        = NumPlayers * UpdatesPerPlayer
	BonusThreshold    = 50
	PenaltyChance     = 15 // percent
	MaxPenalty        = 5
	MaxGain           = 9
	LogCapacity       = 50
	MinUpdateInterval = 500 * time.Millisecond
	MaxUpdateInterval = 1500 * time.Millisecond
)

type Category string

const (
	CategoryInfo    Category = "info"
	CategoryScore   Category = "score"
	CategoryBonus   Category = "bonus"
	CategoryPenalty Category = "penalty"
	CategoryStart   Category = "start"
	CategoryEnd     Category = "end"
)

type Player struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Color            string  `json:"color"`
	Score            int     `json:"score"`
	TotalAttempts    int     `json:"totalAttempts"`
	SuccessfulScores int     `json:"successfulScores"`
	Penalties        int     `json:"penalties"`
	Bonuses          int     `json:"bonuses"`
	AvgScore         float64 `json:"avgScore"`
}

// DefaultPlayers returns the fixed fleet every session starts with.
func DefaultPlayers() []Player {
	return []Player{
		{ID: 0, Name: "Alpha", Color: "#3b82f6"},
		{ID: 1, Name: "Beta", Color: "#10b981"},
		{ID: 2, Name: "Gamma", Color: "#a855f7"},
		{ID: 3, Name: "Delta", Color: "#f97316"},
	}
}

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Category  Category  `json:"category"`
}

// Stats are the aggregate figures shown next to the leaderboard.
type Stats struct {
	TotalScore int     `json:"totalScore"`
	MeanScore  float64 `json:"meanScore"`
	MaxScore   int     `json:"maxScore"`
	MinScore   int     `json:"minScore"`
}

// Summary is the final-state snapshot computed once a game finishes.
type Summary struct {
	Ranking   []Player      `json:"ranking"`
	Winner    Player        `json:"winner"`
	Stats     Stats         `json:"stats"`
	StartedAt time.Time     `json:"startedAt"`
	EndedAt   time.Time     `json:"endedAt"`
	Duration  time.Duration `json:"duration"`
}

type Snapshot struct {
	State        State      `json:"state"`
	Players      []Player   `json:"players"` // ranked
	Logs         []LogEntry `json:"logs"`
	TotalUpdates int        `json:"totalUpdates"`
	MaxUpdates   int        `json:"maxUpdates"`
	Stats        Stats      `json:"stats"`
	Summary      *Summary   `json:"summary,omitempty"`
}
