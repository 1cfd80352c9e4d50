package game

import (
	"sort"
	"time"
)

// Rank returns copies of players ordered by descending score. Ties keep
// their original order.
func Rank(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func ComputeStats(players []Player) Stats {
	if len(players) == 0 {
		return Stats{}
	}
	s := Stats{MaxScore: players[0].Score, MinScore: players[0].Score}
	for _, p := range players {
		s.TotalScore += p.Score
		s.MaxScore = max(s.MaxScore, p.Score)
		s.MinScore = min(s.MinScore, p.Score)
	}
	s.MeanScore = float64(s.TotalScore) / float64(len(players))
	return s
}

// Summarize builds the final summary. An empty player list yields a zero
// Summary apart from the timestamps.
func Summarize(players []Player, startedAt, endedAt time.Time) Summary {
	s := Summary{
		Ranking:   Rank(players),
		Stats:     ComputeStats(players),
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Duration:  endedAt.Sub(startedAt),
	}
	if len(s.Ranking) > 0 {
		s.Winner = s.Ranking[0]
	}
	return s
}

func (s Summary) clone() Summary {
	s.Ranking = append([]Player(nil), s.Ranking...)
	return s
}
