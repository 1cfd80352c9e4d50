// Package display holds game.Display implementations that are not tied to a
// network transport.
package display

import (
	"github.com/kiliankoe/scoredash/internal/game"
	"github.com/rs/zerolog"
)

// Console writes each notification as a structured log line. Only the
// newest log entry is printed on OnLogAppended.
type Console struct {
	log zerolog.Logger
}

func NewConsole(l zerolog.Logger) *Console {
	return &Console{log: l}
}

func (c *Console) OnPlayersChanged(players []game.Player) {
	ev := c.log.Debug()
	for i, p := range game.Rank(players) {
		ev = ev.Int(p.Name, p.Score)
		if i == 0 {
			ev = ev.Str("leader", p.Name)
		}
	}
	ev.Msg("players")
}

func (c *Console) OnLogAppended(entries []game.LogEntry) {
	if len(entries) == 0 {
		return
	}
	last := entries[len(entries)-1]
	c.log.Info().Str("category", string(last.Category)).Time("at", last.Timestamp).Msg(last.Message)
}

func (c *Console) OnProgress(current, max int) {
	pct := 0.0
	if max > 0 {
		pct = float64(current) / float64(max) * 100
	}
	c.log.Debug().Int("current", current).Int("max", max).Float64("percent", pct).Msg("progress")
}

func (c *Console) OnGameFinished(s game.Summary) {
	c.log.Info().
		Str("winner", s.Winner.Name).
		Int("score", s.Winner.Score).
		Int("total", s.Stats.TotalScore).
		Float64("mean", s.Stats.MeanScore).
		Int("high", s.Stats.MaxScore).
		Int("low", s.Stats.MinScore).
		Dur("duration", s.Duration).
		Msg("winner")
}

func (c *Console) OnGameReset() { c.log.Info().Msg("reset") }
func (c *Console) OnGameStarted() { c.log.Info().Msg("started") }
