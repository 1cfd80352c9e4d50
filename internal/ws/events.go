package ws

import (
	"slices"

	"github.com/kiliankoe/scoredash/internal/game"
)

const (
	EventState    = "sim:state"
	EventPlayers  = "sim:players"
	EventLogs     = "sim:logs"
	EventProgress = "sim:progress"
	EventFinished = "sim:finished"
	EventStarted  = "sim:started"
	EventReset    = "sim:reset"
)

type publisher interface {
	publish(code, event string, data any)
}

// roomDisplay turns engine notifications for one session into events.
type roomDisplay struct {
	code string
	pub  publisher
}

func (d roomDisplay) OnPlayersChanged(players []game.Player) {
	d.pub.publish(d.code, EventPlayers, map[string]any{"players": game.Rank(players)})
}

// Entries go out newest first.
func (d roomDisplay) OnLogAppended(entries []game.LogEntry) {
	out := slices.Clone(entries)
	slices.Reverse(out)
	d.pub.publish(d.code, EventLogs, map[string]any{"entries": out})
}

func (d roomDisplay) OnProgress(current, max int) {
	pct := 0.0
	if max > 0 {
		pct = float64(current) / float64(max) * 100
	}
	d.pub.publish(d.code, EventProgress, map[string]any{"current": current, "max": max, "percent": pct})
}

func (d roomDisplay) OnGameFinished(s game.Summary) {
	d.pub.publish(d.code, EventFinished, s)
}

func (d roomDisplay) OnGameReset() {
	d.pub.publish(d.code, EventReset, map[string]any{})
}

func (d roomDisplay) OnGameStarted() {
	d.pub.publish(d.code, EventStarted, map[string]any{})
}
