package display

import "github.com/kiliankoe/scoredash/internal/game"

// Multi forwards every notification to each display in order.
type Multi []game.Display

func (m Multi) OnPlayersChanged(players []game.Player) {
	for _, d := range m {
		d.OnPlayersChanged(players)
	}
}

func (m Multi) OnLogAppended(entries []game.LogEntry) {
	for _, d := range m {
		d.OnLogAppended(entries)
	}
}

func (m Multi) OnProgress(current, max int) {
	for _, d := range m {
		d.OnProgress(current, max)
	}
}

func (m Multi) OnGameFinished(s game.Summary) {
	for _, d := range m {
		d.OnGameFinished(s)
	}
}

func (m Multi) OnGameReset() {
	for _, d := range m {
		d.OnGameReset()
	}
}

func (m Multi) OnGameStarted() {
	for _, d := range m {
		d.OnGameStarted()
	}
}
