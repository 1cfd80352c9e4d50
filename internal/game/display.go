package game

// Display receives engine notifications. Calls are made while the engine
// holds its lock, in mutation order; implementations must not call back
// into the engine synchronously.
type Display interface {
	OnPlayersChanged(players []Player)
	OnLogAppended(entries []LogEntry)
	OnProgress(current, max int)
	OnGameFinished(summary Summary)
	OnGameReset()
	OnGameStarted()
}

type NopDisplay struct{}

func (NopDisplay) OnPlayersChanged([]Player) {}
func (NopDisplay) OnLogAppended([]LogEntry) {}
func (NopDisplay) OnProgress(int, int) {}
func (NopDisplay) OnGameFinished(Summary) {}
func (NopDisplay) OnGameReset() {}
func (NopDisplay) OnGameStarted() {}
