package game

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Deps are the collaborators an Engine needs. Nil fields get defaults.
type Deps struct {
	Random    Random
	Scheduler Scheduler
	Display   Display
	Clock     func() time.Time
	Logger    *zerolog.Logger
}

// Engine runs one simulation. All mutation happens under mu, so timer
// callbacks and API calls share a single timeline.
type Engine struct {
	mu sync.Mutex

	players      []Player
	state        State
	logs         *LogBuffer
	totalUpdates int
	startedAt    time.Time
	endedAt      time.Time
	summary      *Summary

	rng     Random
	sched   Scheduler
	display Display
	now     func() time.Time
	log     zerolog.Logger

	// at most one pending advance; gen invalidates callbacks that lost a
	// race with Stop.
	pending Timer
	gen     uint64
}

func NewEngine(players []Player, deps Deps) *Engine {
	if deps.Random == nil {
		deps.Random = NewRand(0)
	}
	if deps.Scheduler == nil {
		deps.Scheduler = RealScheduler{}
	}
	if deps.Display == nil {
		deps.Display = NopDisplay{}
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = &log.Logger
	}
	ps := make([]Player, len(players))
	copy(ps, players)
	for i := range ps {
		ps[i].reset()
	}
	return &Engine{
		players: ps,
		state:   StateIdle,
		logs:    NewLogBuffer(LogCapacity),
		rng:     deps.Random,
		sched:   deps.Scheduler,
		display: deps.Display,
		now:     deps.Clock,
		log:     *deps.Logger,
	}
}

// Start begins a new game. It reports false, changing nothing, when a game
// is already running.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateRunning {
		return false
	}
	e.stopPending()
	e.clear()
	e.startedAt = e.now()
	e.state = StateRunning

	e.display.OnGameStarted()
	e.appendLog("GAME STARTED - All players initialized", CategoryStart)
	e.notifyPlayers()
	e.notifyProgress()
	e.log.Info().Int("players", len(e.players)).Msg("game started")

	if len(e.players) == 0 {
		e.log.Warn().Msg("no players; finishing immediately")
		e.finish()
		return true
	}
	e.scheduleNext()
	return true
}

// Reset cancels any pending update and returns to Idle. Safe in any state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopPending()
	prev := e.state
	e.clear()
	e.state = StateIdle

	e.display.OnGameReset()
	e.notifyPlayers()
	e.display.OnLogAppended(e.logs.Entries())
	e.notifyProgress()
	if prev != StateIdle {
		e.log.Info().Str("from", string(prev)).Msg("game reset")
	}
}

// Advance applies one update immediately. It reports false when no game is
// running or nobody was eligible.
func (e *Engine) Advance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advance()
}

func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return
	}
	e.pending = nil
	e.advance()
}

func (e *Engine) advance() bool {
	if e.state != StateRunning {
		return false
	}
	eligible := make([]int, 0, len(e.players))
	for i, p := range e.players {
		if p.TotalAttempts < UpdatesPerPlayer {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		e.finish()
		return false
	}

	p := &e.players[eligible[e.rng.Intn(len(eligible))]]
	u := RollUpdate(p.Score, e.rng)
	p.Apply(u)
	e.totalUpdates++
	msg, cat := logFor(*p, u)
	e.appendLog(msg, cat)
	e.notifyPlayers()
	e.notifyProgress()
	e.log.Debug().Str("player", p.Name).Str("outcome", u.Outcome.String()).Int("score", p.Score).Msg("update")

	if e.totalUpdates >= e.maxUpdates() {
		e.finish()
	} else {
		e.scheduleNext()
	}
	return true
}

func (e *Engine) finish() {
	e.stopPending()
	e.state = StateFinished
	e.endedAt = e.now()
	e.appendLog("GAME OVER - All updates completed", CategoryEnd)
	s := Summarize(e.players, e.startedAt, e.endedAt)
	e.summary = &s
	e.display.OnGameFinished(s.clone())
	e.notifyPlayers()
	e.notifyProgress()

	ev := e.log.Info().Dur("duration", s.Duration)
	if len(s.Ranking) > 0 {
		ev = ev.Str("winner", s.Winner.Name).Int("score", s.Winner.Score)
	}
	ev.Msg("game finished")
}

func (e *Engine) scheduleNext() {
	e.stopPending()
	spread := int((MaxUpdateInterval - MinUpdateInterval) / time.Millisecond)
	d := MinUpdateInterval + time.Duration(e.rng.Intn(spread))*time.Millisecond
	gen := e.gen
	e.pending = e.sched.AfterFunc(d, func() { e.fire(gen) })
}

func (e *Engine) stopPending() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.gen++
}

func (e *Engine) clear() {
	for i := range e.players {
		e.players[i].reset()
	}
	e.totalUpdates = 0
	e.logs.Clear()
	e.startedAt = time.Time{}
	e.endedAt = time.Time{}
	e.summary = nil
}

func (e *Engine) appendLog(msg string, cat Category) {
	e.logs.Append(LogEntry{Timestamp: e.now(), Message: msg, Category: cat})
	e.display.OnLogAppended(e.logs.Entries())
}

func (e *Engine) notifyPlayers() {
	e.display.OnPlayersChanged(e.copyPlayers())
}

func (e *Engine) notifyProgress() {
	e.display.OnProgress(e.totalUpdates, e.maxUpdates())
}

func (e *Engine) maxUpdates() int {
	return len(e.players) * UpdatesPerPlayer
}

func (e *Engine) copyPlayers() []Player {
	out := make([]Player, len(e.players))
	copy(out, e.players)
	return out
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Players returns copies in fleet order.
func (e *Engine) Players() []Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyPlayers()
}

func (e *Engine) Logs() []LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.logs.Entries()
}

func (e *Engine) TotalUpdates() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalUpdates
}

// Summary is nil until the game finishes.
func (e *Engine) Summary() *Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.summary == nil {
		return nil
	}
	s := e.summary.clone()
	return &s
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := Snapshot{
		State:        e.state,
		Players:      Rank(e.players),
		Logs:         e.logs.Entries(),
		TotalUpdates: e.totalUpdates,
		MaxUpdates:   e.maxUpdates(),
		Stats:        ComputeStats(e.players),
	}
	if e.summary != nil {
		s := e.summary.clone()
		snap.Summary = &s
	}
	return snap
}
