package game

import (
	"sync"
	"time"
)

// stubRandom answers Intn by bound: penalty roll (100), penalty size (5),
// gain (10), update interval (1000); anything else (player pick) returns 0.
type stubRandom struct {
	penalty     bool
	penaltySize int // 1..5
	gain        int // 0..9
}

func (r stubRandom) Intn(n int) int {
	switch n {
	case 100:
		if r.penalty {
			return 0
		}
		return 99
	case MaxPenalty:
		return r.penaltySize - 1
	case MaxGain + 1:
		return r.gain
	default:
		return 0
	}
}

type manualTimer struct {
	s       *manualScheduler
	d       time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

// manualScheduler only fires callbacks when the test asks it to.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// pending returns timers not yet stopped or fired.
func (s *manualScheduler) pending() []*manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*manualTimer
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// fireNext runs the oldest live timer; it reports false when none is left.
func (s *manualScheduler) fireNext() bool {
	p := s.pending()
	if len(p) == 0 {
		return false
	}
	t := p[0]
	s.mu.Lock()
	t.stopped = true
	s.mu.Unlock()
	t.f()
	return true
}

// recordingDisplay counts notifications and keeps the latest payloads.
type recordingDisplay struct {
	mu        sync.Mutex
	players   []Player
	logs      []LogEntry
	current   int
	max       int
	summaries []Summary
	started   int
	resets    int
	progress  int
}

func (d *recordingDisplay) OnPlayersChanged(p []Player) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.players = p
}

func (d *recordingDisplay) OnLogAppended(e []LogEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logs = e
}

func (d *recordingDisplay) OnProgress(current, max int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current, d.max = current, max
	d.progress++
}

func (d *recordingDisplay) OnGameFinished(s Summary) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.summaries = append(d.summaries, s)
}

func (d *recordingDisplay) OnGameReset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resets++
}

func (d *recordingDisplay) OnGameStarted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started++
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}
