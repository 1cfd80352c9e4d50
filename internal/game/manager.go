package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotHost         = errors.New("not host")
)

// DisplayFactory builds the display a new session's engine reports to.
type DisplayFactory func(code string) Display

type SessionCtx struct {
	Code      string
	CreatedAt time.Time
	HostToken string

	Engine *Engine
}

type RoomManager struct {
	mu         sync.RWMutex
	sessions   map[string]*SessionCtx
	active     string // most recently created session
	single     bool
	newDisplay DisplayFactory
	newRandom  func() Random
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		sessions:  make(map[string]*SessionCtx),
		newRandom: func() Random { return NewRand(0) },
	}
}

func (rm *RoomManager) SetDisplayFactory(f DisplayFactory) { rm.newDisplay = f }

// SetSeed makes every new session draw from rand seeded with seed. Zero
// restores fresh per-session seeds.
func (rm *RoomManager) SetSeed(seed int64) {
	rm.newRandom = func() Random { return NewRand(seed) }
}

// SetSingleSession drops every other session (resetting its engine) when a
// new one is created.
func (rm *RoomManager) SetSingleSession(single bool) { rm.single = single }

func (rm *RoomManager) CreateSession() (code string, hostToken string, err error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code = randomCode(5)
	for rm.sessions[code] != nil {
		code = randomCode(5)
	}
	hostToken = uuid.NewString()

	var display Display = NopDisplay{}
	if rm.newDisplay != nil {
		display = rm.newDisplay(code)
	}
	logger := log.With().Str("session", code).Logger()
	s := &SessionCtx{
		Code:      code,
		CreatedAt: time.Now().UTC(),
		HostToken: hostToken,
		Engine: NewEngine(DefaultPlayers(), Deps{
			Random:  rm.newRandom(),
			Display: display,
			Logger:  &logger,
		}),
	}

	if rm.single {
		for c, old := range rm.sessions {
			old.Engine.Reset()
			delete(rm.sessions, c)
		}
	}
	rm.sessions[code] = s
	rm.active = code
	return code, hostToken, nil
}

func (rm *RoomManager) Get(code string) (*SessionCtx, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	s := rm.sessions[code]
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (rm *RoomManager) Active() (string, *SessionCtx) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	if rm.active == "" {
		return "", nil
	}
	return rm.active, rm.sessions[rm.active]
}

// Start begins a game on the session if hostToken matches.
func (s *SessionCtx) Start(hostToken string) (bool, error) {
	if hostToken != s.HostToken {
		return false, ErrNotHost
	}
	return s.Engine.Start(), nil
}

func (s *SessionCtx) Reset(hostToken string) error {
	if hostToken != s.HostToken {
		return ErrNotHost
	}
	s.Engine.Reset()
	return nil
}

func randomCode(n int) string {
	letters := []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
