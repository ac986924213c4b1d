package state

import (
	"sync"

	"cncbot/internal/domain"
)

// Store keeps per-user conversational state (current flow plus bounded
// history). Absent users read as the zero state; nothing is created until
// the first write. State is process-local and lost on restart.
type Store interface {
	// Get returns the user's state, or {FlowNone, nil} if absent
	Get(userID int64) domain.DialogState
	// Set atomically replaces the user's state
	Set(userID int64, s domain.DialogState)
	// AppendTurns adds turns to the current history, evicting the oldest
	// once the sliding-window cap is exceeded
	AppendTurns(userID int64, turns ...domain.Turn)
	// Reset returns the user to {FlowNone, nil}
	Reset(userID int64)
	// Lock serializes message handling for one user; it must be paired
	// with Unlock. Distinct users never block each other on it.
	Lock(userID int64)
	Unlock(userID int64)
}

// Memory is the in-process Store implementation
type Memory struct {
	mux    sync.RWMutex
	states map[int64]domain.DialogState

	userMux sync.Mutex
	locks   map[int64]*sync.Mutex
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		states: make(map[int64]domain.DialogState),
		locks:  make(map[int64]*sync.Mutex),
	}
}

// Get returns the user's current state
func (m *Memory) Get(userID int64) domain.DialogState {
	m.mux.RLock()
	defer m.mux.RUnlock()

	s, ok := m.states[userID]
	if !ok {
		return domain.DialogState{Flow: domain.FlowNone}
	}
	// Copy the history so callers cannot alias the stored slice
	out := domain.DialogState{Flow: s.Flow}
	if len(s.History) > 0 {
		out.History = make([]domain.Turn, len(s.History))
		copy(out.History, s.History)
	}
	return out
}

// Set replaces the user's state wholesale
func (m *Memory) Set(userID int64, s domain.DialogState) {
	m.mux.Lock()
	defer m.mux.Unlock()

	stored := domain.DialogState{Flow: s.Flow}
	if len(s.History) > 0 {
		stored.History = make([]domain.Turn, len(s.History))
		copy(stored.History, s.History)
	}
	m.states[userID] = trim(stored)
}

// AppendTurns amends the current history, enforcing the sliding window
func (m *Memory) AppendTurns(userID int64, turns ...domain.Turn) {
	if len(turns) == 0 {
		return
	}

	m.mux.Lock()
	defer m.mux.Unlock()

	s := m.states[userID]
	if s.Flow == "" {
		s.Flow = domain.FlowNone
	}
	history := make([]domain.Turn, 0, len(s.History)+len(turns))
	history = append(history, s.History...)
	history = append(history, turns...)
	s.History = history
	m.states[userID] = trim(s)
}

// Reset returns the user to the idle state
func (m *Memory) Reset(userID int64) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.states[userID] = domain.DialogState{Flow: domain.FlowNone}
}

// Lock acquires the user's handling mutex. Lock entries are created
// lazily and never removed; the map grows with the user base, same as
// the state map itself.
func (m *Memory) Lock(userID int64) {
	m.userLock(userID).Lock()
}

// Unlock releases the user's handling mutex
func (m *Memory) Unlock(userID int64) {
	m.userLock(userID).Unlock()
}

func (m *Memory) userLock(userID int64) *sync.Mutex {
	m.userMux.Lock()
	defer m.userMux.Unlock()

	l, ok := m.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[userID] = l
	}
	return l
}

func trim(s domain.DialogState) domain.DialogState {
	if len(s.History) > domain.HistoryCap {
		s.History = s.History[len(s.History)-domain.HistoryCap:]
	}
	return s
}
