package domain

import (
	"sync"
	"time"
)

// Session tracks the protocol state of one connection: which overlay it
// is currently joined to, if any. A connection belongs to at most one
// overlay at a time; joining another overlay leaves the previous one.
type Session struct {
	ID               string
	CurrentOverlayID string
	CreatedAt        time.Time
	LastActiveAt     time.Time
	mu               sync.RWMutex
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

func (s *Session) JoinOverlay(overlayID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentOverlayID = overlayID
	s.LastActiveAt = time.Now()
}

func (s *Session) LeaveOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentOverlayID = ""
	s.LastActiveAt = time.Now()
}

func (s *Session) CurrentOverlay() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CurrentOverlayID
}

func (s *Session) IsJoined() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CurrentOverlayID != ""
}

func (s *Session) UpdateActivity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastActiveAt = time.Now()
}
