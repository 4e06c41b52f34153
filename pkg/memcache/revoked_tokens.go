package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers token ids that were logged out server-side.
// Entries only need to live until the token would have expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, expiresAt time.Time)

	// IsRevoked reports whether tokenID was revoked and has not expired yet.
	IsRevoked(tokenID string) bool

	// Purge drops expired entries and returns how many were removed.
	Purge() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" || !expiresAt.After(s.now()) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = expiresAt
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[tokenID]
	if !ok {
		return false
	}
	return s.now().Before(expiresAt)
}

func (s *RevokedTokens) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, expiresAt := range s.data {
		if !now.Before(expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
