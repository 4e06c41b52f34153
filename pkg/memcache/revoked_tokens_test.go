package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entries(s *RevokedTokens) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func TestRevokeAndCheck(t *testing.T) {
	s := NewRevokedTokens()
	s.Revoke("abc", time.Now().Add(time.Hour))

	assert.True(t, s.IsRevoked("abc"))
	assert.False(t, s.IsRevoked("other"))
}

func TestRevokeIgnoresExpiredTokens(t *testing.T) {
	s := NewRevokedTokens()
	s.Revoke("old", time.Now().Add(-time.Second))
	s.Revoke("", time.Now().Add(time.Hour))

	assert.Equal(t, 0, entries(s))
}

func TestPurgeDropsExpiredEntries(t *testing.T) {
	s := NewRevokedTokens()
	now := time.Now()
	s.now = func() time.Time { return now }

	s.Revoke("short", now.Add(time.Minute))
	s.Revoke("long", now.Add(time.Hour))

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	assert.False(t, s.IsRevoked("short"))
	assert.True(t, s.IsRevoked("long"))

	assert.Equal(t, 1, s.Purge())
	assert.Equal(t, 1, entries(s))
}

func TestConcurrentAccess(t *testing.T) {
	s := NewRevokedTokens()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Revoke("tok", time.Now().Add(time.Hour))
		}()
		go func() {
			defer wg.Done()
			_ = s.IsRevoked("tok")
			_ = s.Purge()
		}()
	}
	wg.Wait()

	assert.True(t, s.IsRevoked("tok"))
}
