package mem

import (
	"sync"
	"time"
)

type ResetTokenStore interface {
	Set(token string, uid string, ttl time.Duration)

	// Consume returns the uid for token if not expired, and removes the
	// token (single-use). Returns "" if missing/expired.
	Consume(token string) string

	Peek(token string) (string, bool)

	// Stop terminates the background eviction of expired tokens.
	Stop()
}

type entry struct {
	uid       string
	expiresAt time.Time
}

// janitorInterval bounds how long an unconsumed expired token can linger.
// forgot-password is unauthenticated, so without eviction the map grows
// with every request.
const janitorInterval = 10 * time.Minute

type ResetTokens struct {
	mu   sync.RWMutex
	data map[string]entry

	stopCh chan struct{}
}

func NewResetTokens() *ResetTokens {
	s := &ResetTokens{
		data:   make(map[string]entry),
		stopCh: make(chan struct{}),
	}

	go s.janitor()

	return s
}

func (s *ResetTokens) Stop() {
	close(s.stopCh)
}

func (s *ResetTokens) Set(token string, uid string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		uid:       uid,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token) // single-use
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.uid
}

func (s *ResetTokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.uid, true
}

func (s *ResetTokens) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *ResetTokens) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	for token, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, token)
		}
	}
	s.mu.Unlock()
}
