// Package otp keeps short-lived one-time codes in memory.
package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"sync"
	"time"
)

const digits = 6

type entry struct {
	code      string
	expiresAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Generate creates a fresh code for key, replacing any previous one.
func (s *Store) Generate(key string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	code := fmt.Sprintf("%0*d", digits, n.Int64())

	s.mu.Lock()
	s.entries[key] = entry{code: code, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return code, nil
}

// Consume reports whether code matches the live code for key. A matching
// code is removed so it cannot be used twice.
func (s *Store) Consume(key, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(e.code), []byte(code)) != 1 {
		return false
	}
	delete(s.entries, key)
	return true
}

func (s *Store) Drop(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Run sweeps expired codes every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
