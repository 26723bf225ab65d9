// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"sync"
	"time"
)

// Store maps session tokens to user IDs
type Store interface {
	Get(ctx context.Context, token string) (userID string, ok bool, err error)
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Sessions are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, token string) (string, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[token]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	if !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		// Re-check, a concurrent SignIn may have replaced it
		if cur, ok := m.entries[token]; ok && !m.now().Before(cur.expiresAt) {
			delete(m.entries, token)
		}
		m.mu.Unlock()
		return "", false, nil
	}

	return entry.userID, true, nil
}

func (m *MemoryStore) Set(_ context.Context, token, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = memoryEntry{userID: userID, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
	return nil
}

// Sweep drops expired sessions and returns how many were removed
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, token)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done
func (m *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}
