package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
	active   int
}

// Manager is the per-token session registry. Every (tenant, token) pair owns
// an independent Store; idle sessions are evicted and their in-memory
// database closed, which is the only teardown this system has.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*sessionEntry
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
		stop:     make(chan struct{}),
	}
}

// IssueToken mints a fresh session token.
func (m *Manager) IssueToken() string {
	return uuid.NewString()
}

func sessionKey(tenant, token string) string {
	return tenant + ":" + token
}

// Get returns the session store for (tenant, token), creating a fresh seeded
// store on first touch. The session counts as in-flight until the matching
// Release, which keeps Sweep from closing a store a request still holds.
func (m *Manager) Get(tenant, token string) (*Store, error) {
	key := sessionKey(tenant, token)

	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.sessions[key]; ok {
		entry.lastSeen = time.Now()
		entry.active++
		return entry.store, nil
	}

	st, err := New(tenant)
	if err != nil {
		return nil, err
	}
	m.sessions[key] = &sessionEntry{store: st, lastSeen: time.Now(), active: 1}
	return st, nil
}

// Release marks the end of one in-flight use and refreshes the idle clock,
// so a long request cannot be evicted the moment it finishes.
func (m *Manager) Release(tenant, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionKey(tenant, token)]
	if !ok {
		return
	}
	if entry.active > 0 {
		entry.active--
	}
	entry.lastSeen = time.Now()
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle past the TTL. Sessions with an in-flight
// request are skipped and picked up on a later pass.
func (m *Manager) Sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.sessions {
		if entry.active > 0 || now.Sub(entry.lastSeen) < m.ttl {
			continue
		}
		if err := entry.store.Close(); err != nil {
			log.Println("close idle session:", err)
		}
		delete(m.sessions, key)
	}
}

// StartSweeper runs Sweep on the given interval until Stop is called.
func (m *Manager) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				m.Sweep(now)
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop halts the sweeper and closes every live session.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, entry := range m.sessions {
		if err := entry.store.Close(); err != nil {
			log.Println("close session:", err)
		}
		delete(m.sessions, key)
	}
}
