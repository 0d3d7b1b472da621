package server

import (
	"context"
	"sync"
	"time"

	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/logging"
)

// sessionInfo tracks session metadata for cleanup
type sessionInfo struct {
	lastAccess time.Time
}

// SessionTracker counts the MCP sessions behind the HTTP transport.
// The streamable transport assigns each client a session ID header; the
// tracker keeps a last-access timestamp per ID, feeds the active_sessions
// gauge, and expires sessions that go idle past the timeout.
type SessionTracker struct {
	sessions       map[string]*sessionInfo // Maps session ID to session info
	mu             sync.RWMutex
	cleanupTicker  *time.Ticker
	cleanupDone    chan bool
	stopOnce       sync.Once
	sessionTimeout time.Duration
	logger         logging.Logger
	metrics        *instrumentation.Metrics
}

// NewSessionTracker creates a new session tracker with default timeout and logger
func NewSessionTracker() *SessionTracker {
	return NewSessionTrackerWithLogger(24*time.Hour, logging.DefaultLogger())
}

// NewSessionTrackerWithTimeout creates a new session tracker with custom timeout
func NewSessionTrackerWithTimeout(timeout time.Duration) *SessionTracker {
	return NewSessionTrackerWithLogger(timeout, logging.DefaultLogger())
}

// NewSessionTrackerWithLogger creates a new session tracker with custom timeout and logger
func NewSessionTrackerWithLogger(timeout time.Duration, logger logging.Logger) *SessionTracker {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	t := &SessionTracker{
		sessions:       make(map[string]*sessionInfo),
		cleanupTicker:  time.NewTicker(10 * time.Minute),
		cleanupDone:    make(chan bool),
		sessionTimeout: timeout,
		logger:         logger,
	}

	// Start cleanup goroutine
	go t.cleanupExpiredSessions()

	return t
}

// SetMetrics wires the active_sessions gauge. Safe to leave unset.
func (t *SessionTracker) SetMetrics(m *instrumentation.Metrics) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.metrics = m
}

// Touch records activity for a session, registering it on first sight.
// Empty session IDs are ignored (requests before transport initialization).
func (t *SessionTracker) Touch(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	t.mu.Lock()
	if info, ok := t.sessions[sessionID]; ok {
		info.lastAccess = time.Now()
		t.mu.Unlock()
		return
	}
	t.sessions[sessionID] = &sessionInfo{lastAccess: time.Now()}
	m := t.metrics
	t.mu.Unlock()

	if m != nil {
		m.IncrementActiveSessions(ctx)
	}
	t.logger.Debug("session registered", "session_id", sessionID)
}

// Remove drops a session from the tracker
func (t *SessionTracker) Remove(ctx context.Context, sessionID string) {
	t.mu.Lock()
	_, ok := t.sessions[sessionID]
	if ok {
		delete(t.sessions, sessionID)
	}
	m := t.metrics
	t.mu.Unlock()

	if ok && m != nil {
		m.DecrementActiveSessions(ctx)
	}
}

// Count returns the number of tracked sessions
func (t *SessionTracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}

// ListSessions returns all active session IDs
func (t *SessionTracker) ListSessions() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	sessions := make([]string, 0, len(t.sessions))
	for sessionID := range t.sessions {
		sessions = append(sessions, sessionID)
	}
	return sessions
}

// cleanupExpiredSessions periodically removes expired sessions
func (t *SessionTracker) cleanupExpiredSessions() {
	for {
		select {
		case <-t.cleanupTicker.C:
			t.mu.Lock()
			now := time.Now()
			expiredCount := 0
			for sessionID, info := range t.sessions {
				if now.Sub(info.lastAccess) > t.sessionTimeout {
					delete(t.sessions, sessionID)
					expiredCount++
				}
			}
			m := t.metrics
			t.mu.Unlock()
			if expiredCount > 0 {
				if m != nil {
					for i := 0; i < expiredCount; i++ {
						m.DecrementActiveSessions(context.Background())
					}
				}
				t.logger.Info("Cleaned up expired sessions", "count", expiredCount)
			}
		case <-t.cleanupDone:
			return
		}
	}
}

// Stop stops the session cleanup goroutine. Safe to call more than once.
func (t *SessionTracker) Stop() {
	t.stopOnce.Do(func() {
		if t.cleanupTicker != nil {
			t.cleanupTicker.Stop()
		}
		if t.cleanupDone != nil {
			close(t.cleanupDone)
		}
	})
}
