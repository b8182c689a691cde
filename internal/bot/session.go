package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by Message when the session id is unknown or
// the session has expired. Handlers should map this to HTTP 404.
var ErrSessionNotFound = errors.New("session not found")

// session pairs a collector with its last-activity timestamp.
// The per-session mutex serializes turns within one conversation; collector
// state is only touched while it is held.
type session struct {
	mu        sync.Mutex
	collector *Collector
	lastSeen  time.Time
}

// SessionManager owns the live conversation sessions for the HTTP chatbot
// endpoint. Sessions are keyed by uuid and expire after an idle TTL; expired
// entries are cleaned up lazily on access. The manager mutex guards only the
// map: a turn's work, including the generator's outbound HTTP call, runs
// under the session's own lock so one slow turn never blocks other sessions.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	factory  func() *Collector
	now      func() time.Time
}

// NewSessionManager returns a manager that builds new collectors via factory
// and expires sessions idle longer than ttl.
func NewSessionManager(ttl time.Duration, factory func() *Collector) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
	}
}

// Open starts a new session and returns its id together with the greeting.
func (m *SessionManager) Open(ctx context.Context) (uuid.UUID, string) {
	c := m.factory()
	greeting := c.Greeting(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()

	id := uuid.New()
	m.sessions[id] = &session{collector: c, lastSeen: m.now()}
	return id, greeting
}

// Message delivers one user turn to the session's collector.
// Returns ErrSessionNotFound for unknown or expired ids. A finished session
// (done == true) is removed so its id cannot be reused.
func (m *SessionManager) Message(ctx context.Context, id uuid.UUID, input string) (reply string, done bool, err error) {
	m.mu.Lock()
	m.sweepLocked()
	sess, ok := m.sessions[id]
	if ok {
		sess.lastSeen = m.now()
	}
	m.mu.Unlock()

	if !ok {
		return "", false, ErrSessionNotFound
	}

	// The turn itself runs outside the manager lock: Handle may wait on the
	// generator's HTTP round trip.
	sess.mu.Lock()
	reply, done = sess.collector.Handle(ctx, input)
	sess.mu.Unlock()

	if done {
		m.Delete(id)
	}
	return reply, done, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (m *SessionManager) Delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of live sessions, after expiring stale ones.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	return len(m.sessions)
}

// sweepLocked drops sessions idle longer than the TTL. Caller holds mu.
func (m *SessionManager) sweepLocked() {
	cutoff := m.now().Add(-m.ttl)
	for id, sess := range m.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
