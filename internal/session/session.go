// Package session keeps a live, in-memory snapshot of each signed-in user's
// workout log, fed by the repository's subscription feed. Statistics are
// always computed from these snapshots, so every reader sees the same
// complete list the store last published.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotReady is returned when the initial snapshot did not arrive in time.
var ErrNotReady = errors.New("session: initial snapshot not received")

// attachTimeout bounds the wait for the first snapshot after attaching.
const attachTimeout = 15 * time.Second

// Session is one user's live view of their workout log. The workouts slice
// is replaced wholesale on every feed event and never mutated in place, so
// the value returned by Workouts is safe to read after the next update.
type Session struct {
	id     string
	userID string
	sub    *repository.Subscription[domain.Workout]
	log    *logrus.Entry

	mu       sync.RWMutex
	workouts []domain.Workout
	lastErr  error

	ready     chan struct{}
	readyOnce sync.Once
	done      chan struct{}
}

// Workouts returns the latest complete snapshot.
func (s *Session) Workouts() []domain.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workouts
}

// Err returns the most recent feed error, if any. A feed error does not
// invalidate the last snapshot; it marks it as possibly stale.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// UserID returns the identity this session is bound to.
func (s *Session) UserID() string {
	return s.userID
}

func (s *Session) consume() {
	defer close(s.done)
	for {
		select {
		case snapshot, ok := <-s.sub.Snapshots():
			if !ok {
				return
			}
			s.mu.Lock()
			s.workouts = snapshot
			s.lastErr = nil
			s.mu.Unlock()
			s.readyOnce.Do(func() { close(s.ready) })
			s.log.WithField("workouts", len(snapshot)).Debug("snapshot applied")
		case err, ok := <-s.sub.Errs():
			if !ok {
				return
			}
			s.mu.Lock()
			s.lastErr = err
			s.mu.Unlock()
			s.log.WithError(err).Warn("workout feed error")
		}
	}
}

// detach cancels the feed and clears the cached snapshot before returning,
// so no stale data survives past the detach.
func (s *Session) detach() {
	s.sub.Cancel()
	<-s.done
	s.mu.Lock()
	s.workouts = nil
	s.lastErr = nil
	s.mu.Unlock()
	s.log.Info("session detached")
}

// Manager owns at most one live session per user identity.
type Manager struct {
	workouts repository.WorkoutRepository
	log      *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the workout repository.
func NewManager(workouts repository.WorkoutRepository, log *logrus.Logger) *Manager {
	return &Manager{
		workouts: workouts,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Attach returns the user's live session, opening the subscription on first
// use and blocking until the initial snapshot has been applied.
func (m *Manager) Attach(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}

	sub, err := m.workouts.Subscribe(ctx, userID)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}

	s := &Session{
		id:     uuid.NewString(),
		userID: userID,
		sub:    sub,
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
	s.log = m.log.WithFields(logrus.Fields{"sessionId": s.id, "userId": userID})
	m.sessions[userID] = s
	m.mu.Unlock()

	go s.consume()

	select {
	case <-s.ready:
		return s, nil
	case <-s.done:
		m.Detach(userID)
		return nil, ErrNotReady
	case <-time.After(attachTimeout):
		m.Detach(userID)
		return nil, ErrNotReady
	case <-ctx.Done():
		m.Detach(userID)
		return nil, ctx.Err()
	}
}

// Detach cancels the user's subscription and clears the cached snapshot.
// It returns only after the session state has been reset, so a following
// Attach never observes leftovers from the previous identity.
func (m *Manager) Detach(userID string) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if ok {
		s.detach()
	}
}

// Switch moves the active identity: the previous user's session is detached
// and fully cleared before the new user's session attaches.
func (m *Manager) Switch(ctx context.Context, fromUserID, toUserID string) (*Session, error) {
	if fromUserID != "" && fromUserID != toUserID {
		m.Detach(fromUserID)
	}
	return m.Attach(ctx, toUserID)
}

// Close detaches every live session, for shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.detach()
	}
}
