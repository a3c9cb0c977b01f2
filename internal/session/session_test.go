package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// fakeFeedRepo implements repository.WorkoutRepository with hand-driven
// subscription feeds, one per user.
type fakeFeedRepo struct {
	mu      sync.Mutex
	initial map[string][]domain.Workout
	feeds   map[string]*fakeFeed
	opened  int
}

type fakeFeed struct {
	sub       *repository.Subscription[domain.Workout]
	cancelled bool
}

func newFakeFeedRepo() *fakeFeedRepo {
	return &fakeFeedRepo{
		initial: make(map[string][]domain.Workout),
		feeds:   make(map[string]*fakeFeed),
	}
}

func (f *fakeFeedRepo) Subscribe(_ context.Context, userID string) (*repository.Subscription[domain.Workout], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	feed := &fakeFeed{}
	feed.sub = repository.NewSubscription[domain.Workout](func() {
		f.mu.Lock()
		feed.cancelled = true
		f.mu.Unlock()
		feed.sub.Close()
	})
	feed.sub.Publish(f.initial[userID])
	f.feeds[userID] = feed
	f.opened++
	return feed.sub, nil
}

func (f *fakeFeedRepo) cancelledFor(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	feed, ok := f.feeds[userID]
	return ok && feed.cancelled
}

func (f *fakeFeedRepo) publish(userID string, snapshot []domain.Workout) {
	f.mu.Lock()
	feed := f.feeds[userID]
	f.mu.Unlock()
	feed.sub.Publish(snapshot)
}

func (f *fakeFeedRepo) fail(userID string, err error) {
	f.mu.Lock()
	feed := f.feeds[userID]
	f.mu.Unlock()
	feed.sub.Fail(err)
}

func (f *fakeFeedRepo) GetAll(context.Context, string) ([]domain.Workout, error) {
	return nil, nil
}

func (f *fakeFeedRepo) GetByDate(context.Context, string, string) (*domain.Workout, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeFeedRepo) Upsert(context.Context, string, domain.Workout) error { return nil }

func (f *fakeFeedRepo) Delete(context.Context, string, string) error { return nil }

func (f *fakeFeedRepo) RenameSplit(context.Context, string, string, string) error { return nil }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func entry(date string) domain.Workout {
	return domain.Workout{ID: 1, Date: date, Split: "Pierna"}
}

func TestAttachDeliversInitialSnapshot(t *testing.T) {
	repo := newFakeFeedRepo()
	repo.initial["u1"] = []domain.Workout{entry("2025-06-02"), entry("2025-06-03")}
	m := NewManager(repo, testLogger())
	defer m.Close()

	s, err := m.Attach(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID())
	assert.Len(t, s.Workouts(), 2)
}

func TestFeedReplacesSnapshotWholesale(t *testing.T) {
	repo := newFakeFeedRepo()
	repo.initial["u1"] = []domain.Workout{entry("2025-06-02")}
	m := NewManager(repo, testLogger())
	defer m.Close()

	s, err := m.Attach(context.Background(), "u1")
	require.NoError(t, err)

	repo.publish("u1", []domain.Workout{entry("2025-06-02"), entry("2025-06-03"), entry("2025-06-04")})
	require.Eventually(t, func() bool {
		return len(s.Workouts()) == 3
	}, time.Second, 5*time.Millisecond)

	// A shrinking snapshot fully replaces the previous one too.
	repo.publish("u1", []domain.Workout{entry("2025-06-04")})
	require.Eventually(t, func() bool {
		return len(s.Workouts()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAttachIsIdempotentPerUser(t *testing.T) {
	repo := newFakeFeedRepo()
	m := NewManager(repo, testLogger())
	defer m.Close()

	first, err := m.Attach(context.Background(), "u1")
	require.NoError(t, err)
	second, err := m.Attach(context.Background(), "u1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.opened)
}

func TestDetachCancelsFeedAndClearsState(t *testing.T) {
	repo := newFakeFeedRepo()
	repo.initial["u1"] = []domain.Workout{entry("2025-06-02")}
	m := NewManager(repo, testLogger())

	s, err := m.Attach(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, s.Workouts(), 1)

	m.Detach("u1")

	// State is gone synchronously, before any re-attach.
	assert.True(t, repo.cancelledFor("u1"))
	assert.Empty(t, s.Workouts())

	// Re-attaching opens a fresh feed.
	_, err = m.Attach(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.opened)
	m.Close()
}

func TestSwitchDetachesPreviousIdentityFirst(t *testing.T) {
	repo := newFakeFeedRepo()
	repo.initial["alice"] = []domain.Workout{entry("2025-06-02")}
	repo.initial["bob"] = []domain.Workout{entry("2025-06-03"), entry("2025-06-04")}
	m := NewManager(repo, testLogger())
	defer m.Close()

	prev, err := m.Attach(context.Background(), "alice")
	require.NoError(t, err)

	s, err := m.Switch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.True(t, repo.cancelledFor("alice"))
	assert.Empty(t, prev.Workouts())
	assert.Equal(t, "bob", s.UserID())
	assert.Len(t, s.Workouts(), 2)
}

func TestFeedErrorKeepsLastSnapshot(t *testing.T) {
	repo := newFakeFeedRepo()
	repo.initial["u1"] = []domain.Workout{entry("2025-06-02")}
	m := NewManager(repo, testLogger())
	defer m.Close()

	s, err := m.Attach(context.Background(), "u1")
	require.NoError(t, err)

	repo.fail("u1", repository.ErrUnavailable)
	require.Eventually(t, func() bool {
		return s.Err() != nil
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, s.Err(), repository.ErrUnavailable)
	assert.Len(t, s.Workouts(), 1)
}
