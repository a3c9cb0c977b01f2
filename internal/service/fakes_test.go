package service

import (
	"context"
	"sync"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"
)

// fakeWorkoutRepo is an in-memory WorkoutRepository keyed by date; tests run
// against a single user so the userID is ignored for storage.
type fakeWorkoutRepo struct {
	mu      sync.Mutex
	byDate  map[string]domain.Workout
	upserts int
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{byDate: make(map[string]domain.Workout)}
}

func (f *fakeWorkoutRepo) GetAll(_ context.Context, _ string) ([]domain.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Workout, 0, len(f.byDate))
	for _, w := range f.byDate {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkoutRepo) GetByDate(_ context.Context, _, date string) (*domain.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.byDate[date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (f *fakeWorkoutRepo) Upsert(_ context.Context, _ string, w domain.Workout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byDate[w.Date] = w
	f.upserts++
	return nil
}

func (f *fakeWorkoutRepo) Delete(_ context.Context, _, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byDate[date]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byDate, date)
	return nil
}

func (f *fakeWorkoutRepo) RenameSplit(_ context.Context, _, oldName, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for date, w := range f.byDate {
		if w.Split == oldName {
			w.Split = newName
			f.byDate[date] = w
		}
	}
	return nil
}

func (f *fakeWorkoutRepo) Subscribe(_ context.Context, userID string) (*repository.Subscription[domain.Workout], error) {
	sub := repository.NewSubscription[domain.Workout](func() {})
	snapshot, _ := f.GetAll(context.Background(), userID)
	sub.Publish(snapshot)
	return sub, nil
}

// fakeSplitRepo is an in-memory SplitConfigRepository mirroring the
// merge-vs-replace semantics of the mongo implementation.
type fakeSplitRepo struct {
	cfg      domain.SplitConfig
	saves    int
	replaces int
}

func (f *fakeSplitRepo) Get(context.Context, string) (domain.SplitConfig, error) {
	return f.cfg.Clone(), nil
}

func (f *fakeSplitRepo) Save(_ context.Context, _ string, cfg domain.SplitConfig) error {
	if f.cfg.IsEmpty() {
		f.cfg = domain.SplitConfig{
			Splits:  map[string][]string{},
			Colors:  map[string]string{},
			Muscles: map[string][]string{},
		}
	}
	for name, exercises := range cfg.Splits {
		f.cfg.Splits[name] = exercises
	}
	for name, color := range cfg.Colors {
		f.cfg.Colors[name] = color
	}
	for name, muscles := range cfg.Muscles {
		f.cfg.Muscles[name] = muscles
	}
	f.saves++
	return nil
}

func (f *fakeSplitRepo) Replace(_ context.Context, _ string, cfg domain.SplitConfig) error {
	f.cfg = cfg.Clone()
	f.replaces++
	return nil
}

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	profile *domain.UserProfile
}

func (f *fakeProfileRepo) Get(context.Context, string) (*domain.UserProfile, error) {
	if f.profile == nil {
		return nil, repository.ErrNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, _ string, profile domain.UserProfile) error {
	f.profile = &profile
	return nil
}

// fakeMeasurementRepo is an in-memory MeasurementRepository keyed by date.
type fakeMeasurementRepo struct {
	byDate map[string]domain.BodyMeasurement
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{byDate: make(map[string]domain.BodyMeasurement)}
}

func (f *fakeMeasurementRepo) GetAll(context.Context, string) ([]domain.BodyMeasurement, error) {
	out := make([]domain.BodyMeasurement, 0, len(f.byDate))
	for _, m := range f.byDate {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMeasurementRepo) Upsert(_ context.Context, _ string, m domain.BodyMeasurement) error {
	f.byDate[m.Date] = m
	return nil
}

func (f *fakeMeasurementRepo) Delete(_ context.Context, _, date string) error {
	if _, ok := f.byDate[date]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byDate, date)
	return nil
}

func (f *fakeMeasurementRepo) Subscribe(context.Context, string) (*repository.Subscription[domain.BodyMeasurement], error) {
	sub := repository.NewSubscription[domain.BodyMeasurement](func() {})
	sub.Publish(nil)
	return sub, nil
}

// fakeNoteRepo is an in-memory NoteRepository keyed by the date_id composite.
type fakeNoteRepo struct {
	byKey map[string]domain.QuickNote
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byKey: make(map[string]domain.QuickNote)}
}

func (f *fakeNoteRepo) GetAll(context.Context, string) ([]domain.QuickNote, error) {
	out := make([]domain.QuickNote, 0, len(f.byKey))
	for _, n := range f.byKey {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNoteRepo) Upsert(_ context.Context, _ string, note domain.QuickNote) error {
	f.byKey[note.Key()] = note
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, _, date string, id int64) error {
	key := domain.QuickNote{ID: id, Date: date}.Key()
	if _, ok := f.byKey[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byKey, key)
	return nil
}
