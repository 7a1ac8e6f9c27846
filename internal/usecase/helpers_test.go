package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
)

func testSnapshot() *domain.CatalogSnapshot {
	return &domain.CatalogSnapshot{
		Users: []domain.User{
			{ID: 1, Name: "Roma", Sex: "m"},
			{ID: 2, Name: "Anna", Sex: "f"},
			{ID: 3, Name: "Max", Sex: "m"},
			{ID: 4, Name: "John", Sex: "m"},
		},
		Categories: []domain.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 4, Title: "Electronics", Icon: "💻", OwnerID: 1},
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
		},
		Products: []domain.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Eggs", CategoryID: 1},
			{ID: 4, Name: "Jacket", CategoryID: 5},
			{ID: 5, Name: "Sugar", CategoryID: 1},
			{ID: 6, Name: "Apple", CategoryID: 3},
			{ID: 7, Name: "Beer", CategoryID: 2},
			{ID: 8, Name: "Sweater", CategoryID: 5},
			{ID: 9, Name: "Banana", CategoryID: 3},
		},
	}
}

func productIDs(rows []domain.ViewRow) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Product.ID)
	}
	return ids
}

type fakeSource struct {
	name     string
	snapshot *domain.CatalogSnapshot
	failures int
	calls    int
	err      error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Load(context.Context) (*domain.CatalogSnapshot, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return f.snapshot, nil
}

type fakeCache struct {
	snapshot *domain.CatalogSnapshot
	getErr   error
	setErr   error
	sets     int
}

func (f *fakeCache) Get(context.Context) (*domain.CatalogSnapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.snapshot == nil {
		return nil, e.ErrCacheMiss
	}
	return f.snapshot, nil
}

func (f *fakeCache) Set(_ context.Context, s *domain.CatalogSnapshot) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.snapshot = s
	return nil
}

type fakeSessions struct {
	mu   sync.Mutex
	data map[string]domain.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: make(map[string]domain.Session)}
}

func (f *fakeSessions) Create(_ context.Context, s *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[s.ID] = *s
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.data[id]
	if !ok {
		return nil, e.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessions) Update(_ context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.data[id]
	if !ok {
		return nil, e.ErrSessionNotFound
	}
	if err := fn(&s); err != nil {
		return nil, err
	}
	f.data[id] = s
	return &s, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[id]; !ok {
		return e.ErrSessionNotFound
	}
	delete(f.data, id)
	return nil
}

func (f *fakeSessions) DeleteIdle(_ context.Context, before time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, s := range f.data {
		if s.UpdatedAt.Before(before) {
			delete(f.data, id)
			n++
		}
	}
	return n
}

type fakePublisher struct {
	events []*QueryChangedEvent
	ctxs   []context.Context
	err    error
}

func (f *fakePublisher) PublishQueryChanged(ctx context.Context, ev *QueryChangedEvent) error {
	f.events = append(f.events, ev)
	f.ctxs = append(f.ctxs, ctx)
	return f.err
}

type evaluationKey struct{}

// fakeMetrics помечает контекст вычисления номером вызова.
type fakeMetrics struct {
	evaluations int
	events      []string
}

func (f *fakeMetrics) StartEvaluation(ctx context.Context, _ domain.Query) (context.Context, func(int, int)) {
	return context.WithValue(ctx, evaluationKey{}, f.evaluations+1), func(int, int) { f.evaluations++ }
}

func (f *fakeMetrics) RecordEvent(_ context.Context, eventType string) {
	f.events = append(f.events, eventType)
}
