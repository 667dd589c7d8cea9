package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository"
)

type fakeEventRepo struct {
	mu      sync.Mutex
	events  map[string]domain.Event
	gates   map[string]chan struct{}
	lookups map[string]int
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	r := &fakeEventRepo{
		events:  make(map[string]domain.Event),
		gates:   make(map[string]chan struct{}),
		lookups: make(map[string]int),
	}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) FindByID(_ context.Context, id string) (domain.Event, error) {
	r.mu.Lock()
	r.lookups[id]++
	gate := r.gates[id]
	r.mu.Unlock()

	if gate != nil {
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrEventNotFound)
	}
	return e, nil
}

// hold makes lookups of id wait until the returned func is called.
func (r *fakeEventRepo) hold(id string) func() {
	gate := make(chan struct{})
	r.mu.Lock()
	r.gates[id] = gate
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.gates, id)
		r.mu.Unlock()
		close(gate)
	}
}

func (r *fakeEventRepo) lookupCount(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups[id]
}

func (r *fakeEventRepo) setStatus(id string, status domain.EventStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.events[id]
	e.Estado = status
	r.events[id] = e
}

type fakeSeatingRepo struct {
	mu          sync.Mutex
	tables      map[string]map[string]domain.Table
	decorations map[string]domain.Decoration
	err         error
	writes      int

	// when block is set every write signals entered and waits for block to be closed
	block   chan struct{}
	entered chan struct{}
}

func newFakeSeatingRepo() *fakeSeatingRepo {
	return &fakeSeatingRepo{
		tables:      make(map[string]map[string]domain.Table),
		decorations: make(map[string]domain.Decoration),
	}
}

func (r *fakeSeatingRepo) write() error {
	r.mu.Lock()
	r.writes++
	err, block, entered := r.err, r.block, r.entered
	r.mu.Unlock()

	if block != nil {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-block
	}
	return err
}

func (r *fakeSeatingRepo) failWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *fakeSeatingRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *fakeSeatingRepo) seed(eventID string, t domain.Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tables[eventID] == nil {
		r.tables[eventID] = make(map[string]domain.Table)
	}
	r.tables[eventID][t.ID] = t.Clone()
}

func (r *fakeSeatingRepo) stored(eventID, tableID string) (domain.Table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[eventID][tableID]
	return t, ok
}

func (r *fakeSeatingRepo) storedIDs(eventID string) map[string]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]bool)
	for id := range r.tables[eventID] {
		ids[id] = true
	}
	return ids
}

func (r *fakeSeatingRepo) ListTables(_ context.Context, eventID string) ([]domain.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Table
	for _, t := range r.tables[eventID] {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *fakeSeatingRepo) SaveTable(_ context.Context, eventID string, t domain.Table) error {
	if err := r.write(); err != nil {
		return err
	}
	r.seed(eventID, t)
	return nil
}

func (r *fakeSeatingRepo) DeleteTable(_ context.Context, eventID, tableID string) error {
	if err := r.write(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables[eventID], tableID)
	return nil
}

func (r *fakeSeatingRepo) FindDecoration(_ context.Context, eventID string) (domain.Decoration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.decorations[eventID]
	return d, ok, nil
}

func (r *fakeSeatingRepo) SaveDecoration(_ context.Context, eventID string, d domain.Decoration) error {
	if err := r.write(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decorations[eventID] = d
	return nil
}

func (r *fakeSeatingRepo) SaveLayout(_ context.Context, eventID string, tables []domain.Table, d domain.Decoration) error {
	if err := r.write(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[eventID] = make(map[string]domain.Table)
	for _, t := range tables {
		r.tables[eventID][t.ID] = t.Clone()
	}
	r.decorations[eventID] = d
	return nil
}
