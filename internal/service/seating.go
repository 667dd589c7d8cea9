package service

import (
	"context"
	"sync"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

// SeatingService keeps one planning session per event. Every call names its event
// explicitly; there is no notion of a current event.
type SeatingService struct {
	repo   SeatingRepository
	events EventRepository
	conf   PlannerConfig

	mu       sync.Mutex
	sessions map[string]*session
}

// session is a planner being loaded or ready. done is closed once the load resolved.
type session struct {
	done    chan struct{}
	planner *Planner
	err     error
}

func NewSeatingService(repo SeatingRepository, events EventRepository, conf PlannerConfig) *SeatingService {
	return &SeatingService{
		repo:     repo,
		events:   events,
		conf:     conf,
		sessions: make(map[string]*session),
	}
}

// Session returns the planner of eventID, loading it on first use. Loads of
// different events run concurrently; callers asking for the same event while it
// loads wait for that single load. A failed load is not cached.
func (s *SeatingService) Session(ctx context.Context, eventID string) (*Planner, error) {
	s.mu.Lock()
	sess, ok := s.sessions[eventID]
	if !ok {
		sess = &session{done: make(chan struct{})}
		s.sessions[eventID] = sess
	}
	s.mu.Unlock()

	if !ok {
		sess.planner, sess.err = LoadTables(ctx, eventID, s.repo, s.events, s.conf)
		if sess.err != nil {
			s.mu.Lock()
			if s.sessions[eventID] == sess {
				delete(s.sessions, eventID)
			}
			s.mu.Unlock()
		}
		close(sess.done)
		return sess.planner, sess.err
	}

	select {
	case <-sess.done:
		return sess.planner, sess.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CloseSession drops the in-memory session; the next call loads it again from storage.
func (s *SeatingService) CloseSession(eventID string) {
	s.mu.Lock()
	sess, ok := s.sessions[eventID]
	delete(s.sessions, eventID)
	s.mu.Unlock()

	if !ok {
		return
	}
	<-sess.done
	if sess.planner != nil {
		sess.planner.Close()
	}
}

func (s *SeatingService) Snapshot(ctx context.Context, eventID string) (Snapshot, error) {
	p, err := s.Session(ctx, eventID)
	if err != nil {
		return Snapshot{}, err
	}
	return p.Snapshot(), nil
}

func (s *SeatingService) Reload(ctx context.Context, eventID string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.Reload(ctx)
	})
}

func (s *SeatingService) SelectTable(ctx context.Context, eventID, tableID string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.SelectTable(ctx, tableID)
	})
}

func (s *SeatingService) AddGroup(ctx context.Context, eventID, tableID string, group domain.GuestGroup) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		_, err := p.AddGroup(ctx, tableID, group)
		return err
	})
}

func (s *SeatingService) RemoveGroup(ctx context.Context, eventID, tableID string, groupID uint) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.RemoveGroup(ctx, tableID, groupID)
	})
}

func (s *SeatingService) CancelEdit(ctx context.Context, eventID, tableID string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		p.Cancel(tableID)
		return nil
	})
}

func (s *SeatingService) CommitTable(ctx context.Context, eventID, tableID, explicitName string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		_, err := p.Commit(ctx, tableID, explicitName)
		return err
	})
}

func (s *SeatingService) UpdateTable(ctx context.Context, eventID, tableID string, groups []domain.GuestGroup,
	adults, children, babies int, explicitName string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		_, err := p.UpdateMesaCompleta(ctx, tableID, groups, adults, children, babies, explicitName)
		return err
	})
}

func (s *SeatingService) MoveTable(ctx context.Context, eventID, tableID string, pos domain.Position) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.MoveTable(ctx, tableID, pos)
	})
}

func (s *SeatingService) UpdateDecoration(ctx context.Context, eventID string, d domain.Decoration) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.UpdateGlobalDecoration(ctx, d)
	})
}

func (s *SeatingService) SaveDecoration(ctx context.Context, eventID string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.SaveDecoration(ctx)
	})
}

func (s *SeatingService) SaveDistribution(ctx context.Context, eventID string) (Snapshot, error) {
	return s.do(ctx, eventID, func(p *Planner) error {
		return p.SaveDistribution(ctx)
	})
}

// Subscribe forwards every snapshot of eventID to fn until the returned func is called.
func (s *SeatingService) Subscribe(ctx context.Context, eventID string, fn func(Snapshot)) (func(), error) {
	p, err := s.Session(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return p.Subscribe(fn), nil
}

func (s *SeatingService) do(ctx context.Context, eventID string, op func(p *Planner) error) (Snapshot, error) {
	p, err := s.Session(ctx, eventID)
	if err != nil {
		return Snapshot{}, err
	}
	if err = op(p); err != nil {
		return Snapshot{}, err
	}
	return p.Snapshot(), nil
}
