package repository

import (
	"context"
	"fmt"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
)

type EventDAO interface {
	FindByID(ctx context.Context, id string) (dao.Event, error)
	Upsert(ctx context.Context, event dao.Event) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	event, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(event), nil
}

func (r *EventRepository) Save(ctx context.Context, event domain.Event) (domain.Event, error) {
	saved, err := r.dao.Upsert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:     e.ID,
		Name:   e.Name,
		Estado: domain.EventStatus(e.Estado),
	}
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	estado := string(e.Estado)
	if estado == "" {
		estado = string(domain.EventActive)
	}
	return dao.Event{
		ID:     e.ID,
		Name:   e.Name,
		Estado: estado,
	}
}
