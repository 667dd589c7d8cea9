package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Event is owned by the surrounding event management screens; the planner only reads its status.
type Event struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"not null;default:''"`
	Estado    string `gorm:"not null;default:activo"` // "activo" or "inactivo"
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) FindByID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Where("id = ?", id).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, classify(result.Error)
	}

	return event, nil
}

// Upsert is used by seeding and tests; the admin screens write events in production.
func (d *EventDAO) Upsert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "estado", "updated_at"}),
	}).Create(&event)
	if result.Error != nil {
		return Event{}, classify(result.Error)
	}

	return event, nil
}
