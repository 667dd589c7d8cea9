package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuestGroup struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NumAdults   int    `json:"num_adults"`
	NumChildren int    `json:"num_children"`
	NumBabies   int    `json:"num_babies"`
	Details     string `json:"details,omitempty"`
}

// TableRow is the persisted occupancy of one layout table, keyed by (event_id, table_id).
type TableRow struct {
	EventID     string `gorm:"primaryKey;size:64"`
	TableID     string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"column:table_name"`
	IsMain      bool   `gorm:"not null;default:false"`
	IsUsed      bool   `gorm:"not null;default:false"`
	NumAdults   int    `gorm:"not null;default:0"`
	NumChildren int    `gorm:"not null;default:0"`
	NumBabies   int    `gorm:"not null;default:0"`
	Descripcion string
	GuestGroups []GuestGroup `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TableRow) TableName() string {
	return "event_tables"
}

type DecorationRow struct {
	EventID     string `gorm:"primaryKey;size:64"`
	Tablecloth  string
	NapkinColor string
	Centerpiece string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DecorationRow) TableName() string {
	return "event_decorations"
}

var tableRowUpdateColumns = []string{
	"table_name", "is_main", "is_used", "num_adults", "num_children", "num_babies",
	"descripcion", "guest_groups", "updated_at",
}

type SeatingDAO struct {
	db *gorm.DB
}

func NewSeatingDAO(db *gorm.DB) *SeatingDAO {
	return &SeatingDAO{
		db: db,
	}
}

func (d *SeatingDAO) ListTables(ctx context.Context, eventID string) ([]TableRow, error) {
	var rows []TableRow

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("table_id").Find(&rows)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return rows, nil
}

func (d *SeatingDAO) UpsertTable(ctx context.Context, row TableRow) error {
	return d.UpsertTables(ctx, []TableRow{row})
}

func (d *SeatingDAO) UpsertTables(ctx context.Context, rows []TableRow) error {
	if len(rows) == 0 {
		return nil
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "table_id"}},
		DoUpdates: clause.AssignmentColumns(tableRowUpdateColumns),
	}).Create(&rows)
	if result.Error != nil {
		return classify(result.Error)
	}

	return nil
}

func (d *SeatingDAO) DeleteTable(ctx context.Context, eventID, tableID string) error {
	result := d.db.WithContext(ctx).
		Where("event_id = ? AND table_id = ?", eventID, tableID).
		Delete(&TableRow{})
	if result.Error != nil {
		return classify(result.Error)
	}

	return nil
}

func (d *SeatingDAO) DeleteAllTables(ctx context.Context, eventID string) error {
	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&TableRow{})
	if result.Error != nil {
		return classify(result.Error)
	}

	return nil
}

// DeleteTablesExcept removes every row of the event whose table id is not in keep.
func (d *SeatingDAO) DeleteTablesExcept(ctx context.Context, eventID string, keep []string) error {
	if len(keep) == 0 {
		return d.DeleteAllTables(ctx, eventID)
	}

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND table_id NOT IN ?", eventID, keep).
		Delete(&TableRow{})
	if result.Error != nil {
		return classify(result.Error)
	}

	return nil
}

func (d *SeatingDAO) FindDecoration(ctx context.Context, eventID string) (DecorationRow, error) {
	var row DecorationRow

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DecorationRow{}, ErrDecorationNotFound
		}

		return DecorationRow{}, classify(result.Error)
	}

	return row, nil
}

func (d *SeatingDAO) UpsertDecoration(ctx context.Context, row DecorationRow) error {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tablecloth", "napkin_color", "centerpiece", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return classify(result.Error)
	}

	return nil
}

// SaveLayout replaces the persisted layout of an event in one transaction: upsert rows,
// drop every other row of the event, then upsert the decoration.
func (d *SeatingDAO) SaveLayout(ctx context.Context, eventID string, rows []TableRow, decoration DecorationRow) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txDAO := NewSeatingDAO(tx)

		if err := txDAO.UpsertTables(ctx, rows); err != nil {
			return err
		}

		keep := make([]string, 0, len(rows))
		for _, row := range rows {
			keep = append(keep, row.TableID)
		}
		if err := txDAO.DeleteTablesExcept(ctx, eventID, keep); err != nil {
			return err
		}

		decoration.EventID = eventID
		return txDAO.UpsertDecoration(ctx, decoration)
	})
}
