package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository/dao"
)

var (
	ErrDecorationNotFound = dao.ErrDecorationNotFound
	ErrStorageUnavailable = dao.ErrStorageUnavailable
)

type SeatingDAO interface {
	ListTables(ctx context.Context, eventID string) ([]dao.TableRow, error)
	UpsertTable(ctx context.Context, row dao.TableRow) error
	UpsertTables(ctx context.Context, rows []dao.TableRow) error
	DeleteTable(ctx context.Context, eventID, tableID string) error
	DeleteAllTables(ctx context.Context, eventID string) error
	DeleteTablesExcept(ctx context.Context, eventID string, keep []string) error
	FindDecoration(ctx context.Context, eventID string) (dao.DecorationRow, error)
	UpsertDecoration(ctx context.Context, row dao.DecorationRow) error
	SaveLayout(ctx context.Context, eventID string, rows []dao.TableRow, decoration dao.DecorationRow) error
}

// SeatingRepository is the persistence gateway of the planner. Persisted tables only
// carry occupancy fields; geometry and decoration come from the layout and the
// event decoration record.
type SeatingRepository struct {
	dao SeatingDAO
}

func NewSeatingRepository(dao SeatingDAO) *SeatingRepository {
	return &SeatingRepository{
		dao: dao,
	}
}

func (r *SeatingRepository) ListTables(ctx context.Context, eventID string) ([]domain.Table, error) {
	rows, err := r.dao.ListTables(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTables -> %w", err)
	}

	tables := make([]domain.Table, len(rows))
	for i, row := range rows {
		tables[i] = r.rowToDomain(row)
	}
	return tables, nil
}

func (r *SeatingRepository) SaveTable(ctx context.Context, eventID string, table domain.Table) error {
	if err := r.dao.UpsertTable(ctx, r.domainToRow(eventID, table)); err != nil {
		return fmt.Errorf("r.dao.UpsertTable -> %w", err)
	}
	return nil
}

func (r *SeatingRepository) SaveTables(ctx context.Context, eventID string, tables []domain.Table) error {
	if err := r.dao.UpsertTables(ctx, r.domainToRows(eventID, tables)); err != nil {
		return fmt.Errorf("r.dao.UpsertTables -> %w", err)
	}
	return nil
}

func (r *SeatingRepository) DeleteTable(ctx context.Context, eventID, tableID string) error {
	if err := r.dao.DeleteTable(ctx, eventID, tableID); err != nil {
		return fmt.Errorf("r.dao.DeleteTable -> %w", err)
	}
	return nil
}

func (r *SeatingRepository) DeleteAllTables(ctx context.Context, eventID string) error {
	if err := r.dao.DeleteAllTables(ctx, eventID); err != nil {
		return fmt.Errorf("r.dao.DeleteAllTables -> %w", err)
	}
	return nil
}

func (r *SeatingRepository) DeleteTablesExcept(ctx context.Context, eventID string, keep []string) error {
	if err := r.dao.DeleteTablesExcept(ctx, eventID, keep); err != nil {
		return fmt.Errorf("r.dao.DeleteTablesExcept -> %w", err)
	}
	return nil
}

// FindDecoration reports false when the event has no decoration record yet.
func (r *SeatingRepository) FindDecoration(ctx context.Context, eventID string) (domain.Decoration, bool, error) {
	row, err := r.dao.FindDecoration(ctx, eventID)
	if err != nil {
		if errors.Is(err, dao.ErrDecorationNotFound) {
			return domain.Decoration{}, false, nil
		}
		return domain.Decoration{}, false, fmt.Errorf("r.dao.FindDecoration -> %w", err)
	}

	return domain.Decoration{
		Tablecloth:  row.Tablecloth,
		NapkinColor: row.NapkinColor,
		Centerpiece: row.Centerpiece,
	}, true, nil
}

func (r *SeatingRepository) SaveDecoration(ctx context.Context, eventID string, d domain.Decoration) error {
	if err := r.dao.UpsertDecoration(ctx, r.decorationToRow(eventID, d)); err != nil {
		return fmt.Errorf("r.dao.UpsertDecoration -> %w", err)
	}
	return nil
}

func (r *SeatingRepository) SaveLayout(ctx context.Context, eventID string, tables []domain.Table, d domain.Decoration) error {
	err := r.dao.SaveLayout(ctx, eventID, r.domainToRows(eventID, tables), r.decorationToRow(eventID, d))
	if err != nil {
		return fmt.Errorf("r.dao.SaveLayout -> %w", err)
	}
	return nil
}

func (r *SeatingRepository) domainToRows(eventID string, tables []domain.Table) []dao.TableRow {
	rows := make([]dao.TableRow, len(tables))
	for i, t := range tables {
		rows[i] = r.domainToRow(eventID, t)
	}
	return rows
}

func (r *SeatingRepository) domainToRow(eventID string, t domain.Table) dao.TableRow {
	groups := make([]dao.GuestGroup, len(t.GuestGroups))
	for i, g := range t.GuestGroups {
		groups[i] = dao.GuestGroup{
			ID:          g.ID,
			Name:        g.Name,
			NumAdults:   g.NumAdults,
			NumChildren: g.NumChildren,
			NumBabies:   g.NumBabies,
			Details:     g.Details,
		}
	}

	return dao.TableRow{
		EventID:     eventID,
		TableID:     t.ID,
		Name:        t.TableName,
		IsMain:      t.IsMain,
		IsUsed:      t.IsUsed,
		NumAdults:   t.NumAdults,
		NumChildren: t.NumChildren,
		NumBabies:   t.NumBabies,
		Descripcion: t.Descripcion,
		GuestGroups: groups,
	}
}

func (r *SeatingRepository) rowToDomain(row dao.TableRow) domain.Table {
	groups := make([]domain.GuestGroup, len(row.GuestGroups))
	for i, g := range row.GuestGroups {
		groups[i] = domain.GuestGroup{
			ID:          g.ID,
			Name:        g.Name,
			NumAdults:   g.NumAdults,
			NumChildren: g.NumChildren,
			NumBabies:   g.NumBabies,
			Details:     g.Details,
		}
	}

	return domain.Table{
		ID:          row.TableID,
		TableName:   row.Name,
		IsMain:      row.IsMain,
		IsUsed:      row.IsUsed,
		NumAdults:   row.NumAdults,
		NumChildren: row.NumChildren,
		NumBabies:   row.NumBabies,
		Descripcion: row.Descripcion,
		GuestGroups: groups,
	}
}

func (r *SeatingRepository) decorationToRow(eventID string, d domain.Decoration) dao.DecorationRow {
	return dao.DecorationRow{
		EventID:     eventID,
		Tablecloth:  d.Tablecloth,
		NapkinColor: d.NapkinColor,
		Centerpiece: d.Centerpiece,
	}
}
