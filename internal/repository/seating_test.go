package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dao.InitTables(db))
	return db
}

func TestSeatingRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSeatingRepository(dao.NewSeatingDAO(newTestDB(t)))

	table := domain.Table{
		ID:           "mesa-4",
		IsAssignable: true,
		IsUsed:       true,
		TableName:    "M2",
		NumAdults:    6,
		NumChildren:  2,
		NumBabies:    1,
		Descripcion:  "vegetariano",
		GuestGroups: []domain.GuestGroup{
			{ID: 1, Name: "Gómez", NumAdults: 4, NumChildren: 2, Details: "vegetariano"},
			{ID: 2, Name: "Ruiz", NumAdults: 2, NumBabies: 1},
		},
	}
	require.NoError(t, repo.SaveTable(ctx, "ev-1", table))

	tables, err := repo.ListTables(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	got := tables[0]
	assert.Equal(t, "M2", got.TableName)
	assert.Equal(t, 9, got.Total())
	assert.Equal(t, table.GuestGroups, got.GuestGroups)
	assert.Equal(t, "vegetariano", got.Descripcion)

	require.NoError(t, repo.DeleteTable(ctx, "ev-1", "mesa-4"))
	tables, err = repo.ListTables(ctx, "ev-1")
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestSeatingRepository_BatchAndBulkDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSeatingRepository(dao.NewSeatingDAO(newTestDB(t)))

	used := func(id, name string) domain.Table {
		return domain.Table{
			ID: id, IsAssignable: true, IsUsed: true, TableName: name, NumAdults: 9,
			GuestGroups: []domain.GuestGroup{{ID: 1, Name: "Grupo " + id, NumAdults: 9}},
		}
	}
	ids := func(eventID string) []string {
		tables, err := repo.ListTables(ctx, eventID)
		require.NoError(t, err)
		out := make([]string, 0, len(tables))
		for _, tb := range tables {
			out = append(out, tb.ID)
		}
		return out
	}

	require.NoError(t, repo.SaveTables(ctx, "ev-1", []domain.Table{used("mesa-1", "M1"), used("mesa-2", "M2"), used("mesa-3", "M3")}))
	require.NoError(t, repo.SaveTables(ctx, "ev-2", []domain.Table{used("mesa-1", "M1")}))
	require.NoError(t, repo.SaveTables(ctx, "ev-1", nil))
	assert.Equal(t, []string{"mesa-1", "mesa-2", "mesa-3"}, ids("ev-1"))

	// upsert keeps one row per table
	renamed := used("mesa-2", "Novios")
	require.NoError(t, repo.SaveTables(ctx, "ev-1", []domain.Table{renamed}))
	tables, err := repo.ListTables(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, tables, 3)
	assert.Equal(t, "Novios", tables[1].TableName)

	require.NoError(t, repo.DeleteTablesExcept(ctx, "ev-1", []string{"mesa-2"}))
	assert.Equal(t, []string{"mesa-2"}, ids("ev-1"))

	require.NoError(t, repo.DeleteTablesExcept(ctx, "ev-1", nil))
	assert.Empty(t, ids("ev-1"))

	require.NoError(t, repo.DeleteAllTables(ctx, "ev-2"))
	assert.Empty(t, ids("ev-2"))
}

func TestSeatingRepository_Decoration(t *testing.T) {
	ctx := context.Background()
	repo := NewSeatingRepository(dao.NewSeatingDAO(newTestDB(t)))

	_, found, err := repo.FindDecoration(ctx, "ev-1")
	require.NoError(t, err)
	assert.False(t, found)

	want := domain.Decoration{Tablecloth: "lino", NapkinColor: "azul", Centerpiece: "faroles"}
	require.NoError(t, repo.SaveDecoration(ctx, "ev-1", want))

	got, found, err := repo.FindDecoration(ctx, "ev-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestEventRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(dao.NewEventDAO(newTestDB(t)))

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = repo.Save(ctx, domain.Event{ID: "ev-1", Name: "Cumple 15"})
	require.NoError(t, err)

	event, err := repo.FindByID(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EventActive, event.Estado)
	assert.False(t, event.IsInactive())
}
