package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	v1 "github.com/Emmabm/web-lasrocas-sub000/internal/api/handler/v1"
	"github.com/Emmabm/web-lasrocas-sub000/internal/api/handler/v1/response"
	"github.com/Emmabm/web-lasrocas-sub000/internal/config"
	"github.com/Emmabm/web-lasrocas-sub000/internal/db"
	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository/dao"
	"github.com/Emmabm/web-lasrocas-sub000/internal/service"
)

const eventID = "boda-1"

type testServer struct {
	*Server
	floorPlan *v1.FloorPlanHandler
	events    *repository.EventRepository
	rows      *repository.SeatingRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, dao.InitTables(database))

	conf := &config.AppConfig{
		API:      &config.APIConfig{Environment: "test", Port: "0", AllowedCORSDomains: []string{"*"}},
		Gin:      &config.GinConfig{Mode: "test"},
		Database: &config.DatabaseConfig{Driver: config.DriverSQLite},
		Postgres: &config.PostgresConfig{},
		Seating: &config.SeatingConfig{
			SavedFlagTTL: time.Minute,
			DefaultDecoration: config.DecorationDefault{
				Tablecloth: "blanco",
			},
		},
	}

	s := NewServer(conf, database)
	t.Cleanup(func() { s.Seating.CloseSession(eventID) })

	events := repository.NewEventRepository(dao.NewEventDAO(database))
	_, err = events.Save(context.Background(), domain.Event{ID: eventID, Name: "Boda de Ana y Luis"})
	require.NoError(t, err)

	return &testServer{
		Server:    s,
		floorPlan: s.FloorPlan,
		events:    events,
		rows:      repository.NewSeatingRepository(dao.NewSeatingDAO(database)),
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1/events/"+eventID+path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) service.Snapshot {
	t.Helper()

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var snap service.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder, status int) response.Err {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	var e response.Err
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func findTable(t *testing.T, snap service.Snapshot, id string) domain.Table {
	t.Helper()

	for _, tb := range snap.Tables {
		if tb.ID == id {
			return tb
		}
	}
	require.Failf(t, "table not found", "id %s", id)
	return domain.Table{}
}

func group(name string, adults int) map[string]any {
	return map[string]any{"name": name, "num_adults": adults}
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetLayout(t *testing.T) {
	ts := newTestServer(t)

	snap := decodeSnapshot(t, ts.do(t, http.MethodGet, "/layout", nil))
	assert.Equal(t, eventID, snap.EventID)
	assert.Equal(t, service.StateIdle, snap.State)
	assert.Empty(t, snap.Warnings)
	assert.Equal(t, "Principal", findTable(t, snap, "principal").TableName)
	assert.Equal(t, "blanco", findTable(t, snap, "mesa-1").Tablecloth)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/desconocido/layout", nil)
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	decodeErr(t, w, http.StatusNotFound)
}

func TestEditAndCommitTable(t *testing.T) {
	ts := newTestServer(t)

	decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-1/select", nil))

	snap := decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-1/groups", group("Familia Pérez", 6)))
	require.NotNil(t, snap.Editing)
	assert.Equal(t, 6, snap.Editing.Total)
	assert.False(t, snap.Editing.CanSave)
	assert.Contains(t, snap.Editing.SaveError, "mínimo 8")

	snap = decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-1/groups", group("Amigos", 2)))
	assert.Equal(t, 8, snap.Editing.Total)
	assert.True(t, snap.Editing.CanSave)

	e := decodeErr(t, ts.do(t, http.MethodPost, "/tables/mesa-1/groups", group("Primos", 4)), http.StatusBadRequest)
	assert.Equal(t, string(domain.ReasonTooMany), e.Reason)

	decodeErr(t, ts.do(t, http.MethodPost, "/tables/mesa-1/groups", group("", 1)), http.StatusBadRequest)

	snap = decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-1/commit", nil))
	assert.Nil(t, snap.Editing)
	table := findTable(t, snap, "mesa-1")
	assert.True(t, table.IsUsed)
	assert.Equal(t, "M1", table.TableName)
	assert.Equal(t, 8, table.NumAdults)

	stored, err := ts.rows.ListTables(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "M1", stored[0].TableName)
}

func TestRemoveGroupAndCancel(t *testing.T) {
	ts := newTestServer(t)

	decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-2/select", nil))
	snap := decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-2/groups", group("Vecinos", 3)))
	groupID := snap.Editing.Groups[0].ID

	decodeErr(t, ts.do(t, http.MethodDelete, "/tables/mesa-2/groups/abc", nil), http.StatusBadRequest)
	e := decodeErr(t, ts.do(t, http.MethodDelete, "/tables/mesa-2/groups/99", nil), http.StatusBadRequest)
	assert.Equal(t, string(domain.ReasonUnknownGroup), e.Reason)

	snap = decodeSnapshot(t, ts.do(t, http.MethodDelete, "/tables/mesa-2/groups/"+strconv.FormatUint(uint64(groupID), 10), nil))
	assert.Empty(t, snap.Editing.Groups)

	snap = decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-2/cancel", nil))
	assert.Nil(t, snap.Editing)
	assert.Equal(t, service.StateIdle, snap.State)
}

func TestUpdateTable(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"num_adults":   7,
		"num_children": 2,
		"guest_groups": []map[string]any{
			{"name": "Familia Gómez", "num_adults": 4, "num_children": 2, "details": "silla alta"},
			group("Compañeros", 3),
		},
	}
	snap := decodeSnapshot(t, ts.do(t, http.MethodPut, "/tables/mesa-3", body))
	table := findTable(t, snap, "mesa-3")
	assert.Equal(t, "M1", table.TableName)
	assert.Equal(t, "silla alta", table.Descripcion)

	body["num_adults"] = 8
	e := decodeErr(t, ts.do(t, http.MethodPut, "/tables/mesa-4", body), http.StatusBadRequest)
	assert.Equal(t, string(domain.ReasonCountMismatch), e.Reason)

	big := map[string]any{
		"num_adults":   12,
		"guest_groups": []map[string]any{group("Club", 12)},
	}
	e = decodeErr(t, ts.do(t, http.MethodPut, "/tables/mesa-4", big), http.StatusBadRequest)
	assert.Equal(t, string(domain.ReasonTooMany), e.Reason)

	// the main table accepts up to 15
	big["num_adults"], big["guest_groups"] = 12, []map[string]any{group("Club", 12)}
	snap = decodeSnapshot(t, ts.do(t, http.MethodPut, "/tables/principal", big))
	assert.Equal(t, "Principal", findTable(t, snap, "principal").TableName)

	named := map[string]any{
		"table_name":   "m1",
		"num_adults":   9,
		"guest_groups": []map[string]any{group("Banda", 9)},
	}
	e = decodeErr(t, ts.do(t, http.MethodPut, "/tables/mesa-5", named), http.StatusBadRequest)
	assert.Equal(t, string(domain.ReasonDuplicateName), e.Reason)
}

func TestMoveTable(t *testing.T) {
	ts := newTestServer(t)

	snap := decodeSnapshot(t, ts.do(t, http.MethodPatch, "/tables/mesa-1/position", map[string]any{"x": 120.5, "y": 40}))
	assert.Equal(t, domain.Position{X: 120.5, Y: 40}, findTable(t, snap, "mesa-1").Position)

	decodeErr(t, ts.do(t, http.MethodPatch, "/tables/mesa-1/position", map[string]any{"x": 10}), http.StatusBadRequest)
}

func TestDecoration(t *testing.T) {
	ts := newTestServer(t)

	deco := map[string]any{"tablecloth": "marfil", "napkin_color": "verde", "centerpiece": "velas"}
	snap := decodeSnapshot(t, ts.do(t, http.MethodPut, "/decoration", deco))
	assert.Equal(t, "verde", snap.Decoration.NapkinColor)
	assert.Equal(t, "velas", findTable(t, snap, "mesa-10").Centerpiece)
	assert.Empty(t, findTable(t, snap, "pista").Centerpiece)

	decodeSnapshot(t, ts.do(t, http.MethodPost, "/decoration/save", nil))

	stored, found, err := ts.rows.FindDecoration(context.Background(), eventID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "marfil", stored.Tablecloth)
}

func TestSaveLayout(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"num_adults":   10,
		"guest_groups": []map[string]any{group("Familia Ruiz", 10)},
	}
	decodeSnapshot(t, ts.do(t, http.MethodPut, "/tables/mesa-6", body))

	snap := decodeSnapshot(t, ts.do(t, http.MethodPost, "/layout/save", nil))
	assert.True(t, snap.Saved)
	assert.False(t, snap.SaveBlocked)

	snap = decodeSnapshot(t, ts.do(t, http.MethodPost, "/layout/reload", nil))
	assert.Equal(t, "M1", findTable(t, snap, "mesa-6").TableName)
}

func TestInactiveEventIsBlocked(t *testing.T) {
	ts := newTestServer(t)
	decodeSnapshot(t, ts.do(t, http.MethodGet, "/layout", nil))

	_, err := ts.events.Save(context.Background(), domain.Event{ID: eventID, Estado: domain.EventInactive})
	require.NoError(t, err)

	e := decodeErr(t, ts.do(t, http.MethodPost, "/tables/mesa-1/select", nil), http.StatusConflict)
	assert.Equal(t, "event_inactive", e.Reason)
	assert.Contains(t, e.ErrorText, "inactivo")

	decodeErr(t, ts.do(t, http.MethodPut, "/decoration", map[string]any{"tablecloth": "negro"}), http.StatusConflict)
}

func TestFloorPlanFeed(t *testing.T) {
	ts := newTestServer(t)

	srv := httptest.NewServer(ts.Router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/events/" + eventID + "/floorplan/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	read := func() service.Snapshot {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		var snap service.Snapshot
		require.NoError(t, conn.ReadJSON(&snap))
		return snap
	}

	initial := read()
	assert.Equal(t, eventID, initial.EventID)
	assert.Nil(t, initial.Editing)
	assert.Equal(t, 1, ts.floorPlan.ConnectedClients(eventID))

	decodeSnapshot(t, ts.do(t, http.MethodPost, "/tables/mesa-7/select", nil))

	pushed := read()
	require.NotNil(t, pushed.Editing)
	assert.Equal(t, "mesa-7", pushed.Editing.TableID)

	_, resp, err = websocket.DefaultDialer.Dial(strings.Replace(wsURL, eventID, "desconocido", 1), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, ts.floorPlan.ConnectedClients("desconocido"))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool {
		return ts.floorPlan.ConnectedClients(eventID) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestOpenSQLite(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.True(t, database.Migrator().HasTable(&dao.TableRow{}))
	assert.True(t, database.Migrator().HasTable(&dao.DecorationRow{}))
}

func TestPlannerConfig(t *testing.T) {
	conf := PlannerConfig(&config.SeatingConfig{
		SavedFlagTTL:      5 * time.Second,
		DefaultDecoration: config.DecorationDefault{NapkinColor: "rojo"},
	})
	assert.Equal(t, 5*time.Second, conf.SavedFlagTTL)
	assert.Equal(t, "rojo", conf.DefaultDecoration.NapkinColor)

	assert.Zero(t, PlannerConfig(nil).SavedFlagTTL)
}
