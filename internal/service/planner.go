package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository"
	"github.com/Emmabm/web-lasrocas-sub000/internal/seating"
)

type State string

const (
	StateIdle    State = "idle"
	StateEditing State = "editing"
	StateSaving  State = "saving"
	StateBlocked State = "blocked"
)

const defaultSavedFlagTTL = 3 * time.Second

type SeatingRepository interface {
	ListTables(ctx context.Context, eventID string) ([]domain.Table, error)
	SaveTable(ctx context.Context, eventID string, table domain.Table) error
	DeleteTable(ctx context.Context, eventID, tableID string) error
	FindDecoration(ctx context.Context, eventID string) (domain.Decoration, bool, error)
	SaveDecoration(ctx context.Context, eventID string, d domain.Decoration) error
	SaveLayout(ctx context.Context, eventID string, tables []domain.Table, d domain.Decoration) error
}

type EventRepository interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
}

type PlannerConfig struct {
	SavedFlagTTL      time.Duration
	DefaultDecoration domain.Decoration
	// Layout builds the table template of a new session. Defaults to seating.DefaultLayout.
	Layout func() []domain.Table
}

func (c PlannerConfig) withDefaults() PlannerConfig {
	if c.SavedFlagTTL <= 0 {
		c.SavedFlagTTL = defaultSavedFlagTTL
	}
	if c.Layout == nil {
		c.Layout = seating.DefaultLayout
	}
	return c
}

type editor struct {
	tableID string
	groups  []domain.GuestGroup
}

type EditorView struct {
	TableID   string                `json:"table_id"`
	Groups    []domain.GuestGroup   `json:"groups"`
	Total     int                   `json:"total"`
	Range     seating.CapacityRange `json:"range"`
	CanSave   bool                  `json:"can_save"`
	SaveError string                `json:"save_error,omitempty"`
}

// Snapshot is what the floor-plan renderer consumes.
type Snapshot struct {
	EventID     string            `json:"event_id"`
	State       State             `json:"state"`
	Tables      []domain.Table    `json:"tables"`
	Warnings    []string          `json:"warnings"`
	SaveBlocked bool              `json:"save_blocked"`
	Saved       bool              `json:"saved"`
	Decoration  domain.Decoration `json:"decoration"`
	Editing     *EditorView       `json:"editing,omitempty"`
}

// Planner is the planning session of one event. It owns the table registry and
// only commits a change to it after the gateway confirmed the write.
type Planner struct {
	eventID string
	repo    SeatingRepository
	events  EventRepository
	conf    PlannerConfig

	mu         sync.Mutex
	registry   *seating.Registry
	decoration domain.Decoration
	state      State
	editing    *editor
	saved      bool
	savedTimer *time.Timer

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]func(Snapshot)
}

// LoadTables opens a planning session for eventID. A missing event yields a
// NotFoundError and no session.
func LoadTables(ctx context.Context, eventID string, repo SeatingRepository, events EventRepository, conf PlannerConfig) (*Planner, error) {
	conf = conf.withDefaults()
	p := &Planner{
		eventID:     eventID,
		repo:        repo,
		events:      events,
		conf:        conf,
		decoration:  conf.DefaultDecoration,
		state:       StateIdle,
		subscribers: make(map[int]func(Snapshot)),
	}

	if err := p.hydrate(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Planner) EventID() string {
	return p.eventID
}

// hydrate rebuilds the registry from the layout template and the persisted rows.
// Caller holds p.mu or owns p exclusively.
func (p *Planner) hydrate(ctx context.Context) error {
	event, err := p.events.FindByID(ctx, p.eventID)
	if err != nil {
		return p.lookupErr(err)
	}

	registry, err := seating.NewRegistry(p.conf.Layout())
	if err != nil {
		return fmt.Errorf("seating.NewRegistry -> %w", err)
	}

	rows, err := p.repo.ListTables(ctx, p.eventID)
	if err != nil {
		return &domain.PersistenceError{Op: "load tables", Err: err}
	}
	for _, row := range rows {
		if !registry.Overlay(row) {
			zap.L().Warn("ignoring persisted row outside the layout",
				zap.String("event_id", p.eventID), zap.String("table_id", row.ID))
		}
	}

	decoration, found, err := p.repo.FindDecoration(ctx, p.eventID)
	if err != nil {
		return &domain.PersistenceError{Op: "load decoration", Err: err}
	}
	if !found {
		decoration = p.decoration
	}
	registry.ApplyDecoration(decoration)

	p.registry = registry
	p.decoration = decoration
	p.editing = nil
	p.state = StateIdle
	if event.IsInactive() {
		p.state = StateBlocked
	}

	zap.L().Info("seating layout loaded",
		zap.String("event_id", p.eventID), zap.Int("persisted_rows", len(rows)), zap.String("state", string(p.state)))
	return nil
}

func (p *Planner) lookupErr(err error) error {
	if errors.Is(err, repository.ErrEventNotFound) {
		return &domain.NotFoundError{Entity: "event", Key: p.eventID}
	}
	return &domain.PersistenceError{Op: "load event", Err: err}
}

// guard runs before every mutating operation: inactive events short-circuit with
// a BlockedError, and nothing mutates while a write is in flight. Caller holds p.mu.
func (p *Planner) guard(ctx context.Context) error {
	event, err := p.events.FindByID(ctx, p.eventID)
	if err != nil {
		return p.lookupErr(err)
	}
	if event.IsInactive() {
		if p.state != StateSaving {
			p.state = StateBlocked
			p.editing = nil
		}
		return &domain.BlockedError{EventID: p.eventID}
	}

	switch p.state {
	case StateSaving:
		return domain.NewValidationError(domain.ReasonBusy, "hay un guardado en curso, intente nuevamente")
	case StateBlocked:
		p.state = StateIdle
	}
	return nil
}

// settle leaves the saving state once a write has resolved. Caller holds p.mu.
func (p *Planner) settle() {
	if p.editing != nil {
		p.state = StateEditing
		return
	}
	p.state = StateIdle
}

// Reload discards in-memory edits and hydrates the registry again.
func (p *Planner) Reload(ctx context.Context) error {
	p.mu.Lock()
	if p.state == StateSaving {
		p.mu.Unlock()
		return domain.NewValidationError(domain.ReasonBusy, "hay un guardado en curso, intente nuevamente")
	}
	err := p.hydrate(ctx)
	p.mu.Unlock()

	if err == nil {
		p.publish()
	}
	return err
}

// SelectTable opens the editor on an assignable table. Selecting anything else is a no-op.
func (p *Planner) SelectTable(ctx context.Context, tableID string) error {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return err
	}

	t, ok := p.registry.Get(tableID)
	if !ok || !t.IsAssignable {
		p.mu.Unlock()
		return nil
	}
	p.editing = &editor{tableID: t.ID, groups: t.GuestGroups}
	p.state = StateEditing
	p.mu.Unlock()

	p.publish()
	return nil
}

// editorFor returns the open editor of tableID. Caller holds p.mu.
func (p *Planner) editorFor(tableID string) (*editor, domain.Table, error) {
	if p.editing == nil || p.editing.tableID != tableID {
		return nil, domain.Table{}, domain.NewValidationError(domain.ReasonNotEditing, "la mesa %s no está en edición", tableID)
	}
	t, _ := p.registry.Get(tableID)
	return p.editing, t, nil
}

// AddGroup appends candidate to the working set of the table being edited.
func (p *Planner) AddGroup(ctx context.Context, tableID string, candidate domain.GuestGroup) (domain.GuestGroup, error) {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return domain.GuestGroup{}, err
	}

	ed, t, err := p.editorFor(tableID)
	if err != nil {
		p.mu.Unlock()
		return domain.GuestGroup{}, err
	}

	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Details = strings.TrimSpace(candidate.Details)
	if err = seating.ValidateNewGroup(ed.groups, candidate, seating.RangeFor(t)); err != nil {
		p.mu.Unlock()
		return domain.GuestGroup{}, err
	}

	candidate.ID = seating.NextGroupID(ed.groups)
	ed.groups = append(append([]domain.GuestGroup(nil), ed.groups...), candidate)
	p.mu.Unlock()

	p.publish()
	return candidate, nil
}

// RemoveGroup drops a group from the working set. It is always allowed.
func (p *Planner) RemoveGroup(ctx context.Context, tableID string, groupID uint) error {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return err
	}

	ed, _, err := p.editorFor(tableID)
	if err != nil {
		p.mu.Unlock()
		return err
	}

	groups := make([]domain.GuestGroup, 0, len(ed.groups))
	for _, g := range ed.groups {
		if g.ID != groupID {
			groups = append(groups, g)
		}
	}
	if len(groups) == len(ed.groups) {
		p.mu.Unlock()
		return domain.NewValidationError(domain.ReasonUnknownGroup, "el grupo %d no existe en la mesa %s", groupID, tableID)
	}
	ed.groups = groups
	p.mu.Unlock()

	p.publish()
	return nil
}

// Cancel closes the editor without persisting anything.
func (p *Planner) Cancel(tableID string) {
	p.mu.Lock()
	if p.editing == nil || p.editing.tableID != tableID {
		p.mu.Unlock()
		return
	}
	p.editing = nil
	if p.state == StateEditing {
		p.state = StateIdle
	}
	p.mu.Unlock()

	p.publish()
}

// Commit saves the working set of the table being edited.
func (p *Planner) Commit(ctx context.Context, tableID, explicitName string) (domain.Table, error) {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return domain.Table{}, err
	}
	ed, _, err := p.editorFor(tableID)
	if err != nil {
		p.mu.Unlock()
		return domain.Table{}, err
	}
	groups := append([]domain.GuestGroup(nil), ed.groups...)
	p.mu.Unlock()

	adults, children, babies := seating.Counts(groups)
	return p.UpdateMesaCompleta(ctx, tableID, groups, adults, children, babies, explicitName)
}

// UpdateMesaCompleta replaces the guest groups of a table. The capacity range is
// enforced here regardless of what the editor allowed, and the registry only
// changes once the row was written (or deleted, when the table was emptied).
func (p *Planner) UpdateMesaCompleta(ctx context.Context, tableID string, groups []domain.GuestGroup,
	adults, children, babies int, explicitName string) (domain.Table, error) {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return domain.Table{}, err
	}

	current, ok := p.registry.Get(tableID)
	if !ok {
		p.mu.Unlock()
		return domain.Table{}, domain.NewValidationError(domain.ReasonUnknownTable, "la mesa %s no existe", tableID)
	}
	if !current.IsAssignable {
		p.mu.Unlock()
		return domain.Table{}, domain.NewValidationError(domain.ReasonNotAssignable, "la mesa %s no admite invitados", tableID)
	}

	next, err := p.prepareTable(current, groups, adults, children, babies, explicitName)
	if err != nil {
		p.mu.Unlock()
		return domain.Table{}, err
	}
	p.state = StateSaving
	p.mu.Unlock()

	if next.IsUsed {
		err = p.repo.SaveTable(ctx, p.eventID, next)
	} else {
		err = p.repo.DeleteTable(ctx, p.eventID, next.ID)
	}

	p.mu.Lock()
	if err != nil {
		p.settle()
		p.mu.Unlock()
		zap.L().Warn("failed to persist table",
			zap.String("event_id", p.eventID), zap.String("table_id", tableID), zap.Error(err))
		return domain.Table{}, &domain.PersistenceError{Op: "save table " + tableID, Err: err}
	}

	if err = p.registry.Put(next); err != nil {
		p.settle()
		p.mu.Unlock()
		return domain.Table{}, fmt.Errorf("p.registry.Put -> %w", err)
	}
	if p.editing != nil && p.editing.tableID == tableID {
		p.editing = nil
	}
	p.settle()
	p.mu.Unlock()

	zap.L().Info("table saved",
		zap.String("event_id", p.eventID),
		zap.String("table_id", tableID),
		zap.String("table_name", next.TableName),
		zap.Int("total", next.Total()))
	p.publish()
	return next, nil
}

// prepareTable validates an edit and derives the next state of current. Caller holds p.mu.
func (p *Planner) prepareTable(current domain.Table, groups []domain.GuestGroup,
	adults, children, babies int, explicitName string) (domain.Table, error) {
	groups = seating.NormalizeGroups(groups)
	if err := seating.ValidateGroups(groups); err != nil {
		return domain.Table{}, err
	}

	a, c, b := seating.Counts(groups)
	if a != adults || c != children || b != babies {
		return domain.Table{}, domain.NewValidationError(domain.ReasonCountMismatch,
			"las cantidades (%d/%d/%d) no coinciden con los grupos (%d/%d/%d)", adults, children, babies, a, c, b)
	}

	total := adults + children + babies
	if err := seating.ValidateTotal(total, seating.RangeFor(current)); err != nil {
		return domain.Table{}, err
	}

	next := current.Clone()
	next.IsUsed = seating.IsUsed(total)

	if !next.IsUsed {
		next.NumAdults, next.NumChildren, next.NumBabies = 0, 0, 0
		next.GuestGroups = nil
		next.Descripcion = ""
		next.TableName = ""
		if next.IsMain {
			next.TableName = domain.MainTableName
		}
		return next, nil
	}

	next.NumAdults, next.NumChildren, next.NumBabies = adults, children, babies
	next.GuestGroups = groups
	next.Descripcion = seating.Descripcion(groups)

	explicitName = seating.NormalizeTableName(explicitName)
	switch {
	case next.IsMain:
		next.TableName = domain.MainTableName
	case explicitName != "":
		if seating.IsMainTableName(explicitName) || p.registry.NameTaken(next.ID, explicitName) {
			return domain.Table{}, domain.NewValidationError(domain.ReasonDuplicateName,
				"ya existe una mesa llamada %s", explicitName)
		}
		next.TableName = explicitName
	case next.TableName == "":
		next.TableName = p.registry.NextTableName(next.ID)
	}
	return next, nil
}

// UpdateGlobalDecoration changes the event decoration in memory and mirrors it on
// every assignable table. SaveDecoration persists it.
func (p *Planner) UpdateGlobalDecoration(ctx context.Context, d domain.Decoration) error {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return err
	}
	p.decoration = d
	p.registry.ApplyDecoration(d)
	p.mu.Unlock()

	p.publish()
	return nil
}

func (p *Planner) SaveDecoration(ctx context.Context) error {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return err
	}
	decoration := p.decoration
	p.state = StateSaving
	p.mu.Unlock()

	err := p.repo.SaveDecoration(ctx, p.eventID, decoration)

	p.mu.Lock()
	p.settle()
	p.mu.Unlock()

	if err != nil {
		zap.L().Warn("failed to persist decoration", zap.String("event_id", p.eventID), zap.Error(err))
		return &domain.PersistenceError{Op: "save decoration", Err: err}
	}
	p.publish()
	return nil
}

// SaveDistribution persists the whole layout: the main table and every used table,
// removing rows of tables that are no longer in use, plus the decoration record.
// It is refused while any table is outside its capacity range.
func (p *Planner) SaveDistribution(ctx context.Context) error {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return err
	}

	if warnings := p.registry.Warnings(); len(warnings) > 0 {
		names := make([]string, len(warnings))
		for i, id := range warnings {
			t, _ := p.registry.Get(id)
			names[i] = seating.DisplayName(t)
		}
		p.mu.Unlock()
		return domain.NewValidationError(domain.ReasonLayoutWarnings,
			"hay mesas fuera de capacidad: %s", strings.Join(names, ", "))
	}

	tables := p.registry.PersistSet()
	decoration := p.decoration
	p.state = StateSaving
	p.mu.Unlock()

	err := p.repo.SaveLayout(ctx, p.eventID, tables, decoration)

	p.mu.Lock()
	p.settle()
	if err != nil {
		p.mu.Unlock()
		zap.L().Warn("failed to persist layout", zap.String("event_id", p.eventID), zap.Error(err))
		return &domain.PersistenceError{Op: "save layout", Err: err}
	}
	p.markSaved()
	p.mu.Unlock()

	zap.L().Info("layout saved", zap.String("event_id", p.eventID), zap.Int("tables", len(tables)))
	p.publish()
	return nil
}

// markSaved raises the transient saved flag. Caller holds p.mu.
func (p *Planner) markSaved() {
	p.saved = true
	if p.savedTimer != nil {
		p.savedTimer.Stop()
	}
	p.savedTimer = time.AfterFunc(p.conf.SavedFlagTTL, func() {
		p.mu.Lock()
		p.saved = false
		p.mu.Unlock()
		p.publish()
	})
}

// MoveTable records a new floor-plan position. Positions are decorative and never persisted.
func (p *Planner) MoveTable(ctx context.Context, tableID string, pos domain.Position) error {
	p.mu.Lock()
	if err := p.guard(ctx); err != nil {
		p.mu.Unlock()
		return err
	}

	t, ok := p.registry.Get(tableID)
	if !ok {
		p.mu.Unlock()
		return domain.NewValidationError(domain.ReasonUnknownTable, "la mesa %s no existe", tableID)
	}
	t.Position = pos
	err := p.registry.Put(t)
	p.mu.Unlock()

	if err != nil {
		return fmt.Errorf("p.registry.Put -> %w", err)
	}
	p.publish()
	return nil
}

func (p *Planner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Planner) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		EventID:     p.eventID,
		State:       p.state,
		Tables:      p.registry.Tables(),
		Warnings:    p.registry.Warnings(),
		SaveBlocked: p.registry.IsBlocked(),
		Saved:       p.saved,
		Decoration:  p.decoration,
	}

	if p.editing != nil {
		t, _ := p.registry.Get(p.editing.tableID)
		r := seating.RangeFor(t)
		view := &EditorView{
			TableID: p.editing.tableID,
			Groups:  append([]domain.GuestGroup{}, p.editing.groups...),
			Total:   seating.GroupsTotal(p.editing.groups),
			Range:   r,
		}
		if err := seating.ValidateSave(p.editing.groups, r); err != nil {
			view.SaveError = err.Error()
		} else {
			view.CanSave = true
		}
		snap.Editing = view
	}
	return snap
}

// Subscribe registers fn to receive a snapshot after every change. The returned
// func removes the subscription.
func (p *Planner) Subscribe(fn func(Snapshot)) func() {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn

	return func() {
		p.subMu.Lock()
		defer p.subMu.Unlock()
		delete(p.subscribers, id)
	}
}

func (p *Planner) publish() {
	p.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.subMu.Unlock()

	if len(subs) == 0 {
		return
	}
	snap := p.Snapshot()
	for _, fn := range subs {
		fn(snap)
	}
}

// Close stops the saved flag timer.
func (p *Planner) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.savedTimer != nil {
		p.savedTimer.Stop()
	}
}
