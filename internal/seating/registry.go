package seating

import (
	"errors"
	"fmt"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

var (
	ErrNoMainTable       = errors.New("layout has no main table")
	ErrManyMainTables    = errors.New("layout has more than one main table")
	ErrDuplicateTableID  = errors.New("layout has a duplicate table id")
	ErrMainNotAssignable = errors.New("main table must be assignable")
)

// Registry is the in-memory set of tables of one event layout. It is not safe for
// concurrent use; the planner serialises access.
type Registry struct {
	tables []domain.Table
	index  map[string]int
}

// NewRegistry validates the layout and copies it into a registry.
func NewRegistry(layout []domain.Table) (*Registry, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}

	r := &Registry{
		tables: make([]domain.Table, len(layout)),
		index:  make(map[string]int, len(layout)),
	}
	for i, t := range layout {
		r.tables[i] = t.Clone()
		r.index[t.ID] = i
	}
	return r, nil
}

func ValidateLayout(layout []domain.Table) error {
	seen := make(map[string]bool, len(layout))
	mains := 0
	for _, t := range layout {
		if seen[t.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateTableID, t.ID)
		}
		seen[t.ID] = true
		if t.IsMain {
			if !t.IsAssignable {
				return ErrMainNotAssignable
			}
			mains++
		}
	}
	switch {
	case mains == 0:
		return ErrNoMainTable
	case mains > 1:
		return ErrManyMainTables
	}
	return nil
}

// Tables returns a deep copy of the tables in layout order.
func (r *Registry) Tables() []domain.Table {
	out := make([]domain.Table, len(r.tables))
	for i, t := range r.tables {
		out[i] = t.Clone()
	}
	return out
}

func (r *Registry) Get(id string) (domain.Table, bool) {
	i, ok := r.index[id]
	if !ok {
		return domain.Table{}, false
	}
	return r.tables[i].Clone(), true
}

// Put replaces the table with the same id. Unknown ids are rejected: the layout is fixed.
func (r *Registry) Put(t domain.Table) error {
	i, ok := r.index[t.ID]
	if !ok {
		return fmt.Errorf("table %q is not part of the layout", t.ID)
	}
	t.IsUsed = IsUsed(t.Total())
	r.tables[i] = t.Clone()
	return nil
}

func (r *Registry) Main() domain.Table {
	for _, t := range r.tables {
		if t.IsMain {
			return t.Clone()
		}
	}
	return domain.Table{}
}

// PersistSet is the main table plus every used table.
func (r *Registry) PersistSet() []domain.Table {
	var out []domain.Table
	for _, t := range r.tables {
		if t.IsMain || (t.IsAssignable && t.IsUsed) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// ApplyDecoration copies d onto every assignable table.
func (r *Registry) ApplyDecoration(d domain.Decoration) {
	for i := range r.tables {
		if !r.tables[i].IsAssignable {
			continue
		}
		r.tables[i].Tablecloth = d.Tablecloth
		r.tables[i].NapkinColor = d.NapkinColor
		r.tables[i].Centerpiece = d.Centerpiece
	}
}

// Overlay applies a persisted row onto the template table with the same id.
// Rows for ids outside the layout are ignored and reported as false.
func (r *Registry) Overlay(row domain.Table) bool {
	i, ok := r.index[row.ID]
	if !ok {
		return false
	}
	t := &r.tables[i]
	if !t.IsAssignable {
		return false
	}
	t.NumAdults = row.NumAdults
	t.NumChildren = row.NumChildren
	t.NumBabies = row.NumBabies
	t.IsUsed = IsUsed(t.Total())
	t.Descripcion = row.Descripcion
	t.GuestGroups = append([]domain.GuestGroup(nil), row.GuestGroups...)
	switch {
	case t.IsMain:
		t.TableName = domain.MainTableName
	case t.IsUsed:
		t.TableName = row.TableName
	default:
		t.TableName = ""
	}
	return true
}

func (r *Registry) Warnings() []string {
	return ComputeWarnings(r.tables)
}

func (r *Registry) IsBlocked() bool {
	return IsBlocked(r.tables)
}

func (r *Registry) NextTableName(selfID string) string {
	return NextTableName(r.tables, selfID)
}

func (r *Registry) NameTaken(selfID, name string) bool {
	return NameTaken(r.tables, selfID, name)
}

// DisplayName is the table name, or its id when it has none.
func DisplayName(t domain.Table) string {
	if t.TableName != "" {
		return t.TableName
	}
	return t.ID
}
