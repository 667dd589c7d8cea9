package domain

const MainTableName = "Principal"

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type GuestGroup struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NumAdults   int    `json:"num_adults"`
	NumChildren int    `json:"num_children"`
	NumBabies   int    `json:"num_babies"`
	Details     string `json:"details,omitempty"`
}

func (g GuestGroup) Total() int {
	return g.NumAdults + g.NumChildren + g.NumBabies
}

// Table is one fixture of an event layout. Only assignable tables hold guests.
type Table struct {
	ID           string       `json:"id"`
	Position     Position     `json:"position"`
	Shape        string       `json:"shape"`
	Width        float64      `json:"width"`
	Height       float64      `json:"height"`
	IsAssignable bool         `json:"is_assignable"`
	IsMain       bool         `json:"is_main"`
	IsUsed       bool         `json:"is_used"`
	TableName    string       `json:"table_name,omitempty"`
	NumAdults    int          `json:"num_adults"`
	NumChildren  int          `json:"num_children"`
	NumBabies    int          `json:"num_babies"`
	Descripcion  string       `json:"descripcion,omitempty"`
	GuestGroups  []GuestGroup `json:"guest_groups"`
	Tablecloth   string       `json:"tablecloth,omitempty"`
	NapkinColor  string       `json:"napkin_color,omitempty"`
	Centerpiece  string       `json:"centerpiece,omitempty"`
}

func (t Table) Total() int {
	return t.NumAdults + t.NumChildren + t.NumBabies
}

// Clone returns a copy that does not share the guest group slice.
func (t Table) Clone() Table {
	c := t
	if t.GuestGroups != nil {
		c.GuestGroups = make([]GuestGroup, len(t.GuestGroups))
		copy(c.GuestGroups, t.GuestGroups)
	}
	return c
}
