// Package seating holds the pure rules of the table planner: capacity ranges,
// group validation, table naming and the warning evaluator. Nothing in here
// performs I/O.
package seating

import "github.com/Emmabm/web-lasrocas-sub000/internal/domain"

type CapacityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var (
	StandardRange = CapacityRange{Min: 8, Max: 11}
	MainRange     = CapacityRange{Min: 2, Max: 15}
)

// RangeFor returns the occupancy range of the table's category.
func RangeFor(t domain.Table) CapacityRange {
	if t.IsMain {
		return MainRange
	}
	return StandardRange
}

func (r CapacityRange) Contains(total int) bool {
	return total >= r.Min && total <= r.Max
}

func InRange(r CapacityRange, total int) bool {
	return r.Contains(total)
}

// Total is the table occupancy as stored in its count fields.
func Total(t domain.Table) int {
	return t.NumAdults + t.NumChildren + t.NumBabies
}

func GroupsTotal(groups []domain.GuestGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Total()
	}
	return total
}

func IsUsed(total int) bool {
	return total > 0
}

// Counts sums adults, children and babies across groups.
func Counts(groups []domain.GuestGroup) (adults, children, babies int) {
	for _, g := range groups {
		adults += g.NumAdults
		children += g.NumChildren
		babies += g.NumBabies
	}
	return adults, children, babies
}
