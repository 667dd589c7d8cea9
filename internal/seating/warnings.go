package seating

import "github.com/Emmabm/web-lasrocas-sub000/internal/domain"

// ComputeWarnings returns, in layout order, the ids of assignable used tables whose
// occupancy falls outside their range.
func ComputeWarnings(tables []domain.Table) []string {
	warnings := []string{}
	for _, t := range tables {
		if !t.IsAssignable || !t.IsUsed {
			continue
		}
		if !RangeFor(t).Contains(t.Total()) {
			warnings = append(warnings, t.ID)
		}
	}
	return warnings
}

// IsBlocked gates the full-layout save while any warning exists.
func IsBlocked(tables []domain.Table) bool {
	return len(ComputeWarnings(tables)) > 0
}
