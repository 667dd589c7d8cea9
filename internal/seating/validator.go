package seating

import (
	"strings"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

// ValidateGroup checks a single group in isolation.
func ValidateGroup(g domain.GuestGroup) error {
	if strings.TrimSpace(g.Name) == "" {
		return domain.NewValidationError(domain.ReasonEmptyName, "el grupo necesita un nombre")
	}
	if g.NumAdults < 0 || g.NumChildren < 0 || g.NumBabies < 0 {
		return domain.NewValidationError(domain.ReasonNegativeCount, "el grupo %q tiene cantidades negativas", g.Name)
	}
	if g.Total() == 0 {
		return domain.NewValidationError(domain.ReasonEmptyGroup, "el grupo %q no tiene invitados", g.Name)
	}
	return nil
}

// ValidateGroups re-checks every group of a table at commit time.
func ValidateGroups(groups []domain.GuestGroup) error {
	for _, g := range groups {
		if err := ValidateGroup(g); err != nil {
			return err
		}
	}
	return nil
}

// ValidateNewGroup decides whether candidate may join the working set. Being under
// the minimum is fine here: a table is built up one group at a time.
func ValidateNewGroup(working []domain.GuestGroup, candidate domain.GuestGroup, r CapacityRange) error {
	if err := ValidateGroup(candidate); err != nil {
		return err
	}
	if total := GroupsTotal(working) + candidate.Total(); total > r.Max {
		return domain.NewValidationError(domain.ReasonTooMany,
			"la mesa admite máximo %d invitados (quedaría con %d)", r.Max, total)
	}
	return nil
}

func CanAddGroup(working []domain.GuestGroup, candidate domain.GuestGroup, r CapacityRange) bool {
	return ValidateNewGroup(working, candidate, r) == nil
}

// ValidateTotal accepts an empty table or one inside r.
func ValidateTotal(total int, r CapacityRange) error {
	switch {
	case total == 0:
		return nil
	case total < r.Min:
		return domain.NewValidationError(domain.ReasonTooFew,
			"la mesa necesita mínimo %d invitados (tiene %d)", r.Min, total)
	case total > r.Max:
		return domain.NewValidationError(domain.ReasonTooMany,
			"la mesa admite máximo %d invitados (tiene %d)", r.Max, total)
	}
	return nil
}

func ValidateSave(working []domain.GuestGroup, r CapacityRange) error {
	return ValidateTotal(GroupsTotal(working), r)
}

func CanSave(working []domain.GuestGroup, r CapacityRange) bool {
	return ValidateSave(working, r) == nil
}

// NextGroupID returns an id not used by any group in groups.
func NextGroupID(groups []domain.GuestGroup) uint {
	var max uint
	for _, g := range groups {
		if g.ID > max {
			max = g.ID
		}
	}
	return max + 1
}

// NormalizeGroups trims names and details and gives ids to groups that have none.
func NormalizeGroups(groups []domain.GuestGroup) []domain.GuestGroup {
	out := make([]domain.GuestGroup, 0, len(groups))
	seen := make(map[uint]bool, len(groups))
	for _, g := range groups {
		g.Name = strings.TrimSpace(g.Name)
		g.Details = strings.TrimSpace(g.Details)
		out = append(out, g)
	}
	for i := range out {
		if out[i].ID == 0 || seen[out[i].ID] {
			out[i].ID = NextGroupID(out)
		}
		seen[out[i].ID] = true
	}
	return out
}

// Descripcion joins the non-empty group details.
func Descripcion(groups []domain.GuestGroup) string {
	var notes []string
	for _, g := range groups {
		if d := strings.TrimSpace(g.Details); d != "" {
			notes = append(notes, d)
		}
	}
	return strings.Join(notes, "; ")
}
