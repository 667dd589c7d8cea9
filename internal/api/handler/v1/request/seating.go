package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

type GuestGroup struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NumAdults   int    `json:"num_adults"`
	NumChildren int    `json:"num_children"`
	NumBabies   int    `json:"num_babies"`
	Details     string `json:"details"`
}

// Validate only checks the shape; headcount rules belong to the planner.
func (g GuestGroup) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&g.NumAdults, validation.Min(0)),
		validation.Field(&g.NumChildren, validation.Min(0)),
		validation.Field(&g.NumBabies, validation.Min(0)),
		validation.Field(&g.Details, validation.Length(0, 500)),
	)
}

func (g GuestGroup) ToDomain() domain.GuestGroup {
	return domain.GuestGroup{
		ID:          g.ID,
		Name:        strings.TrimSpace(g.Name),
		NumAdults:   g.NumAdults,
		NumChildren: g.NumChildren,
		NumBabies:   g.NumBabies,
		Details:     strings.TrimSpace(g.Details),
	}
}

type AddGroupRequest struct {
	GuestGroup
}

type CommitTableRequest struct {
	TableName string `json:"table_name"`
}

func (req *CommitTableRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.TableName, validation.Length(0, 50)),
	)
}

type UpdateTableRequest struct {
	TableName   string       `json:"table_name"`
	NumAdults   int          `json:"num_adults"`
	NumChildren int          `json:"num_children"`
	NumBabies   int          `json:"num_babies"`
	GuestGroups []GuestGroup `json:"guest_groups"`
}

func (req *UpdateTableRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.TableName, validation.Length(0, 50)),
		validation.Field(&req.NumAdults, validation.Min(0)),
		validation.Field(&req.NumChildren, validation.Min(0)),
		validation.Field(&req.NumBabies, validation.Min(0)),
		validation.Field(&req.GuestGroups),
	)
}

func (req *UpdateTableRequest) Groups() []domain.GuestGroup {
	groups := make([]domain.GuestGroup, 0, len(req.GuestGroups))
	for _, g := range req.GuestGroups {
		groups = append(groups, g.ToDomain())
	}
	return groups
}

type MoveTableRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (req *MoveTableRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.X, validation.NotNil, validation.Min(0.0)),
		validation.Field(&req.Y, validation.NotNil, validation.Min(0.0)),
	)
}

type DecorationRequest struct {
	Tablecloth  string `json:"tablecloth"`
	NapkinColor string `json:"napkin_color"`
	Centerpiece string `json:"centerpiece"`
}

func (req *DecorationRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Tablecloth, validation.Length(0, 100)),
		validation.Field(&req.NapkinColor, validation.Length(0, 100)),
		validation.Field(&req.Centerpiece, validation.Length(0, 100)),
	)
}

func (req *DecorationRequest) ToDomain() domain.Decoration {
	return domain.Decoration{
		Tablecloth:  strings.TrimSpace(req.Tablecloth),
		NapkinColor: strings.TrimSpace(req.NapkinColor),
		Centerpiece: strings.TrimSpace(req.Centerpiece),
	}
}
