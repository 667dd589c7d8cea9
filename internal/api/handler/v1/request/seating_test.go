package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestGuestGroupValidate(t *testing.T) {
	assert.NoError(t, GuestGroup{Name: "Familia", NumAdults: 2}.Validate())
	assert.Error(t, GuestGroup{Name: "", NumAdults: 2}.Validate())
	assert.Error(t, GuestGroup{Name: "Familia", NumChildren: -1}.Validate())
}

func TestGuestGroupToDomainTrims(t *testing.T) {
	g := GuestGroup{Name: "  Tíos  ", NumAdults: 2, Details: " vegano "}.ToDomain()
	assert.Equal(t, "Tíos", g.Name)
	assert.Equal(t, "vegano", g.Details)
}

func TestUpdateTableRequestValidate(t *testing.T) {
	req := UpdateTableRequest{
		NumAdults:   2,
		GuestGroups: []GuestGroup{{Name: "A", NumAdults: 2}},
	}
	assert.NoError(t, req.Validate())
	assert.Len(t, req.Groups(), 1)

	req.GuestGroups = append(req.GuestGroups, GuestGroup{Name: ""})
	assert.Error(t, req.Validate())

	empty := UpdateTableRequest{}
	assert.NoError(t, empty.Validate())
	assert.Empty(t, empty.Groups())
}

func TestMoveTableRequestValidate(t *testing.T) {
	assert.NoError(t, (&MoveTableRequest{X: ptr(0), Y: ptr(12.5)}).Validate())
	assert.Error(t, (&MoveTableRequest{X: ptr(3)}).Validate())
	assert.Error(t, (&MoveTableRequest{X: ptr(-1), Y: ptr(1)}).Validate())
}

func TestDecorationRequestToDomain(t *testing.T) {
	d := (&DecorationRequest{Tablecloth: " lino ", NapkinColor: "azul"}).ToDomain()
	assert.Equal(t, "lino", d.Tablecloth)
	assert.Equal(t, "azul", d.NapkinColor)
	assert.Empty(t, d.Centerpiece)
}
