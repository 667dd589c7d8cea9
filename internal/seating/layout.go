package seating

import (
	"fmt"

	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
)

const (
	standardRows    = 4
	standardColumns = 6
)

// DefaultLayout is the salon template: stage, DJ booth and dance floor as fixed
// decorative fixtures, the head table, and a grid of round standard tables.
func DefaultLayout() []domain.Table {
	layout := []domain.Table{
		{ID: "escenario", Shape: "rect", Position: domain.Position{X: 400, Y: 20}, Width: 300, Height: 80},
		{ID: "dj", Shape: "rect", Position: domain.Position{X: 60, Y: 20}, Width: 120, Height: 60},
		{ID: "pista", Shape: "rect", Position: domain.Position{X: 380, Y: 140}, Width: 340, Height: 180},
		{
			ID:           "principal",
			Shape:        "rect",
			Position:     domain.Position{X: 420, Y: 350},
			Width:        260,
			Height:       60,
			IsAssignable: true,
			IsMain:       true,
			TableName:    domain.MainTableName,
		},
	}

	n := 1
	for row := 0; row < standardRows; row++ {
		for col := 0; col < standardColumns; col++ {
			layout = append(layout, domain.Table{
				ID:           fmt.Sprintf("mesa-%d", n),
				Shape:        "circle",
				Position:     domain.Position{X: float64(80 + col*170), Y: float64(460 + row*150)},
				Width:        110,
				Height:       110,
				IsAssignable: true,
			})
			n++
		}
	}
	return layout
}
