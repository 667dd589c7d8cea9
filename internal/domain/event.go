package domain

type EventStatus string

const (
	EventActive   EventStatus = "activo"
	EventInactive EventStatus = "inactivo"
)

type Event struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Estado EventStatus `json:"estado"`
}

func (e Event) IsInactive() bool {
	return e.Estado == EventInactive
}
