package pets

import (
	"slices"
	"time"
)

// Status define el estado de adopción de la mascota.
// @Enum unavailable, available, adopted
type Status string

const (
	StatusUnavailable Status = "unavailable"
	StatusAvailable   Status = "available"
	StatusAdopted     Status = "adopted"
)

// Pet representa una mascota del refugio.
type Pet struct {
	ID string

	Name   string
	Status Status
	Kind   string // dog, cat, ...
	Breed  string

	Description string
	Birthday    time.Time

	Photos []string // URIs absolutas
}

func (p *Pet) GetID() string   { return p.ID }
func (p *Pet) SetID(id string) { p.ID = id }

func (p *Pet) Clone() Pet {
	c := *p
	c.Photos = slices.Clone(p.Photos)
	return c
}
