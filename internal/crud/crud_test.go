package crud_test

import (
	"slices"

	"shelter/internal/adapters/storage/memory"
	"shelter/internal/crud"
)

// note es un modelo mínimo para probar el contrato genérico.
type note struct {
	ID   string
	Text string
	Tags []string
}

func (n *note) GetID() string   { return n.ID }
func (n *note) SetID(id string) { n.ID = id }
func (n *note) Clone() note {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	return c
}

type noteView struct {
	ID   string   `json:"id"`
	Text string   `json:"text" validate:"required"`
	Tags []string `json:"tags" validate:"omitempty,dive,alpha"`
}

type noteRenderer struct{}

func (noteRenderer) ToView(n note) noteView {
	return noteView{ID: n.ID, Text: n.Text, Tags: slices.Clone(n.Tags)}
}

func (noteRenderer) FromView(v noteView) note {
	return note{ID: v.ID, Text: v.Text, Tags: slices.Clone(v.Tags)}
}

func newNoteController() (*crud.Controller[note, noteView, *note], *memory.Datastore[note, *note]) {
	store := memory.NewDatastore[note]()
	return crud.NewController[note, noteView](store, noteRenderer{}), store
}
