package inquiries

// Inquiry es una consulta de un interesado sobre una mascota.
type Inquiry struct {
	ID string

	PetID string // referencia a pets.Pet.ID, no se valida contra el store

	Name    string
	Email   string
	Message string
}

func (i *Inquiry) GetID() string   { return i.ID }
func (i *Inquiry) SetID(id string) { i.ID = id }
func (i *Inquiry) Clone() Inquiry  { return *i }
