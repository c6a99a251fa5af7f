package inquiries

// V1 es la representación pública de Inquiry en /api/v1.
type V1 struct {
	ID      string `json:"id" yaml:"id"`
	PetID   string `json:"petId" yaml:"petId" validate:"required"`
	Name    string `json:"name" yaml:"name" validate:"required"`
	Email   string `json:"email" yaml:"email" validate:"required"`
	Message string `json:"message" yaml:"message"`
}

// RendererV1 implementa crud.Renderer[Inquiry, V1].
type RendererV1 struct{}

func (RendererV1) ToView(i Inquiry) V1 {
	return V1{
		ID:      i.ID,
		PetID:   i.PetID,
		Name:    i.Name,
		Email:   i.Email,
		Message: i.Message,
	}
}

func (RendererV1) FromView(v V1) Inquiry {
	return Inquiry{
		ID:      v.ID,
		PetID:   v.PetID,
		Name:    v.Name,
		Email:   v.Email,
		Message: v.Message,
	}
}
