package pets

import (
	"encoding/json"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// V1 es la representación pública de Pet en /api/v1.
type V1 struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name" validate:"required"`
	Status      Status    `json:"status" yaml:"status" validate:"required,oneof=unavailable available adopted"`
	Kind        string    `json:"kind" yaml:"kind" validate:"required"`
	Breed       string    `json:"breed" yaml:"breed"`
	Description string    `json:"description" yaml:"description"`
	Birthday    time.Time `json:"birthday" yaml:"birthday"`
	Photos      []string  `json:"photos" yaml:"photos" validate:"omitempty,dive,uriref"`
}

// v1Fields evita la recursión de UnmarshalJSON/UnmarshalYAML.
type v1Fields V1

// UnmarshalJSON deja Status en unavailable si el body no lo trae (o trae null).
func (v *V1) UnmarshalJSON(b []byte) error {
	f := v1Fields{Status: StatusUnavailable}
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = V1(f)
	return nil
}

// UnmarshalYAML aplica el mismo default a las mascotas sembradas desde config.
func (v *V1) UnmarshalYAML(n *yaml.Node) error {
	f := v1Fields{Status: StatusUnavailable}
	if err := n.Decode(&f); err != nil {
		return err
	}
	*v = V1(f)
	return nil
}

// RendererV1 implementa crud.Renderer[Pet, V1].
type RendererV1 struct{}

func (RendererV1) ToView(p Pet) V1 {
	return V1{
		ID:          p.ID,
		Name:        p.Name,
		Status:      p.Status,
		Kind:        p.Kind,
		Breed:       p.Breed,
		Description: p.Description,
		Birthday:    p.Birthday,
		Photos:      slices.Clone(p.Photos),
	}
}

func (RendererV1) FromView(v V1) Pet {
	return Pet{
		ID:          v.ID,
		Name:        v.Name,
		Status:      v.Status,
		Kind:        v.Kind,
		Breed:       v.Breed,
		Description: v.Description,
		Birthday:    v.Birthday,
		Photos:      slices.Clone(v.Photos),
	}
}
