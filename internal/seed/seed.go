// Package seed carga los registros iniciales de config en los stores.
package seed

import (
	"context"
	"fmt"

	"shelter/internal/config"
	"shelter/internal/crud"
	"shelter/internal/domain/inquiries"
	"shelter/internal/domain/pets"
	"shelter/internal/platform/logger"
)

type Stores struct {
	Pets      crud.Datastore[pets.Pet]
	Inquiries crud.Datastore[inquiries.Inquiry]
}

// Load valida toda la semilla con las mismas reglas que la API y recién
// después guarda cada vista (vía renderer). Si una entrada es inválida no se
// guarda nada. A diferencia de un POST, un id presente se respeta, así las
// consultas sembradas pueden referenciar mascotas sembradas.
func Load(ctx context.Context, s config.Seed, stores Stores, log logger.Logger) error {
	validate := crud.NewValidator()
	for i, v := range s.Pets {
		if err := validate.Struct(v); err != nil {
			return fmt.Errorf("seed pets[%d]: %w", i, err)
		}
	}
	for i, v := range s.Inquiries {
		if err := validate.Struct(v); err != nil {
			return fmt.Errorf("seed inquiries[%d]: %w", i, err)
		}
	}

	petR := pets.RendererV1{}
	for _, v := range s.Pets {
		p := stores.Pets.Store(ctx, petR.FromView(v))
		log.Debug("seeded pet", map[string]any{"id": p.ID, "name": p.Name})
	}

	inqR := inquiries.RendererV1{}
	for _, v := range s.Inquiries {
		i := stores.Inquiries.Store(ctx, inqR.FromView(v))
		log.Debug("seeded inquiry", map[string]any{"id": i.ID, "pet_id": i.PetID})
	}

	log.Info("seed loaded", map[string]any{
		"pets":      len(s.Pets),
		"inquiries": len(s.Inquiries),
	})
	return nil
}
