package pets

import (
	"net/http"

	"shelter/internal/crud"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Resource: listar y ver son públicos; crear y modificar requieren Pets.Write.
var Resource = crud.Resource{
	Version:  "v1",
	Singular: "pet",
	Plural:   "pets",
	Policies: crud.Policies{
		Create: "Pets.Write",
		Modify: "Pets.Write",
	},
}

type handler struct {
	*crud.Handler[Pet, V1, *Pet]
}

// RegisterRoutes monta /pets y /pet/{id} en un router de /api/v1.
func RegisterRoutes(r chi.Router, store crud.Datastore[Pet], gate crud.Gate, validate *validator.Validate) {
	ctrl := crud.NewController[Pet, V1](store, RendererV1{})
	h := handler{crud.NewHandler(ctrl, Resource, validate)}

	crud.Mount(r, Resource, gate, crud.Endpoints{
		List:   h.listPets,
		Create: h.createPet,
		Get:    h.getPet,
		Modify: h.modifyPet,
	})
}

// listPets godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas del refugio. Público.
// @Tags pets
// @Produce json
// @Success 200 {array} V1
// @Router /pets [get]
func (h handler) listPets(w http.ResponseWriter, r *http.Request) { h.List(w, r) }

// createPet godoc
// @Summary Crear mascota
// @Description Alta de una mascota. El id del body se ignora; status por defecto `unavailable`. Requiere la política Pets.Write.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body V1 true "Mascota"
// @Success 201 {object} V1
// @Header 201 {string} Location "/api/v1/pet/{id}"
// @Failure 400 {object} problem.Details
// @Failure 401 {object} problem.Details
// @Failure 403 {object} problem.Details
// @Failure 415 {object} problem.Details
// @Router /pets [post]
func (h handler) createPet(w http.ResponseWriter, r *http.Request) { h.Create(w, r) }

// getPet godoc
// @Summary Ver mascota
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} V1
// @Failure 404 {object} problem.Details
// @Router /pet/{id} [get]
func (h handler) getPet(w http.ResponseWriter, r *http.Request) { h.Get(w, r) }

// modifyPet godoc
// @Summary Reemplazar mascota
// @Description Reemplaza la mascota completa; nunca crea. Requiere la política Pets.Write.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la mascota"
// @Param payload body V1 true "Mascota"
// @Success 200 {object} V1
// @Failure 400 {object} problem.Details
// @Failure 401 {object} problem.Details
// @Failure 403 {object} problem.Details
// @Failure 404 {object} problem.Details
// @Failure 415 {object} problem.Details
// @Router /pet/{id} [put]
func (h handler) modifyPet(w http.ResponseWriter, r *http.Request) { h.Modify(w, r) }
