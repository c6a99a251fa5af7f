package inquiries

import (
	"net/http"

	"shelter/internal/crud"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Resource: cualquiera puede crear una consulta; leerlas y editarlas es del staff.
var Resource = crud.Resource{
	Version:  "v1",
	Singular: "inquiry",
	Plural:   "inquiries",
	Policies: crud.Policies{
		List:   "Inquiries.Read",
		Get:    "Inquiries.Read",
		Modify: "Inquiries.Write",
	},
}

type handler struct {
	*crud.Handler[Inquiry, V1, *Inquiry]
}

// RegisterRoutes monta /inquiries y /inquiry/{id} en un router de /api/v1.
func RegisterRoutes(r chi.Router, store crud.Datastore[Inquiry], gate crud.Gate, validate *validator.Validate) {
	ctrl := crud.NewController[Inquiry, V1](store, RendererV1{})
	h := handler{crud.NewHandler(ctrl, Resource, validate)}

	crud.Mount(r, Resource, gate, crud.Endpoints{
		List:   h.listInquiries,
		Create: h.createInquiry,
		Get:    h.getInquiry,
		Modify: h.modifyInquiry,
	})
}

// listInquiries godoc
// @Summary Listar consultas
// @Description Requiere la política Inquiries.Read.
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} V1
// @Failure 401 {object} problem.Details
// @Failure 403 {object} problem.Details
// @Router /inquiries [get]
func (h handler) listInquiries(w http.ResponseWriter, r *http.Request) { h.List(w, r) }

// createInquiry godoc
// @Summary Crear consulta
// @Description Abierto a cualquiera. El id del body se ignora.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param payload body V1 true "Consulta"
// @Success 201 {object} V1
// @Header 201 {string} Location "/api/v1/inquiry/{id}"
// @Failure 400 {object} problem.Details
// @Failure 415 {object} problem.Details
// @Router /inquiries [post]
func (h handler) createInquiry(w http.ResponseWriter, r *http.Request) { h.Create(w, r) }

// getInquiry godoc
// @Summary Ver consulta
// @Description Requiere la política Inquiries.Read.
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la consulta"
// @Success 200 {object} V1
// @Failure 401 {object} problem.Details
// @Failure 403 {object} problem.Details
// @Failure 404 {object} problem.Details
// @Router /inquiry/{id} [get]
func (h handler) getInquiry(w http.ResponseWriter, r *http.Request) { h.Get(w, r) }

// modifyInquiry godoc
// @Summary Reemplazar consulta
// @Description Reemplaza la consulta completa; nunca crea. Requiere la política Inquiries.Write.
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la consulta"
// @Param payload body V1 true "Consulta"
// @Success 200 {object} V1
// @Failure 400 {object} problem.Details
// @Failure 401 {object} problem.Details
// @Failure 403 {object} problem.Details
// @Failure 404 {object} problem.Details
// @Failure 415 {object} problem.Details
// @Router /inquiry/{id} [put]
func (h handler) modifyInquiry(w http.ResponseWriter, r *http.Request) { h.Modify(w, r) }
