package crud

import (
	"encoding/json"
	"errors"
	"net/http"

	"shelter/internal/platform/logger"
	"shelter/internal/platform/problem"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const jsonContentType = "application/json; charset=utf-8"

// MaxBodyBytes es el tope del body en create/modify.
const MaxBodyBytes = 1 << 20

// Gate construye el middleware de autorización para una política nombrada.
// Política vacía = endpoint abierto.
type Gate func(policy string) func(http.Handler) http.Handler

// Policies define qué política protege cada operación.
type Policies struct {
	List   string
	Get    string
	Create string
	Modify string
}

// Resource describe cómo se expone un recurso bajo /api/{version}.
type Resource struct {
	Version  string // "v1"
	Singular string // "pet"
	Plural   string // "pets"
	Policies Policies
}

// Location del endpoint singular para un id.
func (res Resource) Location(id string) string {
	return "/api/" + res.Version + "/" + res.Singular + "/" + id
}

// Handler expone un Controller por HTTP.
type Handler[M any, V any, PM Model[M]] struct {
	ctrl     *Controller[M, V, PM]
	res      Resource
	validate *validator.Validate
}

func NewHandler[M any, V any, PM Model[M]](ctrl *Controller[M, V, PM], res Resource, validate *validator.Validate) *Handler[M, V, PM] {
	if validate == nil {
		validate = NewValidator()
	}
	return &Handler[M, V, PM]{ctrl: ctrl, res: res, validate: validate}
}

// Endpoints son los cuatro handlers de un recurso. Los paquetes de dominio
// los envuelven para documentarlos con swag.
type Endpoints struct {
	List   http.HandlerFunc
	Create http.HandlerFunc
	Get    http.HandlerFunc
	Modify http.HandlerFunc
}

// Routes registra las cuatro operaciones en un router ya montado en /api/{version}.
func (h *Handler[M, V, PM]) Routes(r chi.Router, gate Gate) {
	Mount(r, h.res, gate, Endpoints{List: h.List, Create: h.Create, Get: h.Get, Modify: h.Modify})
}

// Mount registra GET/POST /{plural} y GET/PUT /{singular}/{id}, cada uno
// detrás del gate de su política.
func Mount(r chi.Router, res Resource, gate Gate, e Endpoints) {
	if gate == nil {
		gate = func(string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler { return next }
		}
	}

	plural := "/" + res.Plural
	singular := "/" + res.Singular + "/{id}"

	r.With(gate(res.Policies.List)).Get(plural, e.List)
	r.With(gate(res.Policies.Create)).Post(plural, e.Create)
	r.With(gate(res.Policies.Get)).Get(singular, e.Get)
	r.With(gate(res.Policies.Modify)).Put(singular, e.Modify)
}

func (h *Handler[M, V, PM]) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.List(r.Context()))
}

func (h *Handler[M, V, PM]) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	v, err := DecodeView[V](r, h.validate)
	if err != nil {
		writeDecodeError(w, r, err)
		return
	}

	created, id := h.ctrl.Create(r.Context(), v)

	logger.FromContext(r.Context()).Info("resource created", map[string]any{
		"resource": h.res.Singular,
		"id":       id,
	})

	w.Header().Set("Location", h.res.Location(id))
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler[M, V, PM]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v, err := h.ctrl.Get(r.Context(), id)
	if err != nil {
		writeControllerError(w, r, h.res, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (h *Handler[M, V, PM]) Modify(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	v, err := DecodeView[V](r, h.validate)
	if err != nil {
		writeDecodeError(w, r, err)
		return
	}

	modified, err := h.ctrl.Modify(r.Context(), id, v)
	if err != nil {
		writeControllerError(w, r, h.res, err)
		return
	}

	logger.FromContext(r.Context()).Info("resource modified", map[string]any{
		"resource": h.res.Singular,
		"id":       id,
	})

	writeJSON(w, http.StatusOK, modified)
}

func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		problem.Error(w, r, http.StatusUnsupportedMediaType, "content type must be application/json")
	case errors.Is(err, ErrBodyTooLarge):
		problem.Error(w, r, http.StatusBadRequest, "request body too large")
	case errors.As(err, &verr):
		d := problem.New(r, http.StatusBadRequest, "one or more validation errors occurred")
		d.Errors = verr.Fields
		problem.Write(w, d)
	default:
		problem.Error(w, r, http.StatusBadRequest, err.Error())
	}
}

func writeControllerError(w http.ResponseWriter, r *http.Request, res Resource, err error) {
	if errors.Is(err, ErrNotFound) {
		problem.Error(w, r, http.StatusNotFound, res.Singular+" not found")
		return
	}
	logger.FromContext(r.Context()).Error("unexpected controller error", map[string]any{"err": err.Error()})
	problem.Error(w, r, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
