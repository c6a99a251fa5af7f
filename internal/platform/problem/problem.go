// Package problem escribe respuestas de error RFC 7807 (application/problem+json).
package problem

import (
	"encoding/json"
	"net/http"
)

const ContentType = "application/problem+json; charset=utf-8"

// Details es el payload de error que devuelven todos los endpoints.
type Details struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// New arma un problem con title = texto estándar del status.
func New(r *http.Request, status int, detail string) Details {
	d := Details{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
	if r != nil && r.URL != nil {
		d.Instance = r.URL.Path
	}
	return d
}

func Write(w http.ResponseWriter, d Details) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(d.Status)
	_ = json.NewEncoder(w).Encode(d)
}

// Error es el atajo usado por handlers y middlewares.
func Error(w http.ResponseWriter, r *http.Request, status int, detail string) {
	Write(w, New(r, status, detail))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusNotFound, "resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
