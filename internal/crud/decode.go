package crud

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMalformedBody        = errors.New("malformed body")
	ErrBodyTooLarge         = errors.New("body too large")
)

// ValidationError lista los campos inválidos por nombre JSON.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, tag := range e.Fields {
		parts = append(parts, f+": "+tag)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidator devuelve un validator que reporta campos con su tag json.
// Suma el tag "uriref": URI absoluta o relativa (RFC 3986).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("uriref", isURIReference)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// DecodeView valida Content-Type, parsea el JSON y aplica las reglas
// `validate` de la vista. Nada de esto toca el store.
func DecodeView[V any](r *http.Request, validate *validator.Validate) (V, error) {
	var v V

	if !isJSON(r.Header.Get("Content-Type")) {
		return v, ErrUnsupportedMediaType
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&v); err != nil {
		return v, bodyError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return v, bodyError(err)
		}
		return v, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fieldPath(fe)] = fe.Tag()
			}
			return v, &ValidationError{Fields: fields}
		}
		return v, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return v, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}

func isURIReference(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	_, err := url.Parse(s)
	return err == nil
}

func isJSON(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// fieldPath quita el nombre del struct raíz: "V1.photos[0]" => "photos[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
