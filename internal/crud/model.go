package crud

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Model es la restricción que cumple el puntero a cada modelo persistible.
// El store sólo necesita leer/asignar el id y copiar el valor.
type Model[M any] interface {
	*M
	GetID() string
	SetID(id string)
	// Clone devuelve una copia que no comparte slices ni punteros con el original.
	Clone() M
}

// Renderer convierte entre el modelo interno y una vista versionada.
// Ambas direcciones son puras y sin pérdida.
type Renderer[M, V any] interface {
	ToView(m M) V
	FromView(v V) M
}

// Datastore guarda un tipo de modelo indexado por id.
// "No encontrado" es un resultado normal, no un error.
type Datastore[M any] interface {
	Get(ctx context.Context, id string) (M, bool)
	List(ctx context.Context) []M
	Store(ctx context.Context, m M) M
	Remove(ctx context.Context, id string) bool
}
