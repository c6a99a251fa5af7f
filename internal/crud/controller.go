package crud

import (
	"context"
)

// Controller implementa el protocolo CRUD (list/create/get/modify) sobre
// un Datastore y un Renderer, sin saber nada de HTTP.
type Controller[M any, V any, PM Model[M]] struct {
	store    Datastore[M]
	renderer Renderer[M, V]
}

// NewController arma un controller sobre store, convirtiendo con renderer.
func NewController[M any, V any, PM Model[M]](store Datastore[M], renderer Renderer[M, V]) *Controller[M, V, PM] {
	return &Controller[M, V, PM]{
		store:    store,
		renderer: renderer,
	}
}

// List devuelve todos los registros como vistas; nunca nil.
func (c *Controller[M, V, PM]) List(ctx context.Context) []V {
	items := c.store.List(ctx)

	out := make([]V, 0, len(items))
	for _, m := range items {
		out = append(out, c.renderer.ToView(m))
	}
	return out
}

// Create siempre genera un id nuevo: el id que venga en la vista se descarta,
// así un create nunca pisa un registro existente.
func (c *Controller[M, V, PM]) Create(ctx context.Context, v V) (V, string) {
	m := c.renderer.FromView(v)
	PM(&m).SetID("")

	stored := c.store.Store(ctx, m)
	return c.renderer.ToView(stored), PM(&stored).GetID()
}

// Get devuelve ErrNotFound si el id no existe.
func (c *Controller[M, V, PM]) Get(ctx context.Context, id string) (V, error) {
	m, ok := c.store.Get(ctx, id)
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return c.renderer.ToView(m), nil
}

// Modify reemplaza el registro completo (no merge). Nunca crea: si el id no
// existe devuelve ErrNotFound. El id del path manda sobre el del body.
func (c *Controller[M, V, PM]) Modify(ctx context.Context, id string, v V) (V, error) {
	if _, ok := c.store.Get(ctx, id); !ok {
		var zero V
		return zero, ErrNotFound
	}

	m := c.renderer.FromView(v)
	PM(&m).SetID(id)

	modified := c.store.Store(ctx, m)
	return c.renderer.ToView(modified), nil
}
