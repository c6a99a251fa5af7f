package memory

import (
	"context"
	"strings"
	"sync"

	"shelter/internal/crud"

	"github.com/google/uuid"
)

// Datastore es un store genérico en memoria, seguro para uso concurrente.
// Guarda copias: lo que se lee es exactamente lo último que se guardó.
type Datastore[M any, PM crud.Model[M]] struct {
	mu    sync.RWMutex
	byID  map[string]M
	newID func() string
}

func NewDatastore[M any, PM crud.Model[M]]() *Datastore[M, PM] {
	return &Datastore[M, PM]{
		byID:  make(map[string]M),
		newID: NewID,
	}
}

// NewID genera un id opaco de 32 caracteres hex (uuid v4 sin guiones).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *Datastore[M, PM]) Get(ctx context.Context, id string) (M, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	if !ok {
		var zero M
		return zero, false
	}
	return PM(&m).Clone(), true
}

// List no garantiza orden.
func (s *Datastore[M, PM]) List(ctx context.Context) []M {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]M, 0, len(s.byID))
	for _, m := range s.byID {
		out = append(out, PM(&m).Clone())
	}
	return out
}

// Store asigna un id nuevo sólo si el modelo no trae uno; si lo trae,
// sobrescribe la entrada en ese id (last writer wins).
func (s *Datastore[M, PM]) Store(ctx context.Context, m M) M {
	stored := PM(&m).Clone()
	p := PM(&stored)

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.GetID() == "" {
		p.SetID(s.newID())
	}
	s.byID[p.GetID()] = stored

	return p.Clone()
}

func (s *Datastore[M, PM]) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

