package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// memRepo almacén en memoria genérico para facturas, transacciones y presupuestos.
type memRepo[T any] struct {
	mu    sync.Mutex
	items map[string]*T
	key   func(*T) (user, id string)
}

func newMemRepo[T any](key func(*T) (string, string)) *memRepo[T] {
	return &memRepo[T]{items: map[string]*T{}, key: key}
}

func (m *memRepo[T]) Create(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, id := m.key(v)
	cp := *v
	m.items[id] = &cp
	return nil
}

func (m *memRepo[T]) Update(ctx context.Context, v *T) error { return m.Create(ctx, v) }

func (m *memRepo[T]) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if u, _ := m.key(v); u != userID {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memRepo[T]) GetByID(_ context.Context, userID, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if u, _ := m.key(v); u != userID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *memRepo[T]) ListByUserID(_ context.Context, userID string) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*T
	for _, v := range m.items {
		if u, _ := m.key(v); u == userID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

type inlineTx struct{ stores repository.Stores }

func (t inlineTx) Run(_ context.Context, fn func(s repository.Stores) error) error {
	return fn(t.stores)
}

// memState marca de cambios con el mismo avance estricto que el upsert de PostgreSQL.
type memState struct {
	mu     sync.Mutex
	states map[string]entity.DashboardState
}

func (m *memState) Touch(_ context.Context, userID, eventType string, at time.Time) (*entity.DashboardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at = at.Truncate(time.Millisecond)
	if prev, ok := m.states[userID]; ok && !at.After(prev.UpdatedAt) {
		at = prev.UpdatedAt.Add(time.Millisecond)
	}
	st := entity.DashboardState{UserID: userID, LastEventType: eventType, UpdatedAt: at}
	m.states[userID] = st
	return &st, nil
}

func (m *memState) GetOrCreate(_ context.Context, userID string, at time.Time) (*entity.DashboardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[userID]
	if !ok {
		st = entity.DashboardState{UserID: userID, LastEventType: entity.EventInitial, UpdatedAt: at.Truncate(time.Millisecond)}
		m.states[userID] = st
	}
	return &st, nil
}
