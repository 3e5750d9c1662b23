package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

var errStorage = errors.New("conexión rechazada")

// ── Fakes de los puertos de persistencia ──────────────────────────────────────

type fakeRecords struct {
	invoices     []*entity.Invoice
	transactions []*entity.Transaction
	quotes       []*entity.Quote
	fail         bool
	calls        atomic.Int32
}

type fakeInvoiceRepo struct{ r *fakeRecords }

func (f fakeInvoiceRepo) Create(context.Context, *entity.Invoice) error { return nil }
func (f fakeInvoiceRepo) Update(context.Context, *entity.Invoice) error { return nil }
func (f fakeInvoiceRepo) Delete(context.Context, string, string) error { return nil }
func (f fakeInvoiceRepo) GetByID(context.Context, string, string) (*entity.Invoice, error) {
	return nil, nil
}
func (f fakeInvoiceRepo) ListByUserID(_ context.Context, userID string) ([]*entity.Invoice, error) {
	f.r.calls.Add(1)
	if f.r.fail {
		return nil, errStorage
	}
	var out []*entity.Invoice
	for _, inv := range f.r.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakeTransactionRepo struct{ r *fakeRecords }

func (f fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (f fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (f fakeTransactionRepo) Delete(context.Context, string, string) error { return nil }
func (f fakeTransactionRepo) GetByID(context.Context, string, string) (*entity.Transaction, error) {
	return nil, nil
}
func (f fakeTransactionRepo) ListByUserID(_ context.Context, userID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range f.r.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeQuoteRepo struct{ r *fakeRecords }

func (f fakeQuoteRepo) Create(context.Context, *entity.Quote) error { return nil }
func (f fakeQuoteRepo) Update(context.Context, *entity.Quote) error { return nil }
func (f fakeQuoteRepo) Delete(context.Context, string, string) error { return nil }
func (f fakeQuoteRepo) GetByID(context.Context, string, string) (*entity.Quote, error) {
	return nil, nil
}
func (f fakeQuoteRepo) ListByUserID(_ context.Context, userID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range f.r.quotes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

// memStateRepo reproduce el upsert de PostgreSQL: updated_at = GREATEST(nuevo, anterior + 1ms).
type memStateRepo struct {
	mu     sync.Mutex
	states map[string]entity.DashboardState
	fail   bool
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{states: map[string]entity.DashboardState{}}
}

func (m *memStateRepo) Touch(_ context.Context, userID, eventType string, at time.Time) (*entity.DashboardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStorage
	}
	at = at.Truncate(time.Millisecond)
	if prev, ok := m.states[userID]; ok {
		if floor := prev.UpdatedAt.Add(time.Millisecond); at.Before(floor) {
			at = floor
		}
	}
	st := entity.DashboardState{UserID: userID, LastEventType: eventType, UpdatedAt: at}
	m.states[userID] = st
	return &st, nil
}

func (m *memStateRepo) GetOrCreate(_ context.Context, userID string, at time.Time) (*entity.DashboardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStorage
	}
	st, ok := m.states[userID]
	if !ok {
		st = entity.DashboardState{UserID: userID, LastEventType: entity.EventInitial, UpdatedAt: at.Truncate(time.Millisecond)}
		m.states[userID] = st
	}
	return &st, nil
}

// fakeClock reloj manual para TTL y marcas de tiempo.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
