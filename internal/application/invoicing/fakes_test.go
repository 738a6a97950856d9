package invoicing_test

import (
	"context"
	"sync"

	"github.com/tu-usuario/invoicing-api/internal/domain/invoice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria para los dos puertos
// ──────────────────────────────────────────────────────────────────────────────

// memRepo repositorio en memoria. Clona al guardar y al leer para simular la
// ida y vuelta por el almacenamiento real.
type memRepo struct {
	mu      sync.Mutex
	byID    map[string]*invoice.Invoice
	saveErr error
	saves   int
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[string]*invoice.Invoice)}
}

func clone(inv *invoice.Invoice) *invoice.Invoice {
	return invoice.Restore(inv.ID(), inv.Customer(), inv.Amount(), inv.Number(), inv.Status(), inv.Items(), inv.CreatedAt())
}

func (r *memRepo) Save(_ context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saves++
	r.byID[inv.ID().String()] = clone(inv)
	return clone(inv), nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(inv), nil
}

func (r *memRepo) ListAll(_ context.Context) ([]*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*invoice.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		out = append(out, clone(inv))
	}
	return out, nil
}

// publishedEvent evento capturado por el doble de publicador.
type publishedEvent struct {
	routingKey string
	payload    map[string]any
}

// fakePublisher publicador que registra lo publicado; puede inyectar un error.
type fakePublisher struct {
	mu         sync.Mutex
	events     []publishedEvent
	publishErr error
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, payload map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}

func (p *fakePublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}
