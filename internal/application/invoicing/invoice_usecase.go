// Package invoicing contiene los casos de uso de la aplicación: orquestan
// cargar el agregado por el puerto de repositorio, invocar una operación de
// dominio, persistir y publicar el evento correspondiente. Los efectos van
// siempre en ese orden; si la persistencia falla no se publica nada.
package invoicing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/invoicing-api/internal/application/dto"
	"github.com/tu-usuario/invoicing-api/internal/application/ports"
	"github.com/tu-usuario/invoicing-api/internal/domain"
	"github.com/tu-usuario/invoicing-api/internal/domain/invoice"
	"github.com/tu-usuario/invoicing-api/internal/domain/valueobject"
)

// InvoiceUseCase creación, consulta y transiciones de estado de facturas.
// Para estas operaciones el publicador de eventos es obligatorio: su ausencia
// es un error de configuración, no una omisión silenciosa.
type InvoiceUseCase struct {
	repo   ports.InvoiceRepository
	events ports.EventPublisher
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo ports.InvoiceRepository, events ports.EventPublisher) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, events: events}
}

// Create crea una factura en estado draft con id recién generado, la persiste
// y publica invoice.created.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := uc.requireCollaborators(); err != nil {
		return nil, err
	}
	number, err := valueobject.NewInvoiceNumber(in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	inv := invoice.New(valueobject.NewInvoiceID(), in.Customer, valueobject.MoneyFromFloat(in.Amount), number, nil)
	created, err := uc.repo.Save(ctx, inv)
	if err != nil {
		return nil, err
	}
	err = uc.events.Publish(ctx, ports.EventInvoiceCreated, map[string]any{
		"invoice_id":    created.ID().String(),
		"customer":      created.Customer(),
		"amount":        created.Amount().Primitive(),
		"status":        created.Status().String(),
		"invoiceNumber": created.Number().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("publicar %s: %w", ports.EventInvoiceCreated, err)
	}
	return dto.ToInvoiceResponse(created), nil
}

// GetByID devuelve la factura o domain.ErrNotFound. Sin mutación ni eventos.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("%w: repositorio", domain.ErrConfiguration)
	}
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToInvoiceResponse(inv), nil
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("%w: repositorio", domain.ErrConfiguration)
	}
	invoices, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.ToInvoiceResponse(inv))
	}
	return out, nil
}

// Issue transiciona draft -> issued y publica invoice.issued.
func (uc *InvoiceUseCase) Issue(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	return uc.transition(ctx, id, ports.EventInvoiceIssued, (*invoice.Invoice).Issue)
}

// Pay transiciona issued -> paid y publica invoice.paid.
func (uc *InvoiceUseCase) Pay(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	return uc.transition(ctx, id, ports.EventInvoicePaid, (*invoice.Invoice).Pay)
}

// Cancel transiciona draft|issued -> cancelled y publica invoice.cancelled.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	return uc.transition(ctx, id, ports.EventInvoiceCancelled, (*invoice.Invoice).Cancel)
}

// transition forma común de las tres transiciones: cargar, mutar, persistir,
// publicar {invoice_id, status}.
func (uc *InvoiceUseCase) transition(ctx context.Context, id, routingKey string, op func(*invoice.Invoice) error) (*dto.InvoiceResponse, error) {
	if err := uc.requireCollaborators(); err != nil {
		return nil, err
	}
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := op(inv); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Save(ctx, inv)
	if err != nil {
		return nil, err
	}
	err = uc.events.Publish(ctx, routingKey, map[string]any{
		"invoice_id": updated.ID().String(),
		"status":     updated.Status().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("publicar %s: %w", routingKey, err)
	}
	return dto.ToInvoiceResponse(updated), nil
}

func (uc *InvoiceUseCase) requireCollaborators() error {
	if uc.repo == nil {
		return fmt.Errorf("%w: repositorio", domain.ErrConfiguration)
	}
	if uc.events == nil {
		return fmt.Errorf("%w: publicador de eventos", domain.ErrConfiguration)
	}
	return nil
}
