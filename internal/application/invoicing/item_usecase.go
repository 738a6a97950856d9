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

// ItemUseCase mutaciones de líneas de la factura. Aquí el publicador es
// opcional: sin publicador la operación persiste igual y omite el evento.
type ItemUseCase struct {
	repo   ports.InvoiceRepository
	events ports.EventPublisher
}

// NewItemUseCase construye el caso de uso. events puede ser nil.
func NewItemUseCase(repo ports.InvoiceRepository, events ports.EventPublisher) *ItemUseCase {
	return &ItemUseCase{repo: repo, events: events}
}

// AddItem agrega una línea, persiste y publica invoice.item.added.
func (uc *ItemUseCase) AddItem(ctx context.Context, invoiceID string, in dto.AddItemRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	item, err := valueobject.NewInvoiceItem(in.ProductID, in.Description, in.Quantity, valueobject.MoneyFromFloat(in.UnitPrice))
	if err != nil {
		return nil, err
	}
	inv.AddItem(item)
	updated, err := uc.repo.Save(ctx, inv)
	if err != nil {
		return nil, err
	}
	if err := uc.publish(ctx, ports.EventItemAdded, map[string]any{
		"invoice_id":  updated.ID().String(),
		"items_count": len(updated.Items()),
	}); err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(updated), nil
}

// UpdateItemQuantity cambia la cantidad de una línea (solo draft), persiste y
// publica invoice.item.updated.
func (uc *ItemUseCase) UpdateItemQuantity(ctx context.Context, invoiceID, productID string, quantity int) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := inv.UpdateItemQuantity(productID, quantity); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Save(ctx, inv)
	if err != nil {
		return nil, err
	}
	if err := uc.publish(ctx, ports.EventItemUpdated, map[string]any{
		"invoice_id": updated.ID().String(),
		"product_id": productID,
		"quantity":   quantity,
		"amount":     updated.Amount().Primitive(),
	}); err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(updated), nil
}

// RemoveItem elimina una línea (solo draft), persiste y publica
// invoice.item.removed.
func (uc *ItemUseCase) RemoveItem(ctx context.Context, invoiceID, productID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := inv.RemoveItem(productID); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Save(ctx, inv)
	if err != nil {
		return nil, err
	}
	if err := uc.publish(ctx, ports.EventItemRemoved, map[string]any{
		"invoice_id":  updated.ID().String(),
		"product_id":  productID,
		"items_count": len(updated.Items()),
	}); err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponse(updated), nil
}

func (uc *ItemUseCase) load(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("%w: repositorio", domain.ErrConfiguration)
	}
	inv, err := uc.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// publish emite el evento si hay publicador configurado. Un fallo del broker
// tras un Save exitoso se propaga sin revertir lo persistido.
func (uc *ItemUseCase) publish(ctx context.Context, routingKey string, payload map[string]any) error {
	if uc.events == nil {
		return nil
	}
	if err := uc.events.Publish(ctx, routingKey, payload); err != nil {
		return fmt.Errorf("publicar %s: %w", routingKey, err)
	}
	return nil
}
