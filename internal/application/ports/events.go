package ports

import "context"

// Claves de enrutamiento de los eventos de dominio publicados tras persistir.
const (
	EventInvoiceCreated   = "invoice.created"
	EventInvoiceIssued    = "invoice.issued"
	EventInvoicePaid      = "invoice.paid"
	EventInvoiceCancelled = "invoice.cancelled"
	EventItemAdded        = "invoice.item.added"
	EventItemUpdated      = "invoice.item.updated"
	EventItemRemoved      = "invoice.item.removed"
)

// EventPublisher define el puerto de salida hacia el broker de mensajes.
// Publicación fire-and-forget: el payload es un mapa plano de primitivos.
// Cualquier adaptador (Kafka, mock en tests) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no el transporte.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload map[string]any) error
}
