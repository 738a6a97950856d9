package dto

import (
	"time"

	"github.com/tu-usuario/invoicing-api/internal/domain/invoice"
)

// La API expone campos en camelCase; el dominio y la persistencia usan sus
// propios nombres. El mapeo vive aquí, no disperso en los handlers.

// CreateInvoiceRequest body para POST /api/invoices.
// Amount es opcional; si va en cero la factura nace con monto 0.0.
type CreateInvoiceRequest struct {
	Customer      string  `json:"customer"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Amount        float64 `json:"amount,omitempty"`
}

// AddItemRequest body para POST /api/invoices/:id/items.
type AddItemRequest struct {
	ProductID   string  `json:"productId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// UpdateItemRequest body para PUT /api/invoices/:id/items/:productId.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ProductID   string  `json:"productId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	Customer      string                `json:"customer"`
	Amount        float64               `json:"amount"`
	Status        string                `json:"status"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToInvoiceResponse mapea el agregado a su DTO de salida.
func ToInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	items := inv.Items()
	out := make([]InvoiceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, InvoiceItemResponse{
			ProductID:   it.ProductID(),
			Description: it.Description(),
			Quantity:    it.Quantity(),
			UnitPrice:   it.UnitPrice().Primitive(),
		})
	}
	return &InvoiceResponse{
		ID:            inv.ID().String(),
		Customer:      inv.Customer(),
		Amount:        inv.Amount().Primitive(),
		Status:        inv.Status().String(),
		InvoiceNumber: inv.Number().String(),
		Items:         out,
		CreatedAt:     inv.CreatedAt(),
	}
}
