package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoicing-api/internal/application/dto"
	"github.com/tu-usuario/invoicing-api/internal/application/invoicing"
	"github.com/tu-usuario/invoicing-api/internal/domain"
)

// InvoicePDFGenerator puerto de salida para la representación PDF de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *dto.InvoiceResponse) ([]byte, error)
}

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	invoiceUC *invoicing.InvoiceUseCase
	itemUC    *invoicing.ItemUseCase
	pdfGen    InvoicePDFGenerator
}

// NewInvoiceHandler construye el handler. pdfGen puede ser nil (el endpoint PDF responde 501).
func NewInvoiceHandler(invoiceUC *invoicing.InvoiceUseCase, itemUC *invoicing.ItemUseCase, pdfGen InvoicePDFGenerator) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, itemUC: itemUC, pdfGen: pdfGen}
}

// Create crea una factura en estado draft.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.invoiceUC.Create(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// GetByID obtiene una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.invoiceUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// List devuelve todas las facturas.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.invoiceUC.List(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(invoices)
}

// Issue emite la factura (draft -> issued).
// POST /api/invoices/:id/issue
func (h *InvoiceHandler) Issue(c *fiber.Ctx) error {
	inv, err := h.invoiceUC.Issue(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// Pay paga la factura (issued -> paid).
// POST /api/invoices/:id/pay
func (h *InvoiceHandler) Pay(c *fiber.Ctx) error {
	inv, err := h.invoiceUC.Pay(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// Cancel anula la factura (draft|issued -> cancelled).
// POST /api/invoices/:id/cancel
func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	inv, err := h.invoiceUC.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// AddItem agrega una línea a la factura.
// POST /api/invoices/:id/items
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.itemUC.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// UpdateItem cambia la cantidad de una línea.
// PUT /api/invoices/:id/items/:productId
func (h *InvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.itemUC.UpdateItemQuantity(c.Context(), c.Params("id"), c.Params("productId"), in.Quantity)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// DeleteItem elimina una línea.
// DELETE /api/invoices/:id/items/:productId
func (h *InvoiceHandler) DeleteItem(c *fiber.Ctx) error {
	inv, err := h.itemUC.RemoveItem(c.Context(), c.Params("id"), c.Params("productId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(inv)
}

// PDF devuelve la representación PDF de la factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	if h.pdfGen == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "generación de PDF no configurada"})
	}
	inv, err := h.invoiceUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	data, err := h.pdfGen.GenerateInvoicePDF(c.Context(), inv)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+inv.InvoiceNumber+`.pdf"`)
	return c.Send(data)
}

// errorResponse traduce los errores de dominio/aplicación a códigos HTTP:
// no encontrado -> 404, validación y reglas de negocio -> 400, número
// duplicado -> 409, configuración y fallos de colaboradores -> 500.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrNotDraft):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateNumber):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
