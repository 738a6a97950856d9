package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoicing-api/internal/application/invoicing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC *invoicing.InvoiceUseCase
	ItemUC    *invoicing.ItemUseCase
	PDFGen    InvoicePDFGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	handler := NewInvoiceHandler(deps.InvoiceUC, deps.ItemUC, deps.PDFGen)
	invoices.Post("/", handler.Create)
	invoices.Get("/", handler.List)
	invoices.Get("/:id", handler.GetByID)
	invoices.Get("/:id/pdf", handler.PDF)

	// Acciones de cambio de estado
	invoices.Post("/:id/issue", handler.Issue)
	invoices.Post("/:id/pay", handler.Pay)
	invoices.Post("/:id/cancel", handler.Cancel)

	// Líneas de la factura
	invoices.Post("/:id/items", handler.AddItem)
	invoices.Put("/:id/items/:productId", handler.UpdateItem)
	invoices.Delete("/:id/items/:productId", handler.DeleteItem)
}
