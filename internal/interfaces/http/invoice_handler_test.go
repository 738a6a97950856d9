package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoicing-api/internal/application/dto"
	"github.com/tu-usuario/invoicing-api/internal/application/invoicing"
	"github.com/tu-usuario/invoicing-api/internal/domain/invoice"
	apphttp "github.com/tu-usuario/invoicing-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los puertos (el HTTP layer se prueba de punta a punta
// contra los casos de uso reales, sin base de datos ni broker)
// ──────────────────────────────────────────────────────────────────────────────

type memRepo struct {
	mu   sync.Mutex
	byID map[string]*invoice.Invoice
}

func cloneInvoice(inv *invoice.Invoice) *invoice.Invoice {
	return invoice.Restore(inv.ID(), inv.Customer(), inv.Amount(), inv.Number(), inv.Status(), inv.Items(), inv.CreatedAt())
}

func (r *memRepo) Save(_ context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[inv.ID().String()] = cloneInvoice(inv)
	return cloneInvoice(inv), nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(inv), nil
}

func (r *memRepo) ListAll(_ context.Context) ([]*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*invoice.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		out = append(out, cloneInvoice(inv))
	}
	return out, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, map[string]any) error { return nil }

func buildTestApp() *fiber.App {
	repo := &memRepo{byID: make(map[string]*invoice.Invoice)}
	pub := noopPublisher{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InvoiceUC: invoicing.NewInvoiceUseCase(repo, pub),
		ItemUC:    invoicing.NewItemUseCase(repo, pub),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInvoice(t *testing.T, resp *http.Response) dto.InvoiceResponse {
	t.Helper()
	defer resp.Body.Close()
	var inv dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inv))
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo por la API: crear, agregar línea, actualizar cantidad, emitir,
// intentar mutaciones prohibidas y pagar. Cada paso verifica estado y monto.
func TestAPI_FlujoCompleto(t *testing.T) {
	app := buildTestApp()

	// Crear
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		Customer: "Alice", InvoiceNumber: "INV-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeInvoice(t, resp)
	assert.Equal(t, "draft", created.Status)
	assert.InDelta(t, 0.0, created.Amount, 1e-9)

	base := "/api/invoices/" + created.ID

	// Agregar línea: 2 x 5.0 = 10.0
	resp = doJSON(t, app, http.MethodPost, base+"/items", dto.AddItemRequest{
		ProductID: "P1", Description: "Producto", Quantity: 2, UnitPrice: 5.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 10.0, decodeInvoice(t, resp).Amount, 1e-9)

	// Actualizar cantidad: 3 x 5.0 = 15.0
	resp = doJSON(t, app, http.MethodPut, base+"/items/P1", dto.UpdateItemRequest{Quantity: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 15.0, decodeInvoice(t, resp).Amount, 1e-9)

	// Emitir
	resp = doJSON(t, app, http.MethodPost, base+"/issue", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "issued", decodeInvoice(t, resp).Status)

	// Re-emitir: regla de negocio -> 400
	resp = doJSON(t, app, http.MethodPost, base+"/issue", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Eliminar línea fuera de draft -> 400, monto intacto
	resp = doJSON(t, app, http.MethodDelete, base+"/items/P1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 15.0, decodeInvoice(t, resp).Amount, 1e-9)

	// Pagar
	resp = doJSON(t, app, http.MethodPost, base+"/pay", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "paid", decodeInvoice(t, resp).Status)

	// Cancelar una pagada -> 400
	resp = doJSON(t, app, http.MethodPost, base+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_NoEncontrada(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/44444444-4444-4444-4444-444444444444", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices/44444444-4444-4444-4444-444444444444/issue", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_ValidacionDeEntrada(t *testing.T) {
	app := buildTestApp()

	// Número de factura vacío -> 400
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{Customer: "Alice"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Cantidad no positiva en una línea -> 400
	created := decodeInvoice(t, doJSON(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		Customer: "Alice", InvoiceNumber: "INV-1",
	}))
	resp = doJSON(t, app, http.MethodPost, "/api/invoices/"+created.ID+"/items", dto.AddItemRequest{
		ProductID: "P1", Quantity: 0, UnitPrice: 5.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ItemInexistente(t *testing.T) {
	app := buildTestApp()
	created := decodeInvoice(t, doJSON(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		Customer: "Alice", InvoiceNumber: "INV-1",
	}))

	resp := doJSON(t, app, http.MethodPut, "/api/invoices/"+created.ID+"/items/NO-EXISTE", dto.UpdateItemRequest{Quantity: 2})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Listado(t *testing.T) {
	app := buildTestApp()
	for _, n := range []string{"INV-1", "INV-2"} {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{Customer: "Alice", InvoiceNumber: n})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var all []dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.Len(t, all, 2)
}

// Sin generador de PDF configurado el endpoint responde 501, no 500.
func TestAPI_PDFNoConfigurado(t *testing.T) {
	app := buildTestApp()
	created := decodeInvoice(t, doJSON(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		Customer: "Alice", InvoiceNumber: "INV-1",
	}))

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+created.ID+"/pdf", nil)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}
