package ports

import (
	"context"

	"github.com/tu-usuario/invoicing-api/internal/domain/invoice"
)

// InvoiceRepository define el puerto de persistencia del agregado Invoice.
// El adaptador concreto (PostgreSQL, memoria en tests) es responsable de la
// identidad durable y de la consistencia lectura-tras-escritura.
type InvoiceRepository interface {
	// Save hace upsert por identificador y devuelve la representación
	// persistida (ida y vuelta por el almacenamiento, incluida la
	// re-codificación de las líneas).
	Save(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error)
	// GetByID busca por la forma canónica del identificador.
	// Devuelve nil, nil si no existe; "no encontrado" nunca es error aquí.
	GetByID(ctx context.Context, id string) (*invoice.Invoice, error)
	// ListAll devuelve todas las facturas. Capacidad opcional: un adaptador
	// mínimo puede devolver domain.ErrConfiguration envuelto si no la soporta.
	ListAll(ctx context.Context) ([]*invoice.Invoice, error)
}
