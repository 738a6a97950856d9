package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicing-api/internal/application/ports"
	"github.com/tu-usuario/invoicing-api/internal/domain"
	"github.com/tu-usuario/invoicing-api/internal/domain/invoice"
	"github.com/tu-usuario/invoicing-api/internal/domain/valueobject"
)

var _ ports.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo adaptador PostgreSQL del puerto InvoiceRepository.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Save hace upsert por id y devuelve la factura releída de la base de datos
// (contrato de ida y vuelta: las líneas regresan re-codificadas desde JSONB).
func (r *InvoiceRepo) Save(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	itemsJSON, err := encodeItems(inv.Items())
	if err != nil {
		return nil, err
	}
	const query = `
		INSERT INTO invoices (id, customer, amount, invoice_number, status, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET customer       = EXCLUDED.customer,
		    amount         = EXCLUDED.amount,
		    invoice_number = EXCLUDED.invoice_number,
		    status         = EXCLUDED.status,
		    items          = EXCLUDED.items`
	_, err = r.pool.Exec(ctx, query,
		inv.ID().String(), inv.Customer(), inv.Amount().Decimal(),
		inv.Number().String(), inv.Status().String(), itemsJSON, inv.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, inv.Number())
		}
		return nil, fmt.Errorf("upsert invoice: %w", err)
	}
	return r.GetByID(ctx, inv.ID().String())
}

// GetByID obtiene una factura por id. Devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	const query = `
		SELECT id, customer, amount, invoice_number, status, items, created_at
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListAll devuelve todas las facturas ordenadas por fecha de creación.
func (r *InvoiceRepo) ListAll(ctx context.Context) ([]*invoice.Invoice, error) {
	const query = `
		SELECT id, customer, amount, invoice_number, status, items, created_at
		FROM invoices ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// scanInvoice mapea una fila a su agregado de dominio.
func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var (
		idStr     string
		customer  string
		amount    decimal.Decimal
		numberStr string
		statusStr string
		itemsJSON []byte
		createdAt time.Time
	)
	if err := row.Scan(&idStr, &customer, &amount, &numberStr, &statusStr, &itemsJSON, &createdAt); err != nil {
		return nil, err
	}
	id, err := valueobject.InvoiceIDFromString(idStr)
	if err != nil {
		return nil, err
	}
	number, err := valueobject.NewInvoiceNumber(numberStr)
	if err != nil {
		return nil, err
	}
	status, err := valueobject.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(itemsJSON)
	if err != nil {
		return nil, err
	}
	return invoice.Restore(id, customer, valueobject.NewMoney(amount), number, status, items, createdAt), nil
}
