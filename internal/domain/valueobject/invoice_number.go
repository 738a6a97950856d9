package valueobject

import (
	"fmt"

	"github.com/tu-usuario/invoicing-api/internal/domain"
)

// InvoiceNumber número de factura asignado por el emisor. No vacío; la unicidad
// la garantiza el índice único de la base de datos, no el dominio.
type InvoiceNumber struct {
	value string
}

// NewInvoiceNumber valida y construye el número de factura.
func NewInvoiceNumber(value string) (InvoiceNumber, error) {
	if value == "" {
		return InvoiceNumber{}, fmt.Errorf("%w: el número de factura no puede estar vacío", domain.ErrInvalidInput)
	}
	return InvoiceNumber{value: value}, nil
}

// String devuelve la forma primitiva.
func (n InvoiceNumber) String() string {
	return n.value
}

// Equal compara por valor.
func (n InvoiceNumber) Equal(other InvoiceNumber) bool {
	return n.value == other.value
}
