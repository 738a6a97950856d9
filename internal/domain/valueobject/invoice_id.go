package valueobject

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/invoicing-api/internal/domain"
)

// InvoiceID identificador único de la factura (UUID). Llave primaria del agregado.
type InvoiceID struct {
	value uuid.UUID
}

// NewInvoiceID genera un identificador nuevo.
func NewInvoiceID() InvoiceID {
	return InvoiceID{value: uuid.New()}
}

// InvoiceIDFromString parsea la forma canónica. Cadena no UUID es error de validación.
func InvoiceIDFromString(s string) (InvoiceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return InvoiceID{}, fmt.Errorf("%w: id no es un UUID válido: %q", domain.ErrInvalidInput, s)
	}
	return InvoiceID{value: id}, nil
}

// String devuelve la forma canónica (primitiva) del identificador.
func (id InvoiceID) String() string {
	return id.value.String()
}

// IsZero indica si el identificador no fue asignado.
func (id InvoiceID) IsZero() bool {
	return id.value == uuid.Nil
}

// Equal compara por valor.
func (id InvoiceID) Equal(other InvoiceID) bool {
	return id.value == other.value
}
