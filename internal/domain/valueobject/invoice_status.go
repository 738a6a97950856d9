package valueobject

import (
	"fmt"

	"github.com/tu-usuario/invoicing-api/internal/domain"
)

// InvoiceStatus estado del ciclo de vida de la factura.
type InvoiceStatus string

// Estados válidos. paid y cancelled son terminales.
const (
	StatusDraft     InvoiceStatus = "draft"
	StatusIssued    InvoiceStatus = "issued"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
)

// transitions tabla central de la máquina de estados: origen -> destinos permitidos.
// Toda validación de transición pasa por aquí; no hay chequeos dispersos.
var transitions = map[InvoiceStatus][]InvoiceStatus{
	StatusDraft:     {StatusIssued, StatusCancelled},
	StatusIssued:    {StatusPaid, StatusCancelled},
	StatusPaid:      {},
	StatusCancelled: {},
}

// ParseStatus valida una cadena contra el conjunto fijo de estados.
func ParseStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: estado de factura desconocido %q", domain.ErrInvalidInput, s)
	}
	return status, nil
}

// CanTransitionTo indica si la transición origen -> destino está permitida.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// String devuelve la forma primitiva.
func (s InvoiceStatus) String() string {
	return string(s)
}
