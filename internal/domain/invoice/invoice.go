// Package invoice contiene el agregado Invoice: máquina de estados del ciclo
// de vida y consistencia del monto frente a sus líneas.
package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicing-api/internal/domain"
	"github.com/tu-usuario/invoicing-api/internal/domain/valueobject"
)

// amountTolerance diferencia máxima tolerada entre el monto suministrado y la
// suma de las líneas antes de corregir el monto en la construcción.
var amountTolerance = decimal.NewFromFloat(0.0001)

// Invoice raíz del agregado. Posee en exclusiva su lista de líneas; las líneas
// no tienen identidad ni ciclo de vida fuera de la factura.
type Invoice struct {
	id        valueobject.InvoiceID
	customer  string
	amount    valueobject.Money
	number    valueobject.InvoiceNumber
	status    valueobject.InvoiceStatus
	items     []valueobject.InvoiceItem
	createdAt time.Time
}

// New crea una factura en estado draft. Si se suministran líneas y el monto no
// coincide con su suma (más allá de la tolerancia), el monto se corrige en
// silencio a la suma calculada; la construcción nunca falla por ese desajuste.
func New(id valueobject.InvoiceID, customer string, amount valueobject.Money, number valueobject.InvoiceNumber, items []valueobject.InvoiceItem) *Invoice {
	return Restore(id, customer, amount, number, valueobject.StatusDraft, items, time.Now().UTC())
}

// Restore reconstruye una factura desde su representación persistida, aplicando
// la misma corrección de monto que la creación.
func Restore(id valueobject.InvoiceID, customer string, amount valueobject.Money, number valueobject.InvoiceNumber, status valueobject.InvoiceStatus, items []valueobject.InvoiceItem, createdAt time.Time) *Invoice {
	inv := &Invoice{
		id:        id,
		customer:  customer,
		amount:    amount,
		number:    number,
		status:    status,
		items:     append([]valueobject.InvoiceItem(nil), items...),
		createdAt: createdAt,
	}
	if len(inv.items) > 0 {
		expected := inv.itemsTotal()
		if inv.amount.Decimal().Sub(expected.Decimal()).Abs().GreaterThan(amountTolerance) {
			inv.amount = expected
		}
	}
	return inv
}

// ID identificador del agregado.
func (inv *Invoice) ID() valueobject.InvoiceID { return inv.id }

// Customer nombre del cliente.
func (inv *Invoice) Customer() string { return inv.customer }

// Amount monto total vigente (última recomputación).
func (inv *Invoice) Amount() valueobject.Money { return inv.amount }

// Number número de factura.
func (inv *Invoice) Number() valueobject.InvoiceNumber { return inv.number }

// Status estado actual.
func (inv *Invoice) Status() valueobject.InvoiceStatus { return inv.status }

// CreatedAt fecha de creación.
func (inv *Invoice) CreatedAt() time.Time { return inv.createdAt }

// Items devuelve una copia de las líneas en orden de inserción.
func (inv *Invoice) Items() []valueobject.InvoiceItem {
	return append([]valueobject.InvoiceItem(nil), inv.items...)
}

// Issue marca la factura como emitida. Permitido: draft -> issued.
func (inv *Invoice) Issue() error {
	return inv.transitionTo(valueobject.StatusIssued)
}

// Pay marca la factura como pagada. Permitido: issued -> paid.
func (inv *Invoice) Pay() error {
	return inv.transitionTo(valueobject.StatusPaid)
}

// Cancel anula la factura. Permitido: draft|issued -> cancelled.
func (inv *Invoice) Cancel() error {
	return inv.transitionTo(valueobject.StatusCancelled)
}

// transitionTo aplica la tabla de transiciones centralizada en InvoiceStatus.
// Si la transición no está permitida, el estado queda intacto.
func (inv *Invoice) transitionTo(target valueobject.InvoiceStatus) error {
	if !inv.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, inv.status, target)
	}
	inv.status = target
	return nil
}

// AddItem agrega una línea y recalcula el monto. No está restringido por estado:
// el comportamiento de referencia permite agregar líneas fuera de draft, a
// diferencia de actualizar/eliminar. Tampoco se rechazan productId duplicados;
// actualizar/eliminar operan sobre la primera coincidencia.
func (inv *Invoice) AddItem(item valueobject.InvoiceItem) {
	inv.items = append(inv.items, item)
	inv.recalculateAmount()
}

// UpdateItemQuantity reemplaza la primera línea con ese productId por una copia
// con la nueva cantidad y recalcula el monto. Solo en estado draft y con
// cantidad positiva.
func (inv *Invoice) UpdateItemQuantity(productID string, quantity int) error {
	if inv.status != valueobject.StatusDraft {
		return fmt.Errorf("%w: estado actual %s", domain.ErrNotDraft, inv.status)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	for i, it := range inv.items {
		if it.ProductID() == productID {
			inv.items[i] = it.WithQuantity(quantity)
			inv.recalculateAmount()
			return nil
		}
	}
	return fmt.Errorf("%w: productId %q", domain.ErrItemNotFound, productID)
}

// RemoveItem elimina la primera línea con ese productId y recalcula el monto.
// Solo en estado draft.
func (inv *Invoice) RemoveItem(productID string) error {
	if inv.status != valueobject.StatusDraft {
		return fmt.Errorf("%w: estado actual %s", domain.ErrNotDraft, inv.status)
	}
	for i, it := range inv.items {
		if it.ProductID() == productID {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			inv.recalculateAmount()
			return nil
		}
	}
	return fmt.Errorf("%w: productId %q", domain.ErrItemNotFound, productID)
}

// recalculateAmount fija el monto a la suma exacta de cantidad × precio unitario
// sobre todas las líneas vigentes.
func (inv *Invoice) recalculateAmount() {
	inv.amount = inv.itemsTotal()
}

func (inv *Invoice) itemsTotal() valueobject.Money {
	total := valueobject.NewMoney(decimal.Zero)
	for _, it := range inv.items {
		total = total.Add(it.Subtotal())
	}
	return total
}
