package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicing-api/internal/domain"
)

// Money monto monetario inmutable. Igualdad por valor, sin moneda
// (el sistema maneja una sola divisa).
type Money struct {
	value decimal.Decimal
}

// NewMoney construye un Money desde un decimal.
func NewMoney(value decimal.Decimal) Money {
	return Money{value: value}
}

// MoneyFromFloat construye un Money desde un float64 (entrada de API/eventos).
func MoneyFromFloat(value float64) Money {
	return Money{value: decimal.NewFromFloat(value)}
}

// MoneyFromString parsea un monto desde texto. Entrada no numérica es error de validación.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: monto no numérico %q", domain.ErrInvalidInput, s)
	}
	return Money{value: d}, nil
}

// Decimal devuelve el valor decimal subyacente.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Primitive devuelve la representación primitiva (float64) para serialización y eventos.
func (m Money) Primitive() float64 {
	f, _ := m.value.Float64()
	return f
}

// Mul multiplica el monto por una cantidad entera (subtotal de línea).
func (m Money) Mul(qty int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(qty)))}
}

// Add suma dos montos.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Equal compara por valor.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) String() string {
	return m.value.String()
}
