package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoicing-api/internal/domain"
	"github.com/tu-usuario/invoicing-api/internal/domain/valueobject"
)

func TestMoneyFromString_NoNumerico(t *testing.T) {
	_, err := valueobject.MoneyFromString("diez mil")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMoney_IgualdadPorValor(t *testing.T) {
	a := valueobject.MoneyFromFloat(10.5)
	b, err := valueobject.MoneyFromString("10.50")
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "10.5 y 10.50 son el mismo valor")
}

func TestMoney_MulYAdd(t *testing.T) {
	price := valueobject.MoneyFromFloat(5.0)
	subtotal := price.Mul(3)
	assert.True(t, subtotal.Equal(valueobject.NewMoney(decimal.NewFromInt(15))))

	total := subtotal.Add(valueobject.MoneyFromFloat(0.5))
	assert.InDelta(t, 15.5, total.Primitive(), 1e-9)
}
