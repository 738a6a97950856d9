package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicing-api/internal/domain"
)

// InvoiceItem línea de factura. Valor inmutable: "actualizar" un ítem significa
// reemplazarlo en la lista de la factura, nunca mutar la cantidad en sitio.
type InvoiceItem struct {
	productID   string
	description string
	quantity    int
	unitPrice   Money
}

// NewInvoiceItem valida y construye una línea. La cantidad debe ser positiva.
func NewInvoiceItem(productID, description string, quantity int, unitPrice Money) (InvoiceItem, error) {
	if productID == "" {
		return InvoiceItem{}, fmt.Errorf("%w: productId requerido", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return InvoiceItem{}, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	return InvoiceItem{
		productID:   productID,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID identificador del producto.
func (it InvoiceItem) ProductID() string { return it.productID }

// Description descripción de la línea.
func (it InvoiceItem) Description() string { return it.description }

// Quantity cantidad facturada.
func (it InvoiceItem) Quantity() int { return it.quantity }

// UnitPrice precio unitario.
func (it InvoiceItem) UnitPrice() Money { return it.unitPrice }

// Subtotal cantidad × precio unitario.
func (it InvoiceItem) Subtotal() Money {
	return it.unitPrice.Mul(it.quantity)
}

// WithQuantity devuelve una copia del ítem con otra cantidad (mismo producto,
// descripción y precio).
func (it InvoiceItem) WithQuantity(quantity int) InvoiceItem {
	return InvoiceItem{
		productID:   it.productID,
		description: it.description,
		quantity:    quantity,
		unitPrice:   it.unitPrice,
	}
}

// ToPrimitive serializa la línea a un mapa genérico. Siempre emite camelCase;
// datos antiguos en snake_case se aceptan solo al leer (ItemFromPrimitive).
func (it InvoiceItem) ToPrimitive() map[string]any {
	return map[string]any{
		"productId":   it.productID,
		"description": it.description,
		"quantity":    it.quantity,
		"unitPrice":   it.unitPrice.Primitive(),
	}
}

// ItemFromPrimitive reconstruye una línea desde un mapa genérico. Tolera las dos
// convenciones de nombres (snake_case y camelCase) para poder leer JSON persistido
// por versiones anteriores del sistema.
func ItemFromPrimitive(data map[string]any) (InvoiceItem, error) {
	productID := stringKey(data, "product_id", "productId")
	description := stringKey(data, "description")
	quantity, err := intKey(data, "quantity")
	if err != nil {
		return InvoiceItem{}, err
	}
	price, err := moneyKey(data, "unit_price", "unitPrice")
	if err != nil {
		return InvoiceItem{}, err
	}
	return NewInvoiceItem(productID, description, quantity, price)
}

// stringKey devuelve el primer valor string no vacío entre los alias dados.
func stringKey(data map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := data[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func intKey(data map[string]any, keys ...string) (int, error) {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			// encoding/json decodifica números JSON como float64
			return int(n), nil
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return 0, fmt.Errorf("%w: cantidad no numérica %q", domain.ErrInvalidInput, n.String())
			}
			return int(i), nil
		default:
			return 0, fmt.Errorf("%w: cantidad con tipo inesperado %T", domain.ErrInvalidInput, v)
		}
	}
	return 0, nil
}

func moneyKey(data map[string]any, keys ...string) (Money, error) {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		switch p := v.(type) {
		case float64:
			return MoneyFromFloat(p), nil
		case int:
			return NewMoney(decimal.NewFromInt(int64(p))), nil
		case int64:
			return NewMoney(decimal.NewFromInt(p)), nil
		case string:
			return MoneyFromString(p)
		case json.Number:
			return MoneyFromString(p.String())
		case decimal.Decimal:
			return NewMoney(p), nil
		default:
			return Money{}, fmt.Errorf("%w: precio unitario con tipo inesperado %T", domain.ErrInvalidInput, v)
		}
	}
	return Money{}, nil
}
