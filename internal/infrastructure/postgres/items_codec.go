package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/invoicing-api/internal/domain/valueobject"
)

// encodeItems serializa las líneas a JSONB como secuencia de mapas primitivos
// (camelCase canónico hacia afuera). Lista vacía se guarda como NULL.
func encodeItems(items []valueobject.InvoiceItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}
	primitives := make([]map[string]any, 0, len(items))
	for _, it := range items {
		primitives = append(primitives, it.ToPrimitive())
	}
	data, err := json.Marshal(primitives)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return data, nil
}

// decodeItems reconstruye las líneas desde JSONB. Tolera claves snake_case de
// datos persistidos por versiones anteriores del sistema.
func decodeItems(data []byte) ([]valueobject.InvoiceItem, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var primitives []map[string]any
	if err := json.Unmarshal(data, &primitives); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]valueobject.InvoiceItem, 0, len(primitives))
	for _, p := range primitives {
		item, err := valueobject.ItemFromPrimitive(p)
		if err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
