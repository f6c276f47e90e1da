package validation

import (
	"strings"
	"time"
)

// Prefijos y longitudes de IDs aceptados en payloads entrantes.
const (
	supplierIDPrefix = "sup_"
	productIDPrefix  = "prod_"
	customerIDPrefix = "cus_"

	maxIDLen = 10
)

// fieldRule regla de validez de un campo; el slice conserva el orden de
// evaluación (el primer campo inválido gana).
type fieldRule struct {
	field string
	check func(any) bool
}

func nameFieldValidator(v any) bool {
	s, ok := v.(string)
	return ok && len(s) > 0
}

// isValidID acota todo ID entrante: string no vacío de hasta maxIDLen chars.
func isValidID(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && len(s) > 0 && len(s) <= maxIDLen
}

func supplierIDValidator(v any) bool {
	s, ok := isValidID(v)
	return ok && strings.HasPrefix(s, supplierIDPrefix)
}

func customerIDValidator(v any) bool {
	s, ok := isValidID(v)
	return ok && strings.HasPrefix(s, customerIDPrefix)
}

func productIDValidator(v any) bool {
	s, ok := isValidID(v)
	return ok && strings.HasPrefix(s, productIDPrefix)
}

// isPositiveNumber acepta cualquier numérico JSON (> 0). json.Unmarshal
// entrega números como float64.
func isPositiveNumber(v any) bool {
	n, ok := v.(float64)
	return ok && n > 0
}

func priceValidator(v any) bool    { return isPositiveNumber(v) }
func quantityValidator(v any) bool { return isPositiveNumber(v) }

// dateValidator exige fecha ISO parseable y estrictamente futura. El corte es
// "ahora", no granularidad de día; inputs con y sin zona se normalizan antes
// de comparar.
func dateValidator(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	t, err := ParseISOTime(s)
	if err != nil {
		return false
	}
	return t.After(time.Now())
}

// stockLevelValidator: ausente o >= 0.
func stockLevelValidator(v any) bool {
	if v == nil {
		return true
	}
	n, ok := v.(float64)
	return ok && n >= 0
}

// orderPositionValidator valida una línea de orden completa.
func orderPositionValidator(v any) bool {
	position, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, rule := range orderPositionFieldRules {
		if !rule.check(position[rule.field]) {
			return false
		}
	}
	return true
}

// orderPositionsValidator exige secuencia no vacía cuyos elementos pasen todas
// las reglas de línea; corta en el primer elemento inválido.
func orderPositionsValidator(v any) bool {
	positions, ok := v.([]any)
	if !ok || len(positions) == 0 {
		return false
	}
	for _, position := range positions {
		if !orderPositionValidator(position) {
			return false
		}
	}
	return true
}

var (
	createProductRequiredFields = []string{"name"}
	createProductFieldRules     = []fieldRule{
		{"name", nameFieldValidator},
		{"safety_stock", stockLevelValidator},
		{"max_stock", stockLevelValidator},
	}

	createSupplierRequiredFields = []string{"name"}
	createSupplierFieldRules     = []fieldRule{
		{"name", nameFieldValidator},
	}

	createCustomerRequiredFields = []string{"name"}
	createCustomerFieldRules     = []fieldRule{
		{"name", nameFieldValidator},
	}

	createPurchaseOrderRequiredFields = []string{"supplier_id", "order_positions"}
	createPurchaseOrderFieldRules     = []fieldRule{
		{"supplier_id", supplierIDValidator},
		{"order_positions", orderPositionsValidator},
	}

	createSalesOrderRequiredFields = []string{"customer_id", "order_positions"}
	createSalesOrderFieldRules     = []fieldRule{
		{"customer_id", customerIDValidator},
		{"order_positions", orderPositionsValidator},
	}

	orderPositionFieldRules = []fieldRule{
		{"product_id", productIDValidator},
		{"price", priceValidator},
		{"quantity_ordered", quantityValidator},
		{"delivery_date", dateValidator},
	}
)
