package validation

import (
	"encoding/json"
	"strings"
	"time"
)

// Result veredicto de validación. Message solo está poblado cuando IsValid es
// false y es apto para mostrarse al llamador HTTP.
type Result struct {
	IsValid bool
	Message string
}

func valid() Result {
	return Result{IsValid: true}
}

func invalid(message string) Result {
	return Result{IsValid: false, Message: message}
}

// Mensajes fijos de cara al llamador.
const (
	InvalidJSONMessage     = "Invalid JSON payload"
	InvalidMethodMessage   = "Invalid request method"
	InvalidEndpointMessage = "Invalid endpoint"
	NotSupportedMessage    = "Not supported yet"
)

// validatePayload aplica el esquema de un tipo de entidad: primero la pasada
// completa de campos requeridos (gana el primero ausente), después la pasada
// de validez campo a campo (gana el primero inválido). El orden importa.
func validatePayload(body []byte, required []string, rules []fieldRule) Result {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return invalid(InvalidJSONMessage)
	}

	for _, field := range required {
		if _, ok := payload[field]; !ok {
			return invalid("Field " + field + " is required")
		}
	}

	for _, rule := range rules {
		if !rule.check(payload[rule.field]) {
			return invalid("Field " + rule.field + " is invalid")
		}
	}

	return valid()
}

// ValidateCreateProduct valida el payload de creación de producto.
func ValidateCreateProduct(body []byte) Result {
	return validatePayload(body, createProductRequiredFields, createProductFieldRules)
}

// ValidateCreateSupplier valida el payload de creación de proveedor.
func ValidateCreateSupplier(body []byte) Result {
	return validatePayload(body, createSupplierRequiredFields, createSupplierFieldRules)
}

// ValidateCreateCustomer valida el payload de creación de cliente.
func ValidateCreateCustomer(body []byte) Result {
	return validatePayload(body, createCustomerRequiredFields, createCustomerFieldRules)
}

// ValidateCreatePurchaseOrder valida el payload de orden de compra.
func ValidateCreatePurchaseOrder(body []byte) Result {
	return validatePayload(body, createPurchaseOrderRequiredFields, createPurchaseOrderFieldRules)
}

// ValidateCreateSalesOrder valida el payload de orden de venta.
func ValidateCreateSalesOrder(body []byte) Result {
	return validatePayload(body, createSalesOrderRequiredFields, createSalesOrderFieldRules)
}

// NotSupported rechaza cualquier payload con el mensaje fijo de rutas aún no
// soportadas por el emisor (delivery, dispatch).
func NotSupported(_ []byte) Result {
	return invalid(NotSupportedMessage)
}

// isoLayouts formatos aceptados para fechas ISO; los que no llevan zona se
// interpretan en hora local.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISOTime parsea una fecha ISO-8601 con o sin zona horaria, sin fallar
// por la ausencia de zona (el input naive se asume hora local).
func ParseISOTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		var t time.Time
		var err error
		if strings.Contains(layout, "Z07") {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
