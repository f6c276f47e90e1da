package validation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adam-drag/stock-mate/internal/application/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// futureDate fecha ISO estrictamente futura para payloads de órdenes.
func futureDate() string {
	return time.Now().Add(48 * time.Hour).Format(time.RFC3339)
}

// validPositionJSON una posición de orden válida en JSON.
func validPositionJSON() string {
	return fmt.Sprintf(`{"product_id":"prod_1","price":9.99,"quantity_ordered":5,"delivery_date":%q}`, futureDate())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests producto
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCreateProduct_PayloadValido(t *testing.T) {
	body := []byte(`{"name":"Tornillo M8","description":"caja x100","safety_stock":10,"max_stock":500}`)
	result := validation.ValidateCreateProduct(body)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Message)
}

func TestValidateCreateProduct_SoloNombreEsSuficiente(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"name":"Tornillo M8"}`))
	assert.True(t, result.IsValid, "safety_stock y max_stock son opcionales")
}

func TestValidateCreateProduct_JSONMalformado(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"name":`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Invalid JSON payload", result.Message)
}

func TestValidateCreateProduct_NombreAusente(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"description":"sin nombre"}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field name is required", result.Message)
}

func TestValidateCreateProduct_NombreVacio(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"name":""}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field name is invalid", result.Message)
}

func TestValidateCreateProduct_StockNegativo(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"name":"Tornillo","safety_stock":-1}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field safety_stock is invalid", result.Message)
}

func TestValidateCreateProduct_StockCero(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"name":"Tornillo","safety_stock":0,"max_stock":0}`))
	assert.True(t, result.IsValid, "cero es un nivel de stock válido")
}

// La pasada de requeridos completa precede a la de validez: con name ausente
// Y safety_stock inválido, gana el mensaje de requerido.
func TestValidateCreateProduct_RequeridoGanaAInvalido(t *testing.T) {
	result := validation.ValidateCreateProduct([]byte(`{"safety_stock":-5}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field name is required", result.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests proveedor y cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCreateSupplier_Valido(t *testing.T) {
	result := validation.ValidateCreateSupplier([]byte(`{"name":"ACME"}`))
	assert.True(t, result.IsValid)
}

func TestValidateCreateSupplier_NombreAusente(t *testing.T) {
	result := validation.ValidateCreateSupplier([]byte(`{}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field name is required", result.Message)
}

func TestValidateCreateCustomer_NombreNoString(t *testing.T) {
	result := validation.ValidateCreateCustomer([]byte(`{"name":42}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field name is invalid", result.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests órdenes de compra y venta
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCreatePurchaseOrder_Valido(t *testing.T) {
	body := fmt.Sprintf(`{"supplier_id":"sup_1","order_positions":[%s,%s]}`,
		validPositionJSON(), validPositionJSON())
	result := validation.ValidateCreatePurchaseOrder([]byte(body))
	assert.True(t, result.IsValid, result.Message)
}

func TestValidateCreatePurchaseOrder_SinPosiciones(t *testing.T) {
	result := validation.ValidateCreatePurchaseOrder([]byte(`{"supplier_id":"sup_1","order_positions":[]}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field order_positions is invalid", result.Message)
}

func TestValidateCreatePurchaseOrder_PrefijoDeProveedorIncorrecto(t *testing.T) {
	body := fmt.Sprintf(`{"supplier_id":"cus_1","order_positions":[%s]}`, validPositionJSON())
	result := validation.ValidateCreatePurchaseOrder([]byte(body))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field supplier_id is invalid", result.Message)
}

func TestValidateCreatePurchaseOrder_IDDemasiadoLargo(t *testing.T) {
	body := fmt.Sprintf(`{"supplier_id":"sup_1234567890","order_positions":[%s]}`, validPositionJSON())
	result := validation.ValidateCreatePurchaseOrder([]byte(body))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field supplier_id is invalid", result.Message)
}

func TestValidateCreatePurchaseOrder_FechaDeEntregaPasada(t *testing.T) {
	position := `{"product_id":"prod_1","price":9.99,"quantity_ordered":5,"delivery_date":"2020-01-01"}`
	body := fmt.Sprintf(`{"supplier_id":"sup_1","order_positions":[%s]}`, position)
	result := validation.ValidateCreatePurchaseOrder([]byte(body))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field order_positions is invalid", result.Message)
}

func TestValidateCreatePurchaseOrder_PrecioCero(t *testing.T) {
	position := fmt.Sprintf(`{"product_id":"prod_1","price":0,"quantity_ordered":5,"delivery_date":%q}`, futureDate())
	body := fmt.Sprintf(`{"supplier_id":"sup_1","order_positions":[%s]}`, position)
	result := validation.ValidateCreatePurchaseOrder([]byte(body))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field order_positions is invalid", result.Message)
}

// Una sola posición inválida invalida toda la secuencia.
func TestValidateCreatePurchaseOrder_SegundaPosicionInvalida(t *testing.T) {
	bad := fmt.Sprintf(`{"product_id":"prod_1","price":1,"quantity_ordered":0,"delivery_date":%q}`, futureDate())
	body := fmt.Sprintf(`{"supplier_id":"sup_1","order_positions":[%s,%s]}`, validPositionJSON(), bad)
	result := validation.ValidateCreatePurchaseOrder([]byte(body))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field order_positions is invalid", result.Message)
}

func TestValidateCreateSalesOrder_Valido(t *testing.T) {
	body := fmt.Sprintf(`{"customer_id":"cus_1","order_positions":[%s]}`, validPositionJSON())
	result := validation.ValidateCreateSalesOrder([]byte(body))
	assert.True(t, result.IsValid, result.Message)
}

func TestValidateCreateSalesOrder_CustomerIDRequerido(t *testing.T) {
	body := fmt.Sprintf(`{"order_positions":[%s]}`, validPositionJSON())
	result := validation.ValidateCreateSalesOrder([]byte(body))
	require.False(t, result.IsValid)
	assert.Equal(t, "Field customer_id is required", result.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests NotSupported y ParseISOTime
// ──────────────────────────────────────────────────────────────────────────────

func TestNotSupported_RechazaCualquierPayload(t *testing.T) {
	result := validation.NotSupported([]byte(`{"product_id":"prod_1"}`))
	require.False(t, result.IsValid)
	assert.Equal(t, "Not supported yet", result.Message)
}

func TestParseISOTime_ConZonaHoraria(t *testing.T) {
	parsed, err := validation.ParseISOTime("2025-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), parsed.UTC())
}

func TestParseISOTime_SinZonaSeAsumeLocal(t *testing.T) {
	parsed, err := validation.ParseISOTime("2025-06-15T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Local, parsed.Location())
	assert.Equal(t, 10, parsed.Hour())
}

func TestParseISOTime_SoloFecha(t *testing.T) {
	parsed, err := validation.ParseISOTime("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
}

func TestParseISOTime_FormatoInvalido(t *testing.T) {
	_, err := validation.ParseISOTime("15/06/2025")
	assert.Error(t, err)
}
