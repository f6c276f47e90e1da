package ids

import (
	"strings"

	"github.com/google/uuid"
)

// Prefijos legibles por humanos para cada tipo de entidad. El sufijo aleatorio
// hace la probabilidad de colisión despreciable a la escala del sistema; no se
// verifica unicidad global.
const (
	ProductPrefix       = "prod_"
	SupplierPrefix      = "sup_"
	CustomerPrefix      = "cus_"
	PurchaseOrderPrefix = "po_"
	SalesOrderPrefix    = "so_"
	OrderPositionPrefix = "op_"
	InventoryPrefix     = "inv_"
	EventPrefix         = "evnt_"
)

// suffix devuelve el último segmento de un UUID v4 (12 hex chars).
func suffix() string {
	s := uuid.NewString()
	return s[strings.LastIndex(s, "-")+1:]
}

// NewProductID genera un ID de producto ("prod_" + sufijo aleatorio).
func NewProductID() string { return ProductPrefix + suffix() }

// NewSupplierID genera un ID de proveedor.
func NewSupplierID() string { return SupplierPrefix + suffix() }

// NewCustomerID genera un ID de cliente.
func NewCustomerID() string { return CustomerPrefix + suffix() }

// NewPurchaseOrderID genera un ID de orden de compra.
func NewPurchaseOrderID() string { return PurchaseOrderPrefix + suffix() }

// NewSalesOrderID genera un ID de orden de venta.
func NewSalesOrderID() string { return SalesOrderPrefix + suffix() }

// NewOrderPositionID genera un ID de posición de orden.
func NewOrderPositionID() string { return OrderPositionPrefix + suffix() }

// NewInventoryID genera un ID de recepción de inventario.
func NewInventoryID() string { return InventoryPrefix + suffix() }

// NewEventID genera un ID de evento para la bitácora.
func NewEventID() string { return EventPrefix + suffix() }
