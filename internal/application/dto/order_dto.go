package dto

import "github.com/shopspring/decimal"

// OrderPositionRequest línea de una orden entrante. DeliveryDate llega como
// string ISO porque el emisor acepta fechas con y sin zona horaria; se parsea
// en la capa de persistencia.
type OrderPositionRequest struct {
	ProductID       string          `json:"product_id"`
	Price           decimal.Decimal `json:"price"`
	QuantityOrdered int             `json:"quantity_ordered"`
	DeliveryDate    string          `json:"delivery_date"`
}

// CreatePurchaseOrderRequest entrada para programar una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID     string                 `json:"supplier_id"`
	OrderPositions []OrderPositionRequest `json:"order_positions"`
}

// CreateSalesOrderRequest entrada para programar una orden de venta.
type CreateSalesOrderRequest struct {
	CustomerID     string                 `json:"customer_id"`
	OrderPositions []OrderPositionRequest `json:"order_positions"`
}
