package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPosition línea de una orden de compra o venta. Su ciclo de vida está
// atado a la orden padre; QuantityReceived se incrementa con cada recepción.
type OrderPosition struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Price            decimal.Decimal `json:"price"`
	QuantityOrdered  int             `json:"quantity_ordered"`
	QuantityReceived int             `json:"quantity_received"`
	DeliveryDate     time.Time       `json:"delivery_date"`
}

// PurchaseOrder orden de compra con al menos una posición.
type PurchaseOrder struct {
	ID             string          `json:"id"`
	SupplierID     string          `json:"supplier_id"`
	CreatedAt      time.Time       `json:"created_at"`
	OrderPositions []OrderPosition `json:"order_positions"`
}

// SalesOrder orden de venta; misma forma que la orden de compra.
type SalesOrder struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	CreatedAt      time.Time       `json:"created_at"`
	OrderPositions []OrderPosition `json:"order_positions"`
}
