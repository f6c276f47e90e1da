package entity

import "time"

// Inventory recepción de mercancía contra una posición de orden de compra.
// Crear una dispara el incremento de quantity_received en la posición referida.
type Inventory struct {
	ID                      string    `json:"id"`
	ProductID               string    `json:"product_id"`
	PurchaseOrderPositionID string    `json:"purchase_order_position_id"`
	QuantityReceived        int       `json:"quantity_received"`
	ReceivedAt              time.Time `json:"received_at"`
	CreatedBy               string    `json:"created_by"`
	UpdatedBy               string    `json:"updated_by"`
	Comments                string    `json:"comments"`
}
