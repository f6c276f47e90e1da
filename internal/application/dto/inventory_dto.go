package dto

// CreateDeliveryRequest entrada para registrar una recepción de mercancía
// contra una posición de orden de compra. Llega solo por el bus; el endpoint
// HTTP de delivery aún no está soportado.
type CreateDeliveryRequest struct {
	ProductID               string `json:"product_id"`
	PurchaseOrderPositionID string `json:"purchase_order_position_id"`
	QuantityReceived        int    `json:"quantity_received"`
	ReceivedAt              string `json:"received_at"`
	CreatedBy               string `json:"created_by"`
	UpdatedBy               string `json:"updated_by"`
	Comments                string `json:"comments"`
}
