package entity

import "time"

// EventType enumeración cerrada de los tipos de evento del dominio.
// Cada entidad tiene un par Scheduled/Persisted; los tipos de despacho y
// consumo existen solo para enrutamiento.
type EventType string

const (
	NewProductScheduled        EventType = "NewProductScheduled"
	NewProductPersisted        EventType = "NewProductPersisted"
	NewSupplierScheduled       EventType = "NewSupplierScheduled"
	NewSupplierPersisted       EventType = "NewSupplierPersisted"
	NewCustomerScheduled       EventType = "NewCustomerScheduled"
	NewCustomerPersisted       EventType = "NewCustomerPersisted"
	NewPurchaseOrderScheduled  EventType = "NewPurchaseOrderScheduled"
	NewPurchaseOrderPersisted  EventType = "NewPurchaseOrderPersisted"
	NewSalesOrderScheduled     EventType = "NewSalesOrderScheduled"
	NewSalesOrderPersisted     EventType = "NewSalesOrderPersisted"
	NewDeliveryScheduled       EventType = "NewDeliveryScheduled"
	NewDeliveryPersisted       EventType = "NewDeliveryPersisted"
	NewDispatchRequested       EventType = "NewDispatchRequested"
	RequestedDispatchSucceeded EventType = "RequestedDispatchSucceeded"
	RequestedDispatchFailed    EventType = "RequestedDispatchFailed"
	UsageUpdateScheduled       EventType = "UsageUpdateScheduled"
	UsageUpdatePersisted       EventType = "UsageUpdatePersisted"
)

// Event fila de la bitácora de eventos. Append-only: nunca se actualiza ni borra.
type Event struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	Emitter   string    `json:"emitter"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
