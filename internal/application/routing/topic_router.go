package routing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/pkg/logger"
)

// EmitterName nombre lógico con el que el worker firma los eventos Persisted.
const EmitterName = "PersistenceService"

// Persister operaciones de persistencia que el router invoca por tipo de evento.
type Persister interface {
	PersistProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error)
	PersistSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error)
	PersistCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error)
	PersistPurchaseOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error)
	PersistSalesOrder(ctx context.Context, in dto.CreateSalesOrderRequest) (*entity.SalesOrder, error)
	PersistInventory(ctx context.Context, in dto.CreateDeliveryRequest) (*entity.Inventory, int, error)
}

// EventSender re-publica el evento Persisted con su bitácora.
type EventSender interface {
	SendEvent(ctx context.Context, topic string, eventType entity.EventType, emitter string, payload any) error
}

// TopicRouter despacha mensajes del bus al handler de persistencia según el
// event_type declarado en el sobre, no según el topic de transporte: un mismo
// topic puede transportar varios tipos de evento.
type TopicRouter struct {
	svc      Persister
	events   EventSender
	topicFor func(entity.EventType) string
	handlers map[entity.EventType]func(ctx context.Context, payload json.RawMessage) error
	log      *logger.Logger
}

// NewTopicRouter construye el router y puebla la tabla de despacho.
func NewTopicRouter(svc Persister, events EventSender, topicFor func(entity.EventType) string, log *logger.Logger) *TopicRouter {
	r := &TopicRouter{
		svc:      svc,
		events:   events,
		topicFor: topicFor,
		log:      log,
	}
	r.handlers = map[entity.EventType]func(ctx context.Context, payload json.RawMessage) error{
		entity.NewProductScheduled:       r.handleNewProduct,
		entity.NewSupplierScheduled:      r.handleNewSupplier,
		entity.NewCustomerScheduled:      r.handleNewCustomer,
		entity.NewPurchaseOrderScheduled: r.handleNewPurchaseOrder,
		entity.NewSalesOrderScheduled:    r.handleNewSalesOrder,
		entity.NewDeliveryScheduled:      r.handleNewDelivery,
	}
	return r
}

// Route procesa un lote de registros de forma secuencial. Un event_type sin
// handler se loguea y se salta sin abortar el lote; cualquier otro error
// (sobre malformado, fallo de store o de re-publicación) corta y propaga para
// que el transporte reentregue el lote completo.
func (r *TopicRouter) Route(ctx context.Context, records [][]byte) error {
	for _, record := range records {
		var envelope dto.EventEnvelope
		if err := json.Unmarshal(record, &envelope); err != nil {
			return fmt.Errorf("parsear sobre de evento: %w", err)
		}

		handler, ok := r.handlers[entity.EventType(envelope.EventType)]
		if !ok {
			r.log.Error().
				Str("event_type", envelope.EventType).
				Msg("event_type sin handler registrado; registro ignorado")
			continue
		}

		r.log.Info().Str("event_type", envelope.EventType).Msg("procesando registro")
		if err := handler(ctx, envelope.Payload); err != nil {
			return fmt.Errorf("procesar %s: %w", envelope.EventType, err)
		}
	}
	return nil
}

func (r *TopicRouter) handleNewProduct(ctx context.Context, payload json.RawMessage) error {
	var in dto.CreateProductRequest
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decodificar payload de producto: %w", err)
	}
	product, err := r.svc.PersistProduct(ctx, in)
	if err != nil {
		return err
	}
	return r.events.SendEvent(ctx, r.topicFor(entity.NewProductPersisted), entity.NewProductPersisted, EmitterName, product)
}

func (r *TopicRouter) handleNewSupplier(ctx context.Context, payload json.RawMessage) error {
	var in dto.CreateSupplierRequest
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decodificar payload de proveedor: %w", err)
	}
	supplier, err := r.svc.PersistSupplier(ctx, in)
	if err != nil {
		return err
	}
	return r.events.SendEvent(ctx, r.topicFor(entity.NewSupplierPersisted), entity.NewSupplierPersisted, EmitterName, supplier)
}

func (r *TopicRouter) handleNewCustomer(ctx context.Context, payload json.RawMessage) error {
	var in dto.CreateCustomerRequest
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decodificar payload de cliente: %w", err)
	}
	customer, err := r.svc.PersistCustomer(ctx, in)
	if err != nil {
		return err
	}
	return r.events.SendEvent(ctx, r.topicFor(entity.NewCustomerPersisted), entity.NewCustomerPersisted, EmitterName, customer)
}

func (r *TopicRouter) handleNewPurchaseOrder(ctx context.Context, payload json.RawMessage) error {
	var in dto.CreatePurchaseOrderRequest
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decodificar payload de orden de compra: %w", err)
	}
	order, err := r.svc.PersistPurchaseOrder(ctx, in)
	if err != nil {
		return err
	}
	return r.events.SendEvent(ctx, r.topicFor(entity.NewPurchaseOrderPersisted), entity.NewPurchaseOrderPersisted, EmitterName, order)
}

func (r *TopicRouter) handleNewSalesOrder(ctx context.Context, payload json.RawMessage) error {
	var in dto.CreateSalesOrderRequest
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decodificar payload de orden de venta: %w", err)
	}
	order, err := r.svc.PersistSalesOrder(ctx, in)
	if err != nil {
		return err
	}
	return r.events.SendEvent(ctx, r.topicFor(entity.NewSalesOrderPersisted), entity.NewSalesOrderPersisted, EmitterName, order)
}

func (r *TopicRouter) handleNewDelivery(ctx context.Context, payload json.RawMessage) error {
	var in dto.CreateDeliveryRequest
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decodificar payload de recepción: %w", err)
	}
	inventory, updatedQty, err := r.svc.PersistInventory(ctx, in)
	if err != nil {
		return err
	}
	r.log.Info().
		Str("position_id", inventory.PurchaseOrderPositionID).
		Int("quantity_received", updatedQty).
		Msg("cantidad recibida acumulada en la posición")
	return r.events.SendEvent(ctx, r.topicFor(entity.NewDeliveryPersisted), entity.NewDeliveryPersisted, EmitterName, inventory)
}
