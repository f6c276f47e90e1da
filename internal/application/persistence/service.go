package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/application/validation"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
	"github.com/adam-drag/stock-mate/pkg/ids"
)

// Service convierte DTOs validados en entidades persistidas con ID generado.
// Los fallos del store se propagan sin recuperar: el llamador (TopicRouter)
// debe fallar visible para que el transporte reentregue.
type Service struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	customers repository.CustomerRepository
	tx        TxRunner
}

// NewService construye el servicio de persistencia.
func NewService(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
	tx TxRunner,
) *Service {
	return &Service{
		products:  products,
		suppliers: suppliers,
		customers: customers,
		tx:        tx,
	}
}

// PersistProduct asigna ID y guarda el producto.
func (s *Service) PersistProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		ID:          ids.NewProductID(),
		Name:        in.Name,
		Description: in.Description,
	}
	if in.SafetyStock != nil {
		product.SafetyStock = *in.SafetyStock
	}
	if in.MaxStock != nil {
		product.MaxStock = *in.MaxStock
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// PersistSupplier asigna ID y guarda el proveedor.
func (s *Service) PersistSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:   ids.NewSupplierID(),
		Name: in.Name,
	}
	if err := s.suppliers.Insert(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// PersistCustomer asigna ID y guarda el cliente.
func (s *Service) PersistCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:   ids.NewCustomerID(),
		Name: in.Name,
	}
	if err := s.customers.Insert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// PersistPurchaseOrder guarda cabecera y TODAS las posiciones en una sola
// transacción; ante cualquier fallo no queda ninguna fila visible.
func (s *Service) PersistPurchaseOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	positions, err := buildOrderPositions(in.OrderPositions)
	if err != nil {
		return nil, err
	}
	order := &entity.PurchaseOrder{
		ID:             ids.NewPurchaseOrderID(),
		SupplierID:     in.SupplierID,
		CreatedAt:      time.Now(),
		OrderPositions: positions,
	}

	err = s.tx.Run(ctx, func(
		poRepo repository.PurchaseOrderRepository,
		_ repository.SalesOrderRepository,
		_ repository.InventoryRepository,
	) error {
		if err := poRepo.InsertHeader(ctx, order); err != nil {
			return err
		}
		for i := range order.OrderPositions {
			if err := poRepo.InsertPosition(ctx, order.ID, &order.OrderPositions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// PersistSalesOrder guarda cabecera y posiciones de una orden de venta; misma
// garantía transaccional que la orden de compra.
func (s *Service) PersistSalesOrder(ctx context.Context, in dto.CreateSalesOrderRequest) (*entity.SalesOrder, error) {
	positions, err := buildOrderPositions(in.OrderPositions)
	if err != nil {
		return nil, err
	}
	order := &entity.SalesOrder{
		ID:             ids.NewSalesOrderID(),
		CustomerID:     in.CustomerID,
		CreatedAt:      time.Now(),
		OrderPositions: positions,
	}

	err = s.tx.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		soRepo repository.SalesOrderRepository,
		_ repository.InventoryRepository,
	) error {
		if err := soRepo.InsertHeader(ctx, order); err != nil {
			return err
		}
		for i := range order.OrderPositions {
			if err := soRepo.InsertPosition(ctx, order.ID, &order.OrderPositions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// PersistInventory guarda la recepción e incrementa quantity_received en la
// posición referida dentro de la misma transacción. El incremento se calcula
// en el store para no perder updates concurrentes. Devuelve la entidad y la
// cantidad recibida acumulada tras el update.
func (s *Service) PersistInventory(ctx context.Context, in dto.CreateDeliveryRequest) (*entity.Inventory, int, error) {
	receivedAt, err := validation.ParseISOTime(in.ReceivedAt)
	if err != nil {
		return nil, 0, fmt.Errorf("parsear received_at %q: %w", in.ReceivedAt, err)
	}
	inventory := &entity.Inventory{
		ID:                      ids.NewInventoryID(),
		ProductID:               in.ProductID,
		PurchaseOrderPositionID: in.PurchaseOrderPositionID,
		QuantityReceived:        in.QuantityReceived,
		ReceivedAt:              receivedAt,
		CreatedBy:               in.CreatedBy,
		UpdatedBy:               in.UpdatedBy,
		Comments:                in.Comments,
	}

	var updatedQty int
	err = s.tx.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		_ repository.SalesOrderRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := invRepo.Insert(ctx, inventory); err != nil {
			return err
		}
		qty, err := invRepo.AddQuantityReceived(ctx, inventory.PurchaseOrderPositionID, inventory.QuantityReceived)
		if err != nil {
			return err
		}
		updatedQty = qty
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return inventory, updatedQty, nil
}

// buildOrderPositions genera ID por posición y parsea la fecha de entrega.
// Se procesan todas las posiciones, nunca solo la primera.
func buildOrderPositions(in []dto.OrderPositionRequest) ([]entity.OrderPosition, error) {
	positions := make([]entity.OrderPosition, 0, len(in))
	for _, p := range in {
		deliveryDate, err := validation.ParseISOTime(p.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("parsear delivery_date %q: %w", p.DeliveryDate, err)
		}
		positions = append(positions, entity.OrderPosition{
			ID:              ids.NewOrderPositionID(),
			ProductID:       p.ProductID,
			Price:           p.Price,
			QuantityOrdered: p.QuantityOrdered,
			DeliveryDate:    deliveryDate,
		})
	}
	return positions, nil
}
