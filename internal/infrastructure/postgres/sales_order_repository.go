package postgres

import (
	"context"
	"fmt"

	"github.com/adam-drag/stock-mate/internal/domain"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación de SalesOrderRepository sobre PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// InsertHeader persiste la cabecera de la orden de venta.
func (r *SalesOrderRepo) InsertHeader(ctx context.Context, order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, customer_id, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, order.ID, order.CustomerID, order.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales order header: %w", err)
	}
	return nil
}

// InsertPosition persiste una posición asociada a la orden de venta indicada.
func (r *SalesOrderRepo) InsertPosition(ctx context.Context, salesOrderID string, position *entity.OrderPosition) error {
	query := `
		INSERT INTO sales_order_positions (id, sales_order_id, product_id, price, quantity_ordered, quantity_received, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		position.ID,
		salesOrderID,
		position.ProductID,
		position.Price,
		position.QuantityOrdered,
		position.QuantityReceived,
		position.DeliveryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales order position: %w", err)
	}
	return nil
}
