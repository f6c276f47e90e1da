package postgres

import (
	"context"
	"fmt"

	"github.com/adam-drag/stock-mate/internal/domain"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
// La cabecera y las posiciones se insertan por separado para que el TxRunner
// pueda agruparlas en una sola transacción.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// InsertHeader persiste la cabecera de la orden de compra.
func (r *PurchaseOrderRepo) InsertHeader(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, supplier_id, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, order.ID, order.SupplierID, order.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order header: %w", err)
	}
	return nil
}

// InsertPosition persiste una posición asociada a la orden de compra indicada.
func (r *PurchaseOrderRepo) InsertPosition(ctx context.Context, purchaseOrderID string, position *entity.OrderPosition) error {
	query := `
		INSERT INTO purchase_order_positions (id, purchase_order_id, product_id, price, quantity_ordered, quantity_received, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		position.ID,
		purchaseOrderID,
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
		return fmt.Errorf("insert purchase order position: %w", err)
	}
	return nil
}
