package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adam-drag/stock-mate/internal/domain"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Insert persiste un registro de entrega recibida.
func (r *InventoryRepo) Insert(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, product_id, purchase_order_position_id, quantity_received, received_at, created_by, updated_by, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		inv.ID,
		inv.ProductID,
		inv.PurchaseOrderPositionID,
		inv.QuantityReceived,
		inv.ReceivedAt,
		inv.CreatedBy,
		inv.UpdatedBy,
		inv.Comments,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// AddQuantityReceived incrementa la cantidad recibida de la posición de la
// orden de compra y devuelve la cantidad acumulada resultante.
func (r *InventoryRepo) AddQuantityReceived(ctx context.Context, positionID string, quantity int) (int, error) {
	query := `
		UPDATE purchase_order_positions
		SET quantity_received = quantity_received + $1
		WHERE id = $2
		RETURNING quantity_received`
	var updated int
	err := r.q.QueryRow(ctx, query, quantity, positionID).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("add quantity received: %w", err)
	}
	return updated, nil
}
