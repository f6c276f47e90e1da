package persistence

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una sola transacción y una
// sola conexión; Commit al retornar nil, Rollback completo ante cualquier
// error. Una orden nunca debe quedar parcialmente visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		poRepo repository.PurchaseOrderRepository,
		soRepo repository.SalesOrderRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
