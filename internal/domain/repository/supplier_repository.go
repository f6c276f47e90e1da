package repository

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Insert(ctx context.Context, supplier *entity.Supplier) error
}
