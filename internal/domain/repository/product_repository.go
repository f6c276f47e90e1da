package repository

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Insert(ctx context.Context, product *entity.Product) error
}
