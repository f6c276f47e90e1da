package repository

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Insert(ctx context.Context, customer *entity.Customer) error
}
