package postgres

import (
	"context"
	"fmt"

	"github.com/adam-drag/stock-mate/internal/domain"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Insert persiste un nuevo cliente.
func (r *CustomerRepo) Insert(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name)
		VALUES ($1, $2)`
	_, err := r.q.Exec(ctx, query, customer.ID, customer.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}
