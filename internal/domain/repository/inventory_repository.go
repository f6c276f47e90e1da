package repository

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para recepciones de inventario.
// AddQuantityReceived debe calcular el incremento en la base de datos (nunca
// leer-modificar-escribir en la aplicación) para no perder updates bajo
// recepciones concurrentes contra la misma posición.
type InventoryRepository interface {
	Insert(ctx context.Context, inventory *entity.Inventory) error
	AddQuantityReceived(ctx context.Context, positionID string, quantity int) (int, error)
}
