package repository

import (
	"context"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
)

// EventRepository puerto de persistencia para la bitácora de eventos (DIP).
// La bitácora es append-only: solo se inserta.
type EventRepository interface {
	Insert(ctx context.Context, event *entity.Event) error
}
