package postgres

import (
	"context"
	"fmt"

	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo bitácora de eventos sobre PostgreSQL (usable con pool o tx).
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Insert agrega una fila a la bitácora. La tabla es append-only: ningún
// componente la actualiza ni la borra.
func (r *EventRepo) Insert(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (event_id, event_type, emitter, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		event.EventID, string(event.EventType), event.Emitter, event.Message, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
