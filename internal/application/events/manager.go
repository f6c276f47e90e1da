package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/internal/domain/repository"
	"github.com/adam-drag/stock-mate/pkg/ids"
	"github.com/adam-drag/stock-mate/pkg/logger"
)

// Manager da a cada evento de dominio una bitácora durable y un fan-out de
// mejor esfuerzo hacia el bus. La fila de bitácora se escribe ANTES del
// publish: si el publish falla después de un insert exitoso, la bitácora
// refleja la intención y el evento no se reintenta automáticamente.
type Manager struct {
	repo      repository.EventRepository
	publisher Publisher
	log       *logger.Logger
}

// NewManager construye el manager con el repo de bitácora y el publicador.
func NewManager(repo repository.EventRepository, publisher Publisher, log *logger.Logger) *Manager {
	return &Manager{repo: repo, publisher: publisher, log: log}
}

// SendEvent serializa el payload en un sobre {event_type, payload}, inserta la
// fila de bitácora y publica el sobre al topic dado. Cualquier fallo se
// devuelve como *EventPersistenceError con la causa envuelta.
func (m *Manager) SendEvent(ctx context.Context, topic string, eventType entity.EventType, emitter string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &EventPersistenceError{Cause: err}
	}

	envelope := dto.EventEnvelope{
		EventType: string(eventType),
		Payload:   raw,
	}
	message, err := json.Marshal(envelope)
	if err != nil {
		return &EventPersistenceError{Cause: err}
	}

	event := &entity.Event{
		EventID:   ids.NewEventID(),
		EventType: eventType,
		Emitter:   emitter,
		Message:   string(message),
		CreatedAt: time.Now(),
	}

	if err := m.repo.Insert(ctx, event); err != nil {
		m.log.Error().Err(err).
			Str("event_id", event.EventID).
			Str("event_type", string(eventType)).
			Msg("insert de bitácora falló")
		return &EventPersistenceError{Cause: err}
	}

	if err := m.publisher.Publish(ctx, topic, event.EventID, message); err != nil {
		m.log.Error().Err(err).
			Str("event_id", event.EventID).
			Str("event_type", string(eventType)).
			Str("topic", topic).
			Msg("publicación al bus falló; la bitácora ya registró la intención")
		return &EventPersistenceError{Cause: err}
	}

	m.log.Debug().
		Str("event_id", event.EventID).
		Str("event_type", string(eventType)).
		Str("topic", topic).
		Str("emitter", emitter).
		Msg("evento guardado y publicado")
	return nil
}
