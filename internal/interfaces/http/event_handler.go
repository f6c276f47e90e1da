package http

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/adam-drag/stock-mate/internal/application/dto"
	"github.com/adam-drag/stock-mate/internal/application/validation"
	"github.com/adam-drag/stock-mate/internal/domain/entity"
	"github.com/adam-drag/stock-mate/pkg/logger"
)

// EmitterName nombre lógico con el que la API firma los eventos Scheduled.
const EmitterName = "EVENT_EMITTER"

// Respuestas fijas del emisor.
const (
	PublishedMessage    = "Event published to SNS"
	PublishErrorMessage = "Error publishing to SNS"
)

// EventSender publica un evento de dominio con su bitácora.
type EventSender interface {
	SendEvent(ctx context.Context, topic string, eventType entity.EventType, emitter string, payload any) error
}

// EventConfig asocia una ruta de emisión con su tipo de evento y su validador.
type EventConfig struct {
	EventType entity.EventType
	Validate  func(body []byte) validation.Result
}

// EventHandler maneja las rutas de emisión: valida el payload tal cual llegó
// y lo publica como evento Scheduled sin transformarlo.
type EventHandler struct {
	events   EventSender
	topicFor func(entity.EventType) string
	log      *logger.Logger
}

// NewEventHandler construye el handler de emisión.
func NewEventHandler(events EventSender, topicFor func(entity.EventType) string, log *logger.Logger) *EventHandler {
	return &EventHandler{events: events, topicFor: topicFor, log: log}
}

// Emit devuelve el handler de fiber para la configuración dada. El cuerpo se
// reenvía byte a byte como payload del sobre; el emisor no lo reescribe.
func (h *EventHandler) Emit(cfg EventConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()

		if result := cfg.Validate(body); !result.IsValid {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: result.Message})
		}

		// fiber reutiliza el buffer del body entre peticiones; copiar antes
		// de que salga del handler.
		payload := make(json.RawMessage, len(body))
		copy(payload, body)

		topic := h.topicFor(cfg.EventType)
		if err := h.events.SendEvent(c.UserContext(), topic, cfg.EventType, EmitterName, payload); err != nil {
			h.log.Error().Err(err).
				Str("event_type", string(cfg.EventType)).
				Msg("no se pudo emitir el evento")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: PublishErrorMessage})
		}

		return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: PublishedMessage})
	}
}
