package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/adam-drag/stock-mate/pkg/logger"
)

// Handler procesa el valor de un mensaje consumido.
type Handler func(ctx context.Context, value []byte) error

// Consumer consume mensajes de un tópico dentro de un grupo de consumidores.
// El offset se confirma solo después de que el handler procesa el mensaje con
// éxito, de modo que un fallo provoca la reentrega del mensaje.
type Consumer struct {
	reader *kafka.Reader
	log    *logger.Logger
}

// NewConsumer construye el consumidor para el tópico y grupo indicados.
func NewConsumer(brokers []string, groupID, topic string, log *logger.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
		log: log,
	}
}

// Consume procesa mensajes hasta que el contexto se cancele o el handler
// devuelva un error. En caso de error el offset queda sin confirmar y el
// mensaje se vuelve a entregar.
func (c *Consumer) Consume(ctx context.Context, handle Handler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := handle(ctx, msg.Value); err != nil {
			c.log.Error().
				Err(err).
				Str("topic", msg.Topic).
				Int64("offset", msg.Offset).
				Msg("Error procesando mensaje, no se confirma el offset")
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit message: %w", err)
		}
	}
}

// Close cierra el reader subyacente.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
