package events

import "context"

// Publisher puerto de publicación hacia el bus de eventos. El topic lo decide
// siempre el llamador (configuración), nunca el manager.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message []byte) error
}
