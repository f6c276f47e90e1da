package dto

import "encoding/json"

// EventEnvelope sobre de mensaje que viaja por el bus. Un mismo topic puede
// transportar varios tipos de evento; el enrutamiento se decide por EventType,
// nunca por el nombre del topic.
type EventEnvelope struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

// MessageResponse cuerpo de respuesta del API emisor.
type MessageResponse struct {
	Message string `json:"message"`
}

// QueryErrorResponse cuerpo de error del API de consultas.
type QueryErrorResponse struct {
	Error string `json:"error"`
}
