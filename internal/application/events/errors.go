package events

// EventPersistenceError indica que la fila de bitácora o la publicación al bus
// fallaron; la causa original queda envuelta para errors.Is/As.
type EventPersistenceError struct {
	Cause error
}

func (e *EventPersistenceError) Error() string {
	return "no se pudo guardar o publicar el evento: " + e.Cause.Error()
}

func (e *EventPersistenceError) Unwrap() error {
	return e.Cause
}
