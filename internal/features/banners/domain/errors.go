package domain

import "fmt"

// TransportError means the persistence endpoint could not be reached.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ServerRejection means the endpoint answered with a non-success status.
type ServerRejection struct {
	StatusCode int
}

func (e *ServerRejection) Error() string {
	return fmt.Sprintf("Server responded with %d", e.StatusCode)
}

// PersistenceError is the single failure the display layer sees from a save.
// Message is meant for the user; Cause keeps the TransportError or ServerRejection.
type PersistenceError struct {
	Message string
	Cause   error
}

func (e *PersistenceError) Error() string { return e.Message }
func (e *PersistenceError) Unwrap() error { return e.Cause }

// NewPersistenceError normalises any save failure.
func NewPersistenceError(cause error) *PersistenceError {
	if pe, ok := cause.(*PersistenceError); ok {
		return pe
	}
	return &PersistenceError{Message: cause.Error(), Cause: cause}
}
