package shared

import "fmt"

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// ErrInvalidInput marks caller mistakes (bad pagination, malformed filters).
// Handlers map it to a 400 before any storage access has happened.
const ErrInvalidInput = Error("invalid input")

// ErrDatabaseUnavailable is returned when the archive cannot be reached.
const ErrDatabaseUnavailable = Error("database unavailable")

// NotFoundError is returned when a detail or sub-collection lookup by ID
// finds no matching row. It carries the entity type and the requested ID so
// the boundary can report both.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for the given entity type and ID.
func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}
