package lib

import (
	"errors"
	"minitienda_server/database"
)

// Database errors
var (
	// ErrConflict is returned on unique-constraint violations
	// (duplicate slug, name or email).
	ErrConflict = errors.New("conflict")

	// ErrProtected is returned when deleting a record that is still
	// referenced by another one (protect semantics).
	ErrProtected = errors.New("protected")

	// ErrInvalidReference is returned when an insert or update names a
	// related record that does not exist or cannot be used.
	ErrInvalidReference = errors.New("invalid reference")

	ErrNotFound = errors.New("not found")
)

// Order errors
var (
	// ErrInvalidTransition is returned when a status change is requested
	// out of a terminal order state.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// IsDomainError reports whether err wraps one of the sentinel errors above.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrProtected) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransition)
}

// MapPgError translates PostgreSQL SQLSTATE codes into the sentinel errors
// above. Foreign-key violations map to ErrProtected, which matches the
// delete path; insert and update paths use MapPgWriteError instead.
// Unrecognized errors pass through unchanged.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}

	switch database.SQLState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "23503": // foreign_key_violation
		return ErrProtected
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

// MapPgWriteError is MapPgError for insert and update statements, where a
// foreign-key violation means the caller referenced a record that does not
// exist rather than a delete being blocked.
func MapPgWriteError(err error) error {
	if err != nil && database.SQLState(err) == "23503" {
		return ErrInvalidReference
	}
	return MapPgError(err)
}
