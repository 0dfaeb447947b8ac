package models

import "errors"

// ErrorKind is the stable machine-readable cause attached to every
// recoverable failure. Callers branch on the kind, never on message text.
type ErrorKind string

const (
	ErrRoleMismatch      ErrorKind = "role_mismatch"
	ErrInvalidTransition ErrorKind = "invalid_transition"
	ErrNoPublisherScope  ErrorKind = "no_publisher_scope"
	ErrAmbiguousTarget   ErrorKind = "ambiguous_target"
	ErrNotOwner          ErrorKind = "not_owner"
	ErrAlreadyDecided    ErrorKind = "already_decided"
	ErrNotFound          ErrorKind = "not_found"
	ErrConflict          ErrorKind = "conflict"
	ErrUnauthorized      ErrorKind = "unauthorized"
	ErrValidation        ErrorKind = "validation_error"
)

type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// KindOf extracts the kind from err, or "" for non-domain errors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
