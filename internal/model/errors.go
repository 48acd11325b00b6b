package model

import (
	"errors"
	"fmt"
)

// ValidationError reports caller input the till cannot act on. It is
// always recoverable; the caller corrects the input and retries.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup miss for a known entity kind. The caller
// should treat it as an absent result, not a failure.
type NotFoundError struct {
	Kind string
	Key  string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// PersistenceError wraps an I/O failure on a catalog or history file. The
// in-memory state it was persisting remains intact.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Shortfall describes one cart line that could not be covered by live
// stock during checkout validation.
type Shortfall struct {
	SKUID     string
	Requested int
	Available int
}

// Missing returns how many units short the line is.
func (s Shortfall) Missing() int {
	return s.Requested - s.Available
}

// RejectionError is the outcome of a checkout whose final stock validation
// failed. The cart is left untouched for correction; no stock was deducted
// and no transaction was created.
type RejectionError struct {
	Shortfalls []Shortfall
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	if len(e.Shortfalls) == 1 {
		s := e.Shortfalls[0]
		return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", s.SKUID, s.Requested, s.Available)
	}
	return fmt.Sprintf("insufficient stock for %d items", len(e.Shortfalls))
}

// IsValidation reports whether err is a validation failure, including a
// checkout rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	var re *RejectionError
	return errors.As(err, &ve) || errors.As(err, &re)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
