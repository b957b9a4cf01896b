package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")        // 400
	ErrProductNotFound    = errors.New("product not found")    // 404
	ErrCatalogUnavailable = errors.New("catalog unavailable")  // 502
	ErrDeliveryFailed     = errors.New("notification failed")  // 502
	ErrServiceUnavailable = errors.New("service unavailable")  // 503
)

// FieldError identifies the request field that failed validation.
// It unwraps to ErrInvalidInput.
type FieldError struct {
	Field  string
	Reason string
}

func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// DeliveryError carries the messaging endpoint diagnostic verbatim.
// It unwraps to ErrDeliveryFailed.
type DeliveryError struct {
	Diagnostic string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDeliveryFailed, e.Diagnostic)
}

func (e *DeliveryError) Unwrap() error { return ErrDeliveryFailed }
