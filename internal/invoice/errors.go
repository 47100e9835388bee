package invoice

import (
	"errors"
	"fmt"
)

// Common invoice export errors
var (
	// ErrMissingCompanyName is returned when an invoice is exported
	// without an issuing company name.
	ErrMissingCompanyName = errors.New("missing company name")

	// ErrNoLineItems is returned when an invoice is exported with an
	// empty line-item list.
	ErrNoLineItems = errors.New("invoice has no line items")

	// ErrRenderFailed is returned when the PDF document could not be
	// produced.
	ErrRenderFailed = errors.New("document rendering failed")
)

// ExportError wraps errors with context about a failed export.
type ExportError struct {
	// Op is the operation that failed (e.g., "RenderInvoice", "WriteFile").
	Op string

	// Err is the underlying error.
	Err error

	// InvoiceNumber identifies the invoice being exported (if available).
	InvoiceNumber string
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.InvoiceNumber != "" {
		return fmt.Sprintf("invoice: %s failed (invoice: %s): %v", e.Op, e.InvoiceNumber, e.Err)
	}
	return fmt.Sprintf("invoice: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *ExportError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewExportError creates a new ExportError for the given operation.
func NewExportError(op string, err error, invoiceNumber string) *ExportError {
	return &ExportError{
		Op:            op,
		Err:           err,
		InvoiceNumber: invoiceNumber,
	}
}

// ValidationError represents an invalid field on the invoice form. Err
// carries the sentinel the failure belongs to, so callers keep matching
// with errors.Is while the field and value stay available for reporting.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the sentinel for error unwrapping.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given
// sentinel.
func NewValidationError(field string, value interface{}, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}
