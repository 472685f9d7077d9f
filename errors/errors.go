package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the failure kinds the SDK can surface. Local
// validation failures are always one of the request-shape sentinels and are
// raised before any network call; ErrHTTPClient marks opaque transport
// failures which are propagated unchanged.
var (
	ErrValidation              = new(ErrCodeValidation, "validation error")
	ErrMissingIdentifier       = new(ErrCodeMissingIdentifier, "resource identifier missing")
	ErrMandatoryField          = new(ErrCodeMandatoryField, "mandatory field missing")
	ErrInvalidCustomerIdentity = new(ErrCodeInvalidCustomerIdentity, "invalid customer identity")
	ErrInvalidLineItem         = new(ErrCodeInvalidLineItem, "invalid line item")
	ErrHTTPClient              = new(ErrCodeHTTPClient, "http client error")
	ErrInternal                = new(ErrCodeInternal, "internal error")
)

const (
	ErrCodeValidation              = "validation_error"
	ErrCodeMissingIdentifier       = "missing_identifier"
	ErrCodeMandatoryField          = "mandatory_field_missing"
	ErrCodeInvalidCustomerIdentity = "invalid_customer_identity"
	ErrCodeInvalidLineItem         = "invalid_line_item"
	ErrCodeHTTPClient              = "http_client_error"
	ErrCodeInternal                = "internal_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsValidation checks if an error is a validation error of any kind,
// including the more specific request-shape sentinels below.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		IsMissingIdentifier(err) ||
		IsMandatoryField(err) ||
		IsInvalidCustomerIdentity(err) ||
		IsInvalidLineItem(err)
}

// IsMissingIdentifier checks if an error is a missing identifier error
func IsMissingIdentifier(err error) bool {
	return errors.Is(err, ErrMissingIdentifier)
}

// IsMandatoryField checks if an error is a mandatory field error
func IsMandatoryField(err error) bool {
	return errors.Is(err, ErrMandatoryField)
}

// IsInvalidCustomerIdentity checks if an error is a customer identity error
func IsInvalidCustomerIdentity(err error) bool {
	return errors.Is(err, ErrInvalidCustomerIdentity)
}

// IsInvalidLineItem checks if an error is a line item error
func IsInvalidLineItem(err error) bool {
	return errors.Is(err, ErrInvalidLineItem)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}
