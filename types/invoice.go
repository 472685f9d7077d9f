package types

import (
	ierr "github.com/nimblepay/nimblepay-go/errors"
	"github.com/samber/lo"
)

// EntityType discriminates the record kind carried in API responses.
type EntityType string

const (
	// EntityTypeInvoice marks a single invoice record
	EntityTypeInvoice EntityType = "invoice"
	// EntityTypeCollection marks a list envelope
	EntityTypeCollection EntityType = "collection"
)

// InvoiceStatus represents the server-side invoice lifecycle status. The SDK
// observes it but never drives it directly except via the issue, cancel and
// notify sub-actions.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusIssued        InvoiceStatus = "issued"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
	InvoiceStatusExpired       InvoiceStatus = "expired"
	InvoiceStatusDeleted       InvoiceStatus = "deleted"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusIssued,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid,
		InvoiceStatusCancelled,
		InvoiceStatusExpired,
		InvoiceStatusDeleted,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// NotifyMedium is the channel used for invoice notifications.
type NotifyMedium string

const (
	NotifyMediumSMS   NotifyMedium = "sms"
	NotifyMediumEmail NotifyMedium = "email"
)

func (m NotifyMedium) String() string {
	return string(m)
}

func (m NotifyMedium) Validate() error {
	allowed := []NotifyMedium{
		NotifyMediumSMS,
		NotifyMediumEmail,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid notification medium").
			WithHint("Please provide a valid notification medium").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
