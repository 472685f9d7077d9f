package nimblepay

import (
	ierr "github.com/nimblepay/nimblepay-go/errors"
	"github.com/nimblepay/nimblepay-go/types"
)

// Address is a postal address embedded in customer details. It has no
// lifecycle of its own.
type Address struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
	Country string `json:"country,omitempty"`
}

// CustomerDetails identifies the invoice recipient inline, as an alternative
// to referencing an existing customer by id.
type CustomerDetails struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Contact         string   `json:"contact,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

// LineItem is a single billable entry: either a reference to a catalog item
// (ItemID) or an inline-priced item (Name + Amount). Amount is in the
// smallest currency unit.
type LineItem struct {
	ItemID      string `json:"item_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// Validate checks that both the identity and the price of the line item are
// resolvable from the fields present.
func (li LineItem) Validate() error {
	if li.ItemID == "" && li.Name == "" {
		return ierr.NewError("line item needs either an item id or a name").
			WithHint("Provide item_id or name on every line item").
			Mark(ierr.ErrInvalidLineItem)
	}
	if li.ItemID == "" && li.Amount == 0 {
		return ierr.NewError("line item needs either an item id or an amount").
			WithHint("Provide item_id or amount on every line item").
			Mark(ierr.ErrInvalidLineItem)
	}
	return nil
}

// CreateInvoiceRequest is the caller-supplied invoice draft. It is consumed
// once per Create call and never retained by the SDK.
type CreateInvoiceRequest struct {
	Description string           `json:"description,omitempty"`
	CustomerID  string           `json:"customer_id,omitempty"`
	Customer    *CustomerDetails `json:"customer,omitempty"`
	OrderID     string           `json:"order_id,omitempty"`
	LineItems   []LineItem       `json:"line_items"`
	Currency    string           `json:"currency,omitempty"`
	ExpireBy    int64            `json:"expire_by,omitempty"`
	SMSNotify   *bool            `json:"sms_notify,omitempty"`
	EmailNotify *bool            `json:"email_notify,omitempty"`
	Notes       types.Metadata   `json:"notes,omitempty"`
}

// Validate applies the create preconditions in order, short-circuiting on
// the first failure. A failed validation means no network call was issued.
func (r *CreateInvoiceRequest) Validate() error {
	hasCustomerID := r.CustomerID != ""
	hasCustomer := r.Customer != nil

	if !hasCustomerID && !hasCustomer {
		return ierr.NewError("customer identity is required").
			WithHint("Provide either customer_id or an inline customer").
			Mark(ierr.ErrInvalidCustomerIdentity)
	}
	if hasCustomerID && hasCustomer {
		return ierr.NewError("ambiguous customer identity").
			WithHint("Provide exactly one of customer_id or an inline customer").
			Mark(ierr.ErrInvalidCustomerIdentity)
	}

	if len(r.LineItems) == 0 {
		return ierr.NewError("line_items is mandatory").
			WithHint("Provide at least one line item").
			WithReportableDetails(map[string]any{
				"field": "line_items",
			}).
			Mark(ierr.ErrMandatoryField)
	}

	for i, li := range r.LineItems {
		if err := li.Validate(); err != nil {
			return ierr.WithError(err).
				WithReportableDetails(map[string]any{
					"line_item_index": i,
				}).
				Mark(ierr.ErrInvalidLineItem)
		}
	}

	return nil
}

// UpdateInvoiceRequest carries the partial fields of an Edit call. Only
// non-nil fields are transmitted.
type UpdateInvoiceRequest struct {
	Description *string        `json:"description,omitempty"`
	ExpireBy    *int64         `json:"expire_by,omitempty"`
	SMSNotify   *bool          `json:"sms_notify,omitempty"`
	EmailNotify *bool          `json:"email_notify,omitempty"`
	Notes       types.Metadata `json:"notes,omitempty"`
}

// ListInvoicesRequest filters a List call. From and To accept any date-like
// value from the closed set understood by types.UnixSeconds; Count and Skip
// default to 10 and 0 when absent. All other filters pass through untouched.
type ListInvoicesRequest struct {
	From       any
	To         any
	Count      *int
	Skip       *int
	CustomerID string
	Status     types.InvoiceStatus
}

// Invoice is the identified record owned by the remote service. The SDK
// never mutates it directly, only requests mutations by id.
type Invoice struct {
	ID            string              `json:"id"`
	Entity        types.EntityType    `json:"entity"`
	InvoiceNumber string              `json:"invoice_number,omitempty"`
	CustomerID    string              `json:"customer_id,omitempty"`
	Customer      *CustomerDetails    `json:"customer_details,omitempty"`
	OrderID       string              `json:"order_id,omitempty"`
	LineItems     []LineItem          `json:"line_items"`
	Status        types.InvoiceStatus `json:"status"`
	Description   string              `json:"description,omitempty"`
	Currency      string              `json:"currency,omitempty"`
	Amount        int64               `json:"amount"`
	AmountPaid    int64               `json:"amount_paid"`
	AmountDue     int64               `json:"amount_due"`
	ShortURL      string              `json:"short_url,omitempty"`
	IssuedAt      int64               `json:"issued_at,omitempty"`
	PaidAt        int64               `json:"paid_at,omitempty"`
	CancelledAt   int64               `json:"cancelled_at,omitempty"`
	ExpiredAt     int64               `json:"expired_at,omitempty"`
	ExpireBy      int64               `json:"expire_by,omitempty"`
	CreatedAt     int64               `json:"created_at"`
	Notes         types.Metadata      `json:"notes,omitempty"`
}

// ListInvoicesResponse is the list envelope: entity discriminator, total
// count and the ordered invoice records.
type ListInvoicesResponse struct {
	Entity types.EntityType `json:"entity"`
	Count  int              `json:"count"`
	Items  []*Invoice       `json:"items"`
}

// NotifyInvoiceResponse carries the boolean outcome of a notify sub-action.
// The API returns no invoice body for it.
type NotifyInvoiceResponse struct {
	Success bool `json:"success"`
}
