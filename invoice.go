package nimblepay

import (
	"context"

	"github.com/nimblepay/nimblepay-go/types"
)

// InvoiceService exposes the invoice lifecycle operations of the NimblePay
// API. Each operation issues at most one outbound call; repeated calls are
// independent round trips, nothing is cached.
type InvoiceService struct {
	resource
}

func newInvoiceService(c *Client) *InvoiceService {
	return &InvoiceService{resource{client: c, path: invoicesPath}}
}

// createInvoiceBody augments the draft with the fixed discriminator the API
// requires on invoice-type records.
type createInvoiceBody struct {
	Type types.EntityType `json:"type"`
	*CreateInvoiceRequest
}

// Create validates the draft and creates an invoice. Validation failures
// surface before any network call.
func (s *InvoiceService) Create(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	if req == nil {
		return nil, s.mandatoryField("request")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := createInvoiceBody{
		Type:                 types.EntityTypeInvoice,
		CreateInvoiceRequest: req,
	}

	var invoice Invoice
	if err := s.client.post(ctx, s.url(), body, &invoice); err != nil {
		return nil, err
	}

	s.client.logger.Infow("created invoice",
		"invoice_id", invoice.ID,
		"status", invoice.Status)
	return &invoice, nil
}

// List fetches invoices matching the filter. A nil filter lists with the
// default pagination. List never fails on filter shape except for values
// outside the accepted date set or negative pagination.
func (s *InvoiceService) List(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req == nil {
		req = &ListInvoicesRequest{}
	}

	query, err := req.toQuery()
	if err != nil {
		return nil, err
	}

	var resp ListInvoicesResponse
	if err := s.client.get(ctx, s.url(), query, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Get fetches a single invoice by id.
func (s *InvoiceService) Get(ctx context.Context, invoiceID string) (*Invoice, error) {
	if invoiceID == "" {
		return nil, s.missingIdentifier()
	}

	var invoice Invoice
	if err := s.client.get(ctx, s.url(invoiceID), nil, &invoice); err != nil {
		return nil, err
	}

	return &invoice, nil
}

// Issue moves a draft invoice to issued and returns the updated record.
func (s *InvoiceService) Issue(ctx context.Context, invoiceID string) (*Invoice, error) {
	if invoiceID == "" {
		return nil, s.missingIdentifier()
	}

	var invoice Invoice
	if err := s.client.post(ctx, s.url(invoiceID, "issue"), nil, &invoice); err != nil {
		return nil, err
	}

	s.client.logger.Infow("issued invoice",
		"invoice_id", invoice.ID,
		"status", invoice.Status)
	return &invoice, nil
}

// Cancel cancels an invoice and returns the updated record.
func (s *InvoiceService) Cancel(ctx context.Context, invoiceID string) (*Invoice, error) {
	if invoiceID == "" {
		return nil, s.missingIdentifier()
	}

	var invoice Invoice
	if err := s.client.post(ctx, s.url(invoiceID, "cancel"), nil, &invoice); err != nil {
		return nil, err
	}

	s.client.logger.Infow("cancelled invoice",
		"invoice_id", invoice.ID,
		"status", invoice.Status)
	return &invoice, nil
}

// Edit applies a partial update to an invoice and returns the updated
// record. A nil params payload is rejected before any network call.
func (s *InvoiceService) Edit(ctx context.Context, invoiceID string, params *UpdateInvoiceRequest) (*Invoice, error) {
	if invoiceID == "" {
		return nil, s.missingIdentifier()
	}
	if params == nil {
		return nil, s.mandatoryField("params")
	}

	var invoice Invoice
	if err := s.client.patch(ctx, s.url(invoiceID), params, &invoice); err != nil {
		return nil, err
	}

	return &invoice, nil
}

// NotifyBy asks the service to (re)send the invoice over the given medium.
// The response carries only a success flag, no invoice body.
func (s *InvoiceService) NotifyBy(ctx context.Context, invoiceID string, medium types.NotifyMedium) (*NotifyInvoiceResponse, error) {
	if invoiceID == "" {
		return nil, s.missingIdentifier()
	}
	if err := medium.Validate(); err != nil {
		return nil, err
	}

	var resp NotifyInvoiceResponse
	if err := s.client.post(ctx, s.url(invoiceID, "notify_by", medium.String()), nil, &resp); err != nil {
		return nil, err
	}

	s.client.logger.Infow("notified invoice",
		"invoice_id", invoiceID,
		"medium", medium,
		"success", resp.Success)
	return &resp, nil
}
