package nimblepay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	ierr "github.com/nimblepay/nimblepay-go/errors"
	"github.com/nimblepay/nimblepay-go/httpclient"
	"github.com/nimblepay/nimblepay-go/testutil"
	"github.com/nimblepay/nimblepay-go/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	suite.Suite
	ctx        context.Context
	httpClient *testutil.MockHTTPClient
	client     *Client
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.httpClient = testutil.NewMockHTTPClient()

	client, err := NewClient(Config{
		KeyID:     "key_test",
		KeySecret: "secret_test",
		BaseURL:   "https://api.nimblepay.test",
	}, s.httpClient, nil)
	s.Require().NoError(err)
	s.client = client
}

func (s *InvoiceServiceSuite) registerInvoice(route string, inv Invoice) {
	body, err := json.Marshal(inv)
	s.Require().NoError(err)
	s.httpClient.RegisterJSONResponse(route, body)
}

func (s *InvoiceServiceSuite) validDraft() *CreateInvoiceRequest {
	return &CreateInvoiceRequest{
		CustomerID: "cust_001",
		Currency:   "USD",
		LineItems: []LineItem{
			{ItemID: "item_001", Amount: 4999},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateWithoutCustomerIdentity() {
	draft := s.validDraft()
	draft.CustomerID = ""

	_, err := s.client.Invoices.Create(s.ctx, draft)
	s.Error(err)
	s.True(ierr.IsInvalidCustomerIdentity(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestCreateWithBothCustomerForms() {
	draft := s.validDraft()
	draft.Customer = &CustomerDetails{Name: "Ada"}

	_, err := s.client.Invoices.Create(s.ctx, draft)
	s.Error(err)
	s.True(ierr.IsInvalidCustomerIdentity(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestCreateWithoutLineItems() {
	draft := s.validDraft()
	draft.LineItems = nil

	_, err := s.client.Invoices.Create(s.ctx, draft)
	s.Error(err)
	s.True(ierr.IsMandatoryField(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestCreateLineItemWithoutIdentity() {
	draft := s.validDraft()
	draft.LineItems = []LineItem{
		{Amount: 100},
		{ItemID: "item_002"},
	}

	_, err := s.client.Invoices.Create(s.ctx, draft)
	s.Error(err)
	s.True(ierr.IsInvalidLineItem(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestCreateLineItemWithoutPrice() {
	draft := s.validDraft()
	draft.LineItems = []LineItem{
		{Name: "Pro plan"},
	}

	_, err := s.client.Invoices.Create(s.ctx, draft)
	s.Error(err)
	s.True(ierr.IsInvalidLineItem(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestCreateNilRequest() {
	_, err := s.client.Invoices.Create(s.ctx, nil)
	s.Error(err)
	s.True(ierr.IsMandatoryField(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestCreateIssuesSinglePost() {
	s.registerInvoice("/v1/invoices", Invoice{
		ID:     "inv_001",
		Entity: types.EntityTypeInvoice,
		Status: types.InvoiceStatusDraft,
	})

	invoice, err := s.client.Invoices.Create(s.ctx, s.validDraft())
	s.Require().NoError(err)
	s.Equal("inv_001", invoice.ID)
	s.Equal(types.InvoiceStatusDraft, invoice.Status)

	s.Require().Equal(1, s.httpClient.CallCount())
	req := s.httpClient.LastRequest()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices", req.URL)

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(req.Body, &payload))
	s.Equal("invoice", payload["type"])
	s.Equal("cust_001", payload["customer_id"])
	s.Len(payload["line_items"], 1)
}

func (s *InvoiceServiceSuite) TestCreateSendsBasicAuth() {
	s.registerInvoice("/v1/invoices", Invoice{ID: "inv_001"})

	_, err := s.client.Invoices.Create(s.ctx, s.validDraft())
	s.Require().NoError(err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("key_test:secret_test"))
	s.Equal(want, s.httpClient.LastRequest().Headers["Authorization"])
}

func (s *InvoiceServiceSuite) TestListDefaults() {
	envelope, err := json.Marshal(ListInvoicesResponse{
		Entity: types.EntityTypeCollection,
		Count:  0,
		Items:  []*Invoice{},
	})
	s.Require().NoError(err)
	s.httpClient.RegisterJSONResponse("/v1/invoices", envelope)

	resp, err := s.client.Invoices.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(types.EntityTypeCollection, resp.Entity)

	s.Require().Equal(1, s.httpClient.CallCount())
	req := s.httpClient.LastRequest()
	s.Equal(http.MethodGet, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices?count=10&skip=0", req.URL)
}

func (s *InvoiceServiceSuite) TestListCoercesDates() {
	envelope, err := json.Marshal(ListInvoicesResponse{Entity: types.EntityTypeCollection})
	s.Require().NoError(err)
	s.httpClient.RegisterJSONResponse("/v1/invoices", envelope)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.client.Invoices.List(s.ctx, &ListInvoicesRequest{
		From:  from,
		To:    "2025-02-01",
		Count: lo.ToPtr(25),
		Skip:  lo.ToPtr(5),
	})
	s.Require().NoError(err)

	req := s.httpClient.LastRequest()
	s.Equal("https://api.nimblepay.test/v1/invoices?count=25&from=1735689600&skip=5&to=1738368000", req.URL)
}

func (s *InvoiceServiceSuite) TestListRejectsNegativePagination() {
	_, err := s.client.Invoices.List(s.ctx, &ListInvoicesRequest{
		Skip: lo.ToPtr(-1),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestListRejectsUnparseableDate() {
	_, err := s.client.Invoices.List(s.ctx, &ListInvoicesRequest{
		From: struct{}{},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestByIDOperationsRequireIdentifier() {
	cases := map[string]func() error{
		"get": func() error {
			_, err := s.client.Invoices.Get(s.ctx, "")
			return err
		},
		"issue": func() error {
			_, err := s.client.Invoices.Issue(s.ctx, "")
			return err
		},
		"cancel": func() error {
			_, err := s.client.Invoices.Cancel(s.ctx, "")
			return err
		},
		"edit": func() error {
			_, err := s.client.Invoices.Edit(s.ctx, "", &UpdateInvoiceRequest{})
			return err
		},
		"notify": func() error {
			_, err := s.client.Invoices.NotifyBy(s.ctx, "", types.NotifyMediumSMS)
			return err
		},
	}

	for name, call := range cases {
		err := call()
		s.Error(err, name)
		s.True(ierr.IsMissingIdentifier(err), name)
	}
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestGet() {
	s.registerInvoice("/v1/invoices/inv_001", Invoice{
		ID:     "inv_001",
		Status: types.InvoiceStatusIssued,
	})

	invoice, err := s.client.Invoices.Get(s.ctx, "inv_001")
	s.Require().NoError(err)
	s.Equal("inv_001", invoice.ID)

	req := s.httpClient.LastRequest()
	s.Equal(http.MethodGet, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices/inv_001", req.URL)
}

func (s *InvoiceServiceSuite) TestRepeatedGetIssuesIndependentRequests() {
	s.registerInvoice("/v1/invoices/inv_001", Invoice{ID: "inv_001"})

	_, err := s.client.Invoices.Get(s.ctx, "inv_001")
	s.Require().NoError(err)
	_, err = s.client.Invoices.Get(s.ctx, "inv_001")
	s.Require().NoError(err)

	s.Equal(2, s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestIssue() {
	s.registerInvoice("/v1/invoices/inv_001/issue", Invoice{
		ID:     "inv_001",
		Status: types.InvoiceStatusIssued,
	})

	invoice, err := s.client.Invoices.Issue(s.ctx, "inv_001")
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusIssued, invoice.Status)

	req := s.httpClient.LastRequest()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices/inv_001/issue", req.URL)
}

func (s *InvoiceServiceSuite) TestCancel() {
	s.registerInvoice("/v1/invoices/inv_001/cancel", Invoice{
		ID:     "inv_001",
		Status: types.InvoiceStatusCancelled,
	})

	invoice, err := s.client.Invoices.Cancel(s.ctx, "inv_001")
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusCancelled, invoice.Status)

	req := s.httpClient.LastRequest()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices/inv_001/cancel", req.URL)
}

func (s *InvoiceServiceSuite) TestEditRequiresParams() {
	_, err := s.client.Invoices.Edit(s.ctx, "inv_001", nil)
	s.Error(err)
	s.True(ierr.IsMandatoryField(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestEdit() {
	s.registerInvoice("/v1/invoices/inv_001", Invoice{
		ID:          "inv_001",
		Description: "updated",
	})

	invoice, err := s.client.Invoices.Edit(s.ctx, "inv_001", &UpdateInvoiceRequest{
		Description: lo.ToPtr("updated"),
	})
	s.Require().NoError(err)
	s.Equal("updated", invoice.Description)

	req := s.httpClient.LastRequest()
	s.Equal(http.MethodPatch, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices/inv_001", req.URL)

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(req.Body, &payload))
	s.Equal("updated", payload["description"])
}

func (s *InvoiceServiceSuite) TestNotifyBySMS() {
	s.httpClient.RegisterJSONResponse("/v1/invoices/inv_001/notify_by/sms", []byte(`{"success": true}`))

	resp, err := s.client.Invoices.NotifyBy(s.ctx, "inv_001", types.NotifyMediumSMS)
	s.Require().NoError(err)
	s.True(resp.Success)

	req := s.httpClient.LastRequest()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("https://api.nimblepay.test/v1/invoices/inv_001/notify_by/sms", req.URL)
}

func (s *InvoiceServiceSuite) TestNotifyByRejectsUnknownMedium() {
	_, err := s.client.Invoices.NotifyBy(s.ctx, "inv_001", types.NotifyMedium("carrier_pigeon"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Zero(s.httpClient.CallCount())
}

func (s *InvoiceServiceSuite) TestTransportErrorPropagates() {
	// No route registered: the mock answers 404 and the client surfaces it
	// as an HTTP error without reinterpretation.
	_, err := s.client.Invoices.Get(s.ctx, "inv_missing")
	s.Error(err)
	s.True(ierr.IsHTTPClient(err))

	httpErr, ok := httpclient.IsHTTPError(err)
	s.Require().True(ok)
	s.Equal(http.StatusNotFound, httpErr.StatusCode)
}
