// Package nimblepay is a typed Go client for the NimblePay invoicing API.
//
// Every operation validates request shape locally before any network call
// and delegates the actual HTTP round trip to an httpclient.Client, which
// owns timeout, retry and cancellation policy.
package nimblepay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	ierr "github.com/nimblepay/nimblepay-go/errors"
	"github.com/nimblepay/nimblepay-go/httpclient"
	"github.com/nimblepay/nimblepay-go/logger"
	"github.com/nimblepay/nimblepay-go/validator"
)

const (
	// DefaultBaseURL is the production API host
	DefaultBaseURL = "https://api.nimblepay.io"

	invoicesPath = "/v1/invoices"
)

// Config holds the credentials and endpoint settings for a Client.
type Config struct {
	// KeyID and KeySecret authenticate every request via basic auth
	KeyID     string `validate:"required"`
	KeySecret string `validate:"required"`
	// BaseURL overrides the production API host, mainly for sandboxes
	BaseURL string `validate:"omitempty,url"`
	// Timeout applies only to the default transport; custom transports
	// carry their own policy
	Timeout time.Duration
}

// Client is the entry point to the SDK. It holds the transport handle shared
// by every resource and is safe for concurrent use: no state is mutated
// after construction.
type Client struct {
	config     Config
	httpClient httpclient.Client
	logger     *logger.Logger

	Invoices *InvoiceService
}

// NewClient creates a Client from the given config. A nil httpClient falls
// back to the default net/http transport with the configured timeout; a nil
// log discards all SDK logging.
func NewClient(config Config, httpClient httpclient.Client, log *logger.Logger) (*Client, error) {
	if err := validator.ValidateRequest(config); err != nil {
		return nil, err
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	if httpClient == nil {
		httpClient = httpclient.NewClient(httpclient.ClientConfig{Timeout: config.Timeout})
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	c := &Client{
		config:     config,
		httpClient: httpClient,
		logger:     log,
	}
	c.Invoices = newInvoiceService(c)

	return c, nil
}

// resource binds a sub-path and the shared client to one resource type.
// Every resource service embeds it to get URL construction and the reusable
// request-shape error constructors.
type resource struct {
	client *Client
	path   string
}

// url joins the base URL, the resource path and any id/sub-action segments.
func (r *resource) url(segments ...string) string {
	parts := append([]string{r.client.config.BaseURL + r.path}, segments...)
	return strings.Join(parts, "/")
}

// missingIdentifier is the shared error for by-id operations called without
// an id. No network call is made once it fires.
func (r *resource) missingIdentifier() error {
	return ierr.NewError("resource identifier is required").
		WithHint("Provide a non-empty resource id").
		Mark(ierr.ErrMissingIdentifier)
}

// mandatoryField is the shared error for a missing structural field.
func (r *resource) mandatoryField(name string) error {
	return ierr.NewErrorf("%s is mandatory", name).
		WithHintf("Provide the %s field", name).
		WithReportableDetails(map[string]any{
			"field": name,
		}).
		Mark(ierr.ErrMandatoryField)
}

func (c *Client) get(ctx context.Context, rawURL string, query url.Values, out any) error {
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, out)
}

func (c *Client) post(ctx context.Context, rawURL string, body any, out any) error {
	return c.do(ctx, http.MethodPost, rawURL, body, out)
}

func (c *Client) patch(ctx context.Context, rawURL string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, rawURL, body, out)
}

// do issues a single HTTP round trip. Transport failures are propagated
// unchanged; this layer never retries or reinterprets them.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			c.logger.Errorw("failed to marshal request body",
				"error", err,
				"method", method,
				"url", rawURL)
			return ierr.WithError(err).
				WithHint("Invalid request data").
				Mark(ierr.ErrInternal)
		}
	}

	req := &httpclient.Request{
		Method: method,
		URL:    rawURL,
		Headers: map[string]string{
			"Authorization": c.basicAuth(),
			"Content-Type":  "application/json",
			"Accept":        "application/json",
		},
		Body: jsonBody,
	}

	resp, err := c.httpClient.Send(ctx, req)
	if err != nil {
		c.logger.Errorw("nimblepay API request failed",
			"error", err,
			"method", method,
			"url", rawURL)
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("nimblepay API returned error",
			"status_code", resp.StatusCode,
			"method", method,
			"url", rawURL)
		return httpclient.NewError(resp.StatusCode, resp.Body)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			c.logger.Errorw("failed to unmarshal response",
				"error", err,
				"method", method,
				"url", rawURL)
			return ierr.WithError(err).
				WithHint("Invalid response from the NimblePay API").
				Mark(ierr.ErrHTTPClient)
		}
	}

	c.logger.Debugw("nimblepay API request completed",
		"method", method,
		"url", rawURL,
		"status_code", resp.StatusCode)

	return nil
}

func (c *Client) basicAuth() string {
	creds := c.config.KeyID + ":" + c.config.KeySecret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}
