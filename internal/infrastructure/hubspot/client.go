// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package hubspot implements the domain ContactManager on the HubSpot CRM
// and Forms APIs.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// APIBaseURL is the base URL of the CRM API
	APIBaseURL = "https://api.hubapi.com"
	// FormsBaseURL is the base URL of the unauthenticated Forms submission API
	FormsBaseURL = "https://api.hsforms.com"
	// DefaultClientTimeout is the default HTTP client timeout for HubSpot requests
	DefaultClientTimeout = 30 * time.Second
)

// Operation names reported in upstream errors and logs
const (
	OperationSubmitForm    = "submit_form"
	OperationSearchContact = "search_contact"
	OperationCreateContact = "create_contact"
	OperationUpdateContact = "update_contact"
	OperationCreateNote    = "create_note"
)

// Config holds the HubSpot credentials and endpoints
type Config struct {
	PortalID        string
	FormID          string
	PrivateAppToken string
	// FormsEnabled makes the portal and form ids part of the required configuration
	FormsEnabled bool

	// Optional: override base URLs for testing
	APIBaseURL   string
	FormsBaseURL string
	Timeout      time.Duration
}

// Client talks to HubSpot
type Client struct {
	httpClient *http.Client
	config     Config
}

// Ensure Client implements ContactManager
var _ domain.ContactManager = (*Client)(nil)

// NewClient creates a HubSpot client
func NewClient(config Config) *Client {
	if config.APIBaseURL == "" {
		config.APIBaseURL = APIBaseURL
	}
	if config.FormsBaseURL == "" {
		config.FormsBaseURL = FormsBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		config: config,
	}
}

// Configured reports whether the private app token, and the form ids when
// form submission is enabled, are present.
func (c *Client) Configured() bool {
	if c.config.PrivateAppToken == "" {
		return false
	}
	if c.config.FormsEnabled && (c.config.PortalID == "" || c.config.FormID == "") {
		return false
	}
	return true
}

// APIError is a non-success response from HubSpot
type APIError struct {
	StatusCode int
	Category   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("hubspot API error (%s, status %d): %s", e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hubspot API error (status %d): %s", e.StatusCode, e.Message)
}

// doJSON sends body as JSON to url and decodes a successful response into out.
// The private app token is attached only when authenticated is set.
func (c *Client) doJSON(ctx context.Context, operation, method, url string, authenticated bool, body, out any) error {
	ctx = logging.AppendCtx(ctx, slog.String("hubspot_operation", operation))

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewInternalError("failed to marshal hubspot request", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return domain.NewInternalError("failed to create hubspot request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set(constants.AuthorizationHeader, constants.BearerPrefix+c.config.PrivateAppToken)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "HubSpot request failed", "duration", duration.String(), logging.ErrKey, err)
		return domain.NewUpstreamError(operation, 0, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	slog.DebugContext(ctx, "HubSpot request completed",
		"method", method,
		"status", resp.StatusCode,
		"duration", duration.String(),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := parseErrorResponse(resp)
		slog.ErrorContext(ctx, "HubSpot error response", "status", resp.StatusCode, logging.ErrKey, apiErr)
		return domain.NewUpstreamError(operation, apiErr.StatusCode, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUpstreamError(operation, resp.StatusCode, fmt.Sprintf("undecodable response: %v", err))
	}
	return nil
}

func parseErrorResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Message  string `json:"message"`
		Category string `json:"category"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Message = errResp.Message
		apiErr.Category = errResp.Category
		return apiErr
	}
	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}
