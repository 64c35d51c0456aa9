// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ClientAPI defines the interface for Zoom API operations
// This allows for easy mocking and testing of the Zoom client
type ClientAPI interface {
	ListMeetings(ctx context.Context, userID string) ([]MeetingSummary, error)
	CreateMeeting(ctx context.Context, userID string, request *CreateMeetingRequest) (*CreateMeetingResponse, error)
	UpdateMeeting(ctx context.Context, meetingID string, request *UpdateMeetingRequest) error
	DeleteMeeting(ctx context.Context, meetingID string) error
}

const (
	// BaseURL is the base URL for Zoom API
	BaseURL = "https://api.zoom.us/v2"
	// AuthURL is the OAuth token endpoint
	AuthURL = "https://zoom.us/oauth/token"
	// DefaultClientTimeout is the default HTTP client timeout for Zoom API requests
	DefaultClientTimeout = 30 * time.Second
)

// Client represents a Zoom API client
type Client struct {
	httpClient *http.Client
	config     Config
	tokens     TokenSource
}

// Config holds the configuration for the Zoom client
type Config struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override auth URL for testing
	AuthURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// Credentials returns the OAuth app identity carried by the config.
func (c Config) Credentials() Credentials {
	return Credentials{AccountID: c.AccountID, ClientID: c.ClientID, ClientSecret: c.ClientSecret}
}

// Ensure that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// APIError is a non-success response from the Zoom API.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("zoom API error (code %d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("zoom API error (status %d): %s", e.StatusCode, e.Message)
}

// NewClient creates a new Zoom API client with its own token cache
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.AuthURL == "" {
		config.AuthURL = AuthURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}

	httpClient := &http.Client{
		Timeout:   config.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Client{
		httpClient: httpClient,
		config:     config,
		tokens:     NewTokenCache(config.Credentials(), config.AuthURL, httpClient),
	}
}

// NewClientWithTokenSource creates a client that takes its bearer tokens from tokens.
func NewClientWithTokenSource(config Config, tokens TokenSource) *Client {
	client := NewClient(config)
	client.tokens = tokens
	return client
}

// doRequest performs one authenticated HTTP request to the Zoom API.
// Non-success statuses are returned to the caller with the body intact.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	jsonBody, err := c.marshalRequestBody(body)
	if err != nil {
		return nil, err
	}

	req, err := c.createRequest(ctx, method, c.config.BaseURL+path, jsonBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.AuthorizationHeader, constants.BearerPrefix+token)

	slog.DebugContext(ctx, "making Zoom API request", "method", method, "path", path)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "Zoom API request failed",
			"method", method,
			"path", path,
			"duration", duration.String(),
			logging.ErrKey, err)
		return nil, fmt.Errorf("zoom request %s %s failed: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The token was revoked or rotated early; the next call exchanges again.
		c.tokens.Invalidate()
	}

	slog.InfoContext(ctx, "Zoom API request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", duration.String(),
	)

	return resp, nil
}

// marshalRequestBody marshals the request body to JSON
func (c *Client) marshalRequestBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return jsonBody, nil
}

// createRequest creates a new HTTP request with the given parameters
func (c *Client) createRequest(ctx context.Context, method, url string, jsonBody []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// parseErrorResponse turns a non-success response into an APIError
func parseErrorResponse(ctx context.Context, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Code = errResp.Code
		apiErr.Message = errResp.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	slog.ErrorContext(ctx, "Zoom API error response",
		"status", resp.StatusCode,
		"body", string(body),
		logging.ErrKey, apiErr)
	return apiErr
}
