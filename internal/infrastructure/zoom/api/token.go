// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

// TokenRefreshMargin is how long before expiry a cached token stops being served.
const TokenRefreshMargin = 60 * time.Second

// TokenSource hands out bearer tokens for the Zoom API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// Credentials identifies the Server-to-Server OAuth app.
type Credentials struct {
	AccountID    string
	ClientID     string
	ClientSecret string
}

// Complete reports whether all three values are present.
func (c Credentials) Complete() bool {
	return c.AccountID != "" && c.ClientID != "" && c.ClientSecret != ""
}

// TokenCache keeps a single process-wide access token and refreshes it
// through the account_credentials grant when it is about to expire.
type TokenCache struct {
	credentials Credentials
	oauthConfig *clientcredentials.Config
	httpClient  *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time

	group singleflight.Group
	now   func() time.Time
}

var _ TokenSource = (*TokenCache)(nil)

// NewTokenCache creates a token cache for the given credentials. An empty
// authURL selects the Zoom OAuth endpoint.
func NewTokenCache(credentials Credentials, authURL string, httpClient *http.Client) *TokenCache {
	if authURL == "" {
		authURL = AuthURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultClientTimeout}
	}

	return &TokenCache{
		credentials: credentials,
		httpClient:  httpClient,
		oauthConfig: &clientcredentials.Config{
			ClientID:     credentials.ClientID,
			ClientSecret: credentials.ClientSecret,
			TokenURL:     authURL,
			EndpointParams: url.Values{
				"grant_type": []string{"account_credentials"},
				"account_id": []string{credentials.AccountID},
			},
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		now: time.Now,
	}
}

// Token returns the cached token while it is more than TokenRefreshMargin
// away from expiry, otherwise it exchanges the credentials for a new one.
// Concurrent refreshes share one exchange.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	if !c.credentials.Complete() {
		return "", domain.NewConfigurationError("zoom credentials are not configured")
	}

	if token, ok := c.cached(); ok {
		return token, nil
	}

	// The shared exchange must outlive any single caller; it is bounded by
	// the HTTP client timeout. Each caller still stops waiting on its own ctx.
	refreshCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("token", func() (any, error) {
		if token, ok := c.cached(); ok {
			return token, nil
		}
		return c.refresh(refreshCtx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached token so the next call performs an exchange.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiry = time.Time{}
}

func (c *TokenCache) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" {
		return "", false
	}
	if !c.now().Before(c.expiry.Add(-TokenRefreshMargin)) {
		return "", false
	}
	return c.token, true
}

func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", "token_exchange"))
	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := c.oauthConfig.Token(exchangeCtx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			slog.ErrorContext(ctx, "zoom rejected the credential exchange",
				"status", status,
				logging.ErrKey, err,
				logging.PriorityCritical())
			return "", domain.NewUpstreamAuthError("zoom token exchange rejected", err)
		}
		slog.ErrorContext(ctx, "zoom credential exchange failed", logging.ErrKey, err)
		return "", domain.NewUpstreamAuthError("zoom token exchange failed", err)
	}

	// oauth2 stamps Expiry from the wall clock; keep the lifetime and anchor it to ours.
	var expiry time.Time
	if !tok.Expiry.IsZero() {
		expiry = c.now().Add(time.Until(tok.Expiry))
	}

	c.mu.Lock()
	if expiry.IsZero() {
		c.token, c.expiry = "", time.Time{}
	} else {
		c.token, c.expiry = tok.AccessToken, expiry
	}
	c.mu.Unlock()

	slog.DebugContext(ctx, "zoom access token refreshed", "expires_at", expiry)
	return tok.AccessToken, nil
}
