// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = Credentials{AccountID: "acct-1", ClientID: "client-1", ClientSecret: "secret-1"}

type tokenServer struct {
	*httptest.Server
	exchanges atomic.Int32
}

func newTokenServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, n int32)) *tokenServer {
	t.Helper()
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := ts.exchanges.Add(1)
		handler(w, r, n)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func issueToken(expiresIn int) func(w http.ResponseWriter, r *http.Request, n int32) {
	return func(w http.ResponseWriter, _ *http.Request, n int32) {
		w.Header().Set("Content-Type", "application/json")
		if expiresIn > 0 {
			_, _ = fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"bearer","expires_in":%d}`, n, expiresIn)
			return
		}
		_, _ = fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"bearer"}`, n)
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(credentials Credentials, authURL string) (*TokenCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, time.January, 16, 12, 0, 0, 0, time.UTC)}
	cache := NewTokenCache(credentials, authURL, nil)
	cache.now = clock.Now
	return cache, clock
}

func TestTokenCache_ExchangeRequest(t *testing.T) {
	server := newTokenServer(t, func(w http.ResponseWriter, r *http.Request, n int32) {
		id, secret, ok := r.BasicAuth()
		assert.True(t, ok, "credentials must be sent with basic auth")
		assert.Equal(t, "client-1", id)
		assert.Equal(t, "secret-1", secret)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "account_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "acct-1", r.PostForm.Get("account_id"))

		issueToken(3600)(w, r, n)
	})

	cache, _ := newTestCache(testCredentials, server.URL)
	token, err := cache.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestTokenCache_ServesCachedTokenWithinValidity(t *testing.T) {
	server := newTokenServer(t, issueToken(3600))
	cache, clock := newTestCache(testCredentials, server.URL)
	ctx := context.Background()

	first, err := cache.Token(ctx)
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	second, err := cache.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, server.exchanges.Load())
}

func TestTokenCache_RefreshesInsideMargin(t *testing.T) {
	tests := []struct {
		name              string
		advance           time.Duration
		expectedExchanges int32
		expectedToken     string
	}{
		{"well before expiry", 58 * time.Minute, 1, "tok-1"},
		{"inside the 60s margin", time.Hour - 30*time.Second, 2, "tok-2"},
		{"after expiry", 2 * time.Hour, 2, "tok-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTokenServer(t, issueToken(3600))
			cache, clock := newTestCache(testCredentials, server.URL)
			ctx := context.Background()

			_, err := cache.Token(ctx)
			require.NoError(t, err)

			clock.Advance(tt.advance)
			token, err := cache.Token(ctx)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, tt.expectedExchanges, server.exchanges.Load())
		})
	}
}

func TestTokenCache_MissingCredentials(t *testing.T) {
	server := newTokenServer(t, issueToken(3600))

	tests := []struct {
		name        string
		credentials Credentials
	}{
		{"all absent", Credentials{}},
		{"no account id", Credentials{ClientID: "c", ClientSecret: "s"}},
		{"no client id", Credentials{AccountID: "a", ClientSecret: "s"}},
		{"no client secret", Credentials{AccountID: "a", ClientID: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, _ := newTestCache(tt.credentials, server.URL)

			_, err := cache.Token(context.Background())

			require.Error(t, err)
			assert.Equal(t, domain.ErrorTypeConfiguration, domain.GetErrorType(err))
		})
	}
	assert.Zero(t, server.exchanges.Load())
}

func TestTokenCache_RejectedExchange(t *testing.T) {
	server := newTokenServer(t, func(w http.ResponseWriter, _ *http.Request, _ int32) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"reason":"Invalid client_id or client_secret","error":"invalid_client"}`))
	})
	cache, _ := newTestCache(testCredentials, server.URL)

	_, err := cache.Token(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUpstreamAuth, domain.GetErrorType(err))
}

func TestTokenCache_Invalidate(t *testing.T) {
	server := newTokenServer(t, issueToken(3600))
	cache, _ := newTestCache(testCredentials, server.URL)
	ctx := context.Background()

	_, err := cache.Token(ctx)
	require.NoError(t, err)

	cache.Invalidate()
	token, err := cache.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, "tok-2", token)
	assert.EqualValues(t, 2, server.exchanges.Load())
}

func TestTokenCache_TokenWithoutExpiryIsNotCached(t *testing.T) {
	server := newTokenServer(t, issueToken(0))
	cache, _ := newTestCache(testCredentials, server.URL)
	ctx := context.Background()

	first, err := cache.Token(ctx)
	require.NoError(t, err)
	second, err := cache.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, "tok-2", second)
}

func TestTokenCache_ConcurrentCallersShareOneExchange(t *testing.T) {
	server := newTokenServer(t, func(w http.ResponseWriter, r *http.Request, n int32) {
		time.Sleep(50 * time.Millisecond)
		issueToken(3600)(w, r, n)
	})
	cache, _ := newTestCache(testCredentials, server.URL)

	var wg sync.WaitGroup
	tokens := make([]string, 8)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := cache.Token(context.Background())
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, server.exchanges.Load())
	for _, token := range tokens {
		assert.Equal(t, "tok-1", token)
	}
}

func TestTokenCache_CancelledCallerDoesNotFailSharedRefresh(t *testing.T) {
	release := make(chan struct{})
	server := newTokenServer(t, func(w http.ResponseWriter, r *http.Request, n int32) {
		<-release
		issueToken(3600)(w, r, n)
	})
	cache, _ := newTestCache(testCredentials, server.URL)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Token(firstCtx)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return server.exchanges.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan string, 1)
	secondErr := make(chan error, 1)
	go func() {
		token, err := cache.Token(context.Background())
		second <- token
		secondErr <- err
	}()

	cancelFirst()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, "tok-1", <-second)
	require.NoError(t, <-secondErr)
	assert.EqualValues(t, 1, server.exchanges.Load())

	token, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token, "the refresh completed and was cached")
}
