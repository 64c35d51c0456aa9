// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import "time"

// Constants for the HTTP request headers
const (
	// AuthorizationHeader is the header name for the authorization
	AuthorizationHeader string = "Authorization"

	// RequestIDHeader is the header name for the request ID
	RequestIDHeader string = "X-REQUEST-ID"

	// BearerPrefix is the scheme prefix of bearer authorization values
	BearerPrefix string = "Bearer "
)

// contextRequestID is the type for the request ID context key
type contextRequestID string

// RequestIDContextID is the context ID for the request ID
const RequestIDContextID contextRequestID = "X-REQUEST-ID"

// Admin session cookie
const (
	// AdminCookieName is the name of the cookie set after a successful login
	AdminCookieName = "admin_auth"

	// AdminCookieValue is the sentinel value an authenticated cookie carries
	AdminCookieValue = "authenticated"

	// AdminCookieMaxAge is how long an admin session lasts
	AdminCookieMaxAge = 7 * 24 * time.Hour
)

// Page and API paths referenced by middleware
const (
	PathRoot     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathLivez    = "/livez"
	PathReadyz   = "/readyz"
)
