// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// HasAdminSession reports whether the request carries the admin session cookie.
func HasAdminSession(r *http.Request) bool {
	cookie, err := r.Cookie(constants.AdminCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == constants.AdminCookieValue
}

// AdminSessionMiddleware guards the dashboard and its API. Page requests
// without a session are redirected to the login page; API requests get 401.
func AdminSessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if HasAdminSession(r) {
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, "/api/") {
				slog.DebugContext(r.Context(), "admin API request without session")
				WriteError(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}

			http.Redirect(w, r, constants.PathLogin, http.StatusFound)
		})
	}
}

// NewAdminCookie returns the session cookie set after a successful login.
func NewAdminCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     constants.AdminCookieName,
		Value:    constants.AdminCookieValue,
		Path:     constants.PathRoot,
		MaxAge:   int(constants.AdminCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredAdminCookie returns a cookie that clears the admin session.
func ExpiredAdminCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     constants.AdminCookieName,
		Value:    "",
		Path:     constants.PathRoot,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
