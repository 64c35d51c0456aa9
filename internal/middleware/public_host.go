// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// PublicHostMiddleware sends visitors of the public hostname's root to the
// registration page instead of the admin dashboard. Other hosts and paths pass through.
func PublicHostMiddleware(publicHostname string) func(http.Handler) http.Handler {
	publicHostname = strings.ToLower(strings.TrimSpace(publicHostname))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicHostname != "" && r.URL.Path == constants.PathRoot && requestHostname(r) == publicHostname {
				http.Redirect(w, r, constants.PathRegister, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestHostname(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host)
}
