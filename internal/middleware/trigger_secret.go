// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/utils"
)

// TriggerSecretMiddleware requires "Authorization: Bearer <secret>" on the
// scheduled trigger endpoint. An empty secret leaves the endpoint open.
func TriggerSecretMiddleware(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		slog.Warn("trigger secret not configured, schedule endpoint is open")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" {
				given := r.Header.Get(constants.AuthorizationHeader)
				if !utils.SecretsEqual(given, constants.BearerPrefix+secret) {
					slog.WarnContext(r.Context(), "schedule trigger rejected", "has_authorization", given != "")
					WriteError(w, r, http.StatusUnauthorized, "unauthorized")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
