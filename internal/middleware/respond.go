// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteError writes an ErrorBody with the given status using the goa response encoder.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	enc := goahttp.ResponseEncoder(r.Context(), w)
	w.WriteHeader(status)
	if err := enc.Encode(ErrorBody{Error: message}); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", logging.ErrKey, err)
	}
}
