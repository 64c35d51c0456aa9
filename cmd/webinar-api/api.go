// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/middleware"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/service"
)

// WebinarAPI holds the HTTP handlers of the webinar service.
type WebinarAPI struct {
	auth          *service.AuthService
	schedule      *service.ScheduleService
	meetings      *service.MeetingService
	registrations *service.RegistrationService

	cookieSecure bool
}

// NewWebinarAPI creates a new WebinarAPI.
func NewWebinarAPI(
	auth *service.AuthService,
	schedule *service.ScheduleService,
	meetings *service.MeetingService,
	registrations *service.RegistrationService,
	cookieSecure bool,
) *WebinarAPI {
	return &WebinarAPI{
		auth:          auth,
		schedule:      schedule,
		meetings:      meetings,
		registrations: registrations,
		cookieSecure:  cookieSecure,
	}
}

// ServiceReady reports whether every service the API depends on is wired.
// The admin password being unset does not make the service unready; login then
// answers with a configuration error.
func (a *WebinarAPI) ServiceReady() bool {
	return a.auth != nil &&
		a.schedule != nil && a.schedule.ServiceReady() &&
		a.meetings != nil && a.meetings.ServiceReady() &&
		a.registrations != nil && a.registrations.ServiceReady()
}

// Readyz checks if the service is able to take inbound requests.
func (a *WebinarAPI) Readyz(w http.ResponseWriter, _ *http.Request) {
	if !a.ServiceReady() {
		http.Error(w, domain.ErrServiceUnavailable.Error(), http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("OK\n"))
}

// Livez checks if the service is alive.
func (a *WebinarAPI) Livez(w http.ResponseWriter, _ *http.Request) {
	// This always returns as long as the service is still running. As this
	// endpoint is expected to be used as a Kubernetes liveness check, this
	// service must likewise self-detect non-recoverable errors and
	// self-terminate.
	_, _ = w.Write([]byte("OK\n"))
}

// writeJSON encodes v with the goa response encoder.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	enc := goahttp.ResponseEncoder(r.Context(), w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", logging.ErrKey, err)
	}
}

// decodeBody decodes the JSON request body into v. Any decoding failure is a validation error.
func decodeBody(r *http.Request, v any) error {
	if err := goahttp.RequestDecoder(r).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("request body is required")
		}
		return domain.NewValidationError("invalid request body", err)
	}
	return nil
}

// writeError converts a service error into the HTTP response. Only validation
// and not-found errors expose their message; everything else is logged here
// and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	if errors.Is(err, domain.ErrServiceUnavailable) {
		middleware.WriteError(w, r, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		middleware.WriteError(w, r, http.StatusBadRequest, domainMessage(err))
	case domain.ErrorTypeNotFound:
		middleware.WriteError(w, r, http.StatusNotFound, domainMessage(err))
	case domain.ErrorTypeUnauthorized:
		middleware.WriteError(w, r, http.StatusUnauthorized, "unauthorized")
	case domain.ErrorTypeConfiguration:
		slog.ErrorContext(ctx, "request failed: service not configured", logging.ErrKey, err)
		middleware.WriteError(w, r, http.StatusInternalServerError, "service is not configured")
	case domain.ErrorTypeUpstream, domain.ErrorTypeUpstreamAuth:
		slog.ErrorContext(ctx, "request failed: upstream error", logging.ErrKey, err)
		middleware.WriteError(w, r, http.StatusBadGateway, "upstream service error")
	default:
		slog.ErrorContext(ctx, "request failed", logging.ErrKey, err)
		middleware.WriteError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// domainMessage drops the wrapped cause, e.g. decoder or upstream detail.
func domainMessage(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
