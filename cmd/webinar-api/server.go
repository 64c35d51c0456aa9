// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/netip"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/middleware"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/web"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// Route paths
const (
	pathLogin         = "/api/auth/login"
	pathLogout        = "/api/auth/logout"
	pathSchedule      = "/api/schedule"
	pathMeetings      = "/api/meetings"
	pathMeeting       = "/api/meetings/{" + meetingIDParam + "}"
	pathWebinars      = "/api/webinars"
	pathRegistrations = "/api/registrations"
	pathCron          = "/api/cron/create-weekly-meetings"
)

// routeConfig is the per-deployment input to the route table.
type routeConfig struct {
	CronSecret     string
	PublicHostname string
	TrustedProxies []netip.Prefix
}

// newHandler mounts every route on a goa muxer and wraps it in the HTTP middleware.
func newHandler(api *WebinarAPI, cfg routeConfig) http.Handler {
	mux := goahttp.NewMuxer()

	admin := middleware.AdminSessionMiddleware()
	trigger := middleware.TriggerSecretMiddleware(cfg.CronSecret)
	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimit, middleware.ClientIP(cfg.TrustedProxies))

	guarded := func(guard func(http.Handler) http.Handler, h http.Handler) http.HandlerFunc {
		return guard(h).ServeHTTP
	}

	mux.Handle(http.MethodGet, constants.PathLivez, api.Livez)
	mux.Handle(http.MethodGet, constants.PathReadyz, api.Readyz)

	// Pages
	mux.Handle(http.MethodGet, constants.PathRoot, guarded(admin, web.PageHandler(web.PageDashboard)))
	mux.Handle(http.MethodGet, constants.PathLogin, web.PageHandler(web.PageLogin).ServeHTTP)
	mux.Handle(http.MethodGet, constants.PathRegister, web.PageHandler(web.PageRegister).ServeHTTP)

	// Admin session
	mux.Handle(http.MethodPost, pathLogin, guarded(loginLimit, http.HandlerFunc(api.Login)))
	mux.Handle(http.MethodPost, pathLogout, api.Logout)

	// Dashboard API
	mux.Handle(http.MethodGet, pathSchedule, guarded(admin, http.HandlerFunc(api.Schedule)))
	mux.Handle(http.MethodGet, pathMeetings, guarded(admin, http.HandlerFunc(api.ListMeetings)))
	mux.Handle(http.MethodPost, pathMeetings, guarded(admin, http.HandlerFunc(api.CreateMeeting)))
	mux.Handle(http.MethodPatch, pathMeeting, guarded(admin, api.UpdateMeeting(mux)))
	mux.Handle(http.MethodDelete, pathMeeting, guarded(admin, api.DeleteMeeting(mux)))

	// Public API
	mux.Handle(http.MethodGet, pathWebinars, api.UpcomingWebinars)
	mux.Handle(http.MethodPost, pathRegistrations, api.Register)

	// Scheduled trigger
	mux.Handle(http.MethodGet, pathCron, guarded(trigger, http.HandlerFunc(api.RunSchedule)))

	var handler http.Handler = mux

	// Middleware runs in reverse order of wrapping: the request ID is assigned
	// first so every later log line carries it.
	handler = middleware.BodyLimitMiddleware(middleware.DefaultMaxBodyBytes)(handler)
	handler = middleware.PublicHostMiddleware(cfg.PublicHostname)(handler)
	handler = middleware.RequestLoggerMiddleware()(handler)
	handler = middleware.RequestIDMiddleware()(handler)
	handler = otelhttp.NewHandler(handler, "webinar-api")

	return handler
}

// setupHTTPServer configures and starts the HTTP server
func setupHTTPServer(flags flags, handler http.Handler, gracefulCloseWG *sync.WaitGroup) *http.Server {
	var addr string
	if flags.Bind == "*" {
		addr = ":" + flags.Port
	} else {
		addr = flags.Bind + ":" + flags.Port
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
	}
	gracefulCloseWG.Add(1)
	go func() {
		slog.With("addr", addr).Debug("starting http server, listening on port " + flags.Port)
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.With(logging.ErrKey, err).Error("http listener error")
			os.Exit(1)
		}
		// Because ErrServerClosed is *immediately* returned when Shutdown is
		// called, not when when Shutdown completes, this must not yet decrement
		// the wait group.
	}()

	return httpServer
}

// gracefulShutdownTimeout bounds how long in-flight requests get to finish.
const gracefulShutdownTimeout = 25 * time.Second

// gracefulShutdown stops the HTTP server, then drains the event connection and telemetry.
func gracefulShutdown(httpServer *http.Server, closers []func(context.Context) error, gracefulCloseWG *sync.WaitGroup) {
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	go func() {
		defer gracefulCloseWG.Done()
		if err := httpServer.Shutdown(ctx); err != nil {
			slog.With(logging.ErrKey, err).Error("http shutdown error")
		}
	}()
	gracefulCloseWG.Wait()

	for _, closeFn := range closers {
		if err := closeFn(ctx); err != nil {
			slog.With(logging.ErrKey, err).Error("shutdown error")
		}
	}

	slog.Info("graceful shutdown complete")
}
