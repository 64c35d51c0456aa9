// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package web serves the static login, dashboard and registration pages.
// The pages are plain HTML that talk to the JSON API from the browser.
package web

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
)

//go:embed pages/*.html
var pages embed.FS

// Page names
const (
	PageLogin     = "login.html"
	PageDashboard = "dashboard.html"
	PageRegister  = "register.html"
)

// PageHandler returns a handler that serves one embedded page.
func PageHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := pages.ReadFile("pages/" + name)
		if err != nil {
			slog.ErrorContext(r.Context(), "embedded page missing", "page", name, logging.ErrKey, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}
