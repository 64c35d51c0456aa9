// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageHandler(t *testing.T) {
	tests := []struct {
		page     string
		contains string
	}{
		{PageLogin, "/api/auth/login"},
		{PageDashboard, "/api/schedule"},
		{PageRegister, "/api/registrations"},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			rec := httptest.NewRecorder()

			PageHandler(tt.page).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestPageHandler_MissingPage(t *testing.T) {
	rec := httptest.NewRecorder()

	PageHandler("missing.html").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
