// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/middleware"
)

type loginRequest struct {
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Login checks the shared admin password and starts a session.
func (a *WebinarAPI) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	if err := a.auth.Login(r.Context(), body.Password); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, middleware.NewAdminCookie(a.cookieSecure))
	writeJSON(w, r, http.StatusOK, successResponse{Success: true})
}

// Logout ends the admin session.
func (a *WebinarAPI) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, middleware.ExpiredAdminCookie(a.cookieSecure))
	writeJSON(w, r, http.StatusOK, successResponse{Success: true})
}
