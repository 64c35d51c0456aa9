// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

type registrationResponse struct {
	Success     bool                `json:"success"`
	ContactID   string              `json:"contact_id"`
	JoinURL     string              `json:"join_url"`
	Created     bool                `json:"created"`
	Diagnostics []models.Diagnostic `json:"diagnostics,omitempty"`
}

// Register records a public registration in the CRM.
func (a *WebinarAPI) Register(w http.ResponseWriter, r *http.Request) {
	var registrant models.Registrant
	if err := decodeBody(r, &registrant); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := a.registrations.Register(r.Context(), registrant)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, registrationResponse{
		Success:     true,
		ContactID:   result.ContactID,
		JoinURL:     result.JoinURL,
		Created:     result.Created,
		Diagnostics: result.Diagnostics,
	})
}
