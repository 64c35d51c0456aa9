// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

type scheduleResponse struct {
	WebinarTopic string             `json:"webinar_topic"`
	Timezone     string             `json:"timezone"`
	Slots        []models.SlotMatch `json:"slots"`
}

type scheduleRunResponse struct {
	Success bool                 `json:"success"`
	Results []models.SlotOutcome `json:"results"`
}

// Schedule shows the upcoming slots next to the meetings already scheduled for them.
func (a *WebinarAPI) Schedule(w http.ResponseWriter, r *http.Request) {
	matches, err := a.schedule.Preview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse{
		WebinarTopic: a.schedule.Config.WebinarTopic,
		Timezone:     a.schedule.Slots.Location().String(),
		Slots:        matches,
	})
}

// RunSchedule creates the missing meetings of the upcoming slots. It is
// called by the external scheduler behind the trigger secret.
func (a *WebinarAPI) RunSchedule(w http.ResponseWriter, r *http.Request) {
	run, err := a.schedule.Run(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleRunResponse{Success: true, Results: run.Results})
}
