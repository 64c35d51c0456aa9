// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

type createMeetingRequest struct {
	Topic    string `json:"topic"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Agenda   string `json:"agenda"`
}

type updateMeetingRequest struct {
	Topic  *string `json:"topic"`
	Agenda *string `json:"agenda"`
}

type meetingsResponse struct {
	Meetings []models.Meeting `json:"meetings"`
}

// meetingIDParam is the path parameter naming a provider meeting.
const meetingIDParam = "meetingID"

// ListMeetings returns the provider's scheduled meetings.
func (a *WebinarAPI) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := a.meetings.ListMeetings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	writeJSON(w, r, http.StatusOK, meetingsResponse{Meetings: meetings})
}

// CreateMeeting schedules one meeting from the dashboard.
func (a *WebinarAPI) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var body createMeetingRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	meeting, err := a.meetings.CreateMeeting(r.Context(), models.CreateMeetingInput{
		Topic:           body.Topic,
		Date:            body.Date,
		DurationMinutes: body.Duration,
		Agenda:          body.Agenda,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "meeting created from dashboard", "meeting_id", meeting.ID)
	writeJSON(w, r, http.StatusCreated, meeting)
}

// UpdateMeeting edits the topic and/or agenda of a meeting.
func (a *WebinarAPI) UpdateMeeting(mux goahttp.Muxer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateMeetingRequest
		if err := decodeBody(r, &body); err != nil {
			writeError(w, r, err)
			return
		}

		input := models.UpdateMeetingInput{Agenda: body.Agenda}
		if body.Topic != nil {
			input.Topic = *body.Topic
		}

		if err := a.meetings.UpdateMeeting(r.Context(), mux.Vars(r)[meetingIDParam], input); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteMeeting cancels a meeting.
func (a *WebinarAPI) DeleteMeeting(mux goahttp.Muxer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := a.meetings.DeleteMeeting(r.Context(), mux.Vars(r)[meetingIDParam]); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// UpcomingWebinars lists the sessions open for registration.
func (a *WebinarAPI) UpcomingWebinars(w http.ResponseWriter, r *http.Request) {
	webinars, err := a.meetings.UpcomingWebinars(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, webinars)
}
