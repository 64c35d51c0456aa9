// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"time"
)

// Meeting is a meeting as scheduled on the video-conferencing provider.
// The provider owns it; the service re-fetches it on every read.
type Meeting struct {
	ID        string    `json:"id"`
	UUID      string    `json:"uuid,omitempty"`
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"start_time"`
	Duration  int       `json:"duration"`
	Timezone  string    `json:"timezone,omitempty"`
	JoinURL   string    `json:"join_url"`
	Password  string    `json:"password,omitempty"`
	Agenda    string    `json:"agenda,omitempty"`
}

// LocalDate returns the meeting's calendar date (YYYY-MM-DD) as observed in loc.
func (m Meeting) LocalDate(loc *time.Location) string {
	return m.StartTime.In(loc).Format(DateLayout)
}

// CreateMeetingInput is the data needed to schedule a meeting on the provider.
type CreateMeetingInput struct {
	Topic           string
	Date            string // YYYY-MM-DD in the webinar timezone
	DurationMinutes int
	Agenda          string
}

// UpdateMeetingInput holds the editable fields of a scheduled meeting.
// An empty Topic or a nil Agenda leaves that field unchanged.
type UpdateMeetingInput struct {
	Topic  string
	Agenda *string
}

// UpcomingWebinar is a scheduled meeting offered on the public registration page.
type UpcomingWebinar struct {
	Meeting   Meeting `json:"meeting"`
	DateLabel string  `json:"date_label"`
	TimeLabel string  `json:"time_label"`
}
