// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import "time"

// NATS subjects that the webinar service sends messages about.
const (
	// WebinarMeetingCreatedSubject is the subject for meetings created on the provider.
	// The subject is of the form: lfx.webinar.meeting.created
	WebinarMeetingCreatedSubject = "lfx.webinar.meeting.created"

	// WebinarMeetingDeletedSubject is the subject for meetings deleted from the provider.
	// The subject is of the form: lfx.webinar.meeting.deleted
	WebinarMeetingDeletedSubject = "lfx.webinar.meeting.deleted"

	// WebinarRegistrationSubject is the subject for completed registrations.
	// The subject is of the form: lfx.webinar.registration.completed
	WebinarRegistrationSubject = "lfx.webinar.registration.completed"
)

// MessageAction is the action carried by an event message.
type MessageAction string

const (
	ActionCreated MessageAction = "created"
	ActionUpdated MessageAction = "updated"
	ActionDeleted MessageAction = "deleted"
)

// MeetingEventMessage is published when the service changes a provider meeting.
type MeetingEventMessage struct {
	Action     MessageAction `json:"action"`
	MeetingID  string        `json:"meeting_id"`
	Topic      string        `json:"topic,omitempty"`
	StartTime  *time.Time    `json:"start_time,omitempty"`
	JoinURL    string        `json:"join_url,omitempty"`
	Source     string        `json:"source"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// RegistrationEventMessage is published after a registrant has been written to the CRM.
type RegistrationEventMessage struct {
	ContactID  string    `json:"contact_id"`
	Created    bool      `json:"created"`
	MeetingID  string    `json:"meeting_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Event sources
const (
	EventSourceSchedule  = "schedule"
	EventSourceDashboard = "dashboard"
)
