// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// MeetingProvider defines the interface for the external meeting platform.
// Every call obtains a bearer token, issues one HTTP request and maps a
// non-success status to an UpstreamError. Implementations do not retry.
type MeetingProvider interface {
	// ListMeetings returns the scheduled meetings of the provider account in listing order
	ListMeetings(ctx context.Context) ([]models.Meeting, error)

	// CreateMeeting schedules a meeting on the given date at the configured local start time
	CreateMeeting(ctx context.Context, input models.CreateMeetingInput) (*models.Meeting, error)

	// UpdateMeeting changes the topic and agenda of an existing meeting
	UpdateMeeting(ctx context.Context, meetingID string, input models.UpdateMeetingInput) error

	// DeleteMeeting cancels a meeting
	DeleteMeeting(ctx context.Context, meetingID string) error
}
