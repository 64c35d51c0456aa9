// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package zoom maps the Zoom REST API onto the domain MeetingProvider.
package zoom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/infrastructure/zoom/api"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// Operation names reported in upstream errors and logs
const (
	OperationListMeetings  = "list_meetings"
	OperationCreateMeeting = "create_meeting"
	OperationUpdateMeeting = "update_meeting"
	OperationDeleteMeeting = "delete_meeting"
)

// ProviderConfig controls how meetings are created on Zoom.
type ProviderConfig struct {
	// UserID is the Zoom user that owns the meetings, "me" for the app's account owner.
	UserID string
	// Timezone is the IANA name sent with every created meeting.
	Timezone string
	// StartTime is the local wall-clock start, HH:MM.
	StartTime string
}

// ZoomProvider implements domain.MeetingProvider on top of the Zoom API client
type ZoomProvider struct {
	client api.ClientAPI
	config ProviderConfig
}

// Ensure ZoomProvider implements MeetingProvider
var _ domain.MeetingProvider = (*ZoomProvider)(nil)

// NewZoomProvider creates a provider, filling unset config with the webinar defaults
func NewZoomProvider(client api.ClientAPI, config ProviderConfig) *ZoomProvider {
	if config.UserID == "" {
		config.UserID = "me"
	}
	if config.Timezone == "" {
		config.Timezone = constants.DefaultWebinarTimezone
	}
	if config.StartTime == "" {
		config.StartTime = constants.DefaultWebinarStartTime
	}
	return &ZoomProvider{client: client, config: config}
}

// ListMeetings returns every scheduled meeting of the configured user
func (p *ZoomProvider) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", OperationListMeetings))

	summaries, err := p.client.ListMeetings(ctx, p.config.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list Zoom meetings", logging.ErrKey, err)
		return nil, mapError(OperationListMeetings, err)
	}

	meetings := make([]models.Meeting, 0, len(summaries))
	for _, s := range summaries {
		meetings = append(meetings, models.Meeting{
			ID:        strconv.FormatInt(s.ID, 10),
			UUID:      s.UUID,
			Topic:     s.Topic,
			StartTime: parseStartTime(ctx, s.StartTime),
			Duration:  s.Duration,
			Timezone:  s.Timezone,
			JoinURL:   s.JoinURL,
			Password:  s.Password,
			Agenda:    s.Agenda,
		})
	}

	slog.DebugContext(ctx, "listed Zoom meetings", "count", len(meetings))
	return meetings, nil
}

// CreateMeeting schedules a meeting on the given local date at the configured
// wall-clock time. Zoom resolves the absolute instant from the timezone.
func (p *ZoomProvider) CreateMeeting(ctx context.Context, input models.CreateMeetingInput) (*models.Meeting, error) {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", OperationCreateMeeting))

	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return nil, domain.NewValidationError("date must be formatted as YYYY-MM-DD", err)
	}

	request := &api.CreateMeetingRequest{
		Topic:     input.Topic,
		Type:      api.MeetingTypeScheduled,
		StartTime: fmt.Sprintf("%sT%s:00", input.Date, p.config.StartTime),
		Duration:  input.DurationMinutes,
		Timezone:  p.config.Timezone,
		Agenda:    input.Agenda,
		Settings: &api.MeetingSettings{
			HostVideo:        true,
			ParticipantVideo: false,
			JoinBeforeHost:   false,
			MuteUponEntry:    true,
			WaitingRoom:      true,
			ApprovalType:     api.ApprovalTypeNoRegistration,
			Audio:            "both",
			AutoRecording:    "none",
		},
	}

	resp, err := p.client.CreateMeeting(ctx, p.config.UserID, request)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create Zoom meeting", "date", input.Date, logging.ErrKey, err)
		return nil, mapError(OperationCreateMeeting, err)
	}

	meeting := &models.Meeting{
		ID:        strconv.FormatInt(resp.ID, 10),
		UUID:      resp.UUID,
		Topic:     resp.Topic,
		StartTime: parseStartTime(ctx, resp.StartTime),
		Duration:  resp.Duration,
		Timezone:  resp.Timezone,
		JoinURL:   resp.JoinURL,
		Password:  resp.Password,
		Agenda:    resp.Agenda,
	}

	slog.InfoContext(ctx, "created Zoom meeting", "meeting_id", meeting.ID, "date", input.Date)
	return meeting, nil
}

// UpdateMeeting changes the topic and agenda of a meeting
func (p *ZoomProvider) UpdateMeeting(ctx context.Context, meetingID string, input models.UpdateMeetingInput) error {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", OperationUpdateMeeting))
	ctx = logging.AppendCtx(ctx, slog.String("meeting_id", meetingID))

	if err := p.client.UpdateMeeting(ctx, meetingID, &api.UpdateMeetingRequest{Topic: input.Topic, Agenda: input.Agenda}); err != nil {
		slog.ErrorContext(ctx, "failed to update Zoom meeting", logging.ErrKey, err)
		return mapMeetingError(OperationUpdateMeeting, err)
	}

	slog.InfoContext(ctx, "updated Zoom meeting")
	return nil
}

// DeleteMeeting removes a meeting
func (p *ZoomProvider) DeleteMeeting(ctx context.Context, meetingID string) error {
	ctx = logging.AppendCtx(ctx, slog.String("zoom_operation", OperationDeleteMeeting))
	ctx = logging.AppendCtx(ctx, slog.String("meeting_id", meetingID))

	if err := p.client.DeleteMeeting(ctx, meetingID); err != nil {
		slog.ErrorContext(ctx, "failed to delete Zoom meeting", logging.ErrKey, err)
		return mapMeetingError(OperationDeleteMeeting, err)
	}

	slog.InfoContext(ctx, "deleted Zoom meeting")
	return nil
}

// mapError keeps configuration and credential failures as they are and turns
// everything else into an UpstreamError for the operation.
func mapError(operation string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return domain.NewUpstreamError(operation, apiErr.StatusCode, apiErr.Message)
	}

	return domain.NewUpstreamError(operation, 0, err.Error())
}

// mapMeetingError is mapError for calls addressing one meeting: a 404 means
// the meeting id is unknown to Zoom.
func mapMeetingError(operation string, err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return domain.NewNotFoundError("meeting not found", mapError(operation, err))
	}
	return mapError(operation, err)
}

func parseStartTime(ctx context.Context, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		slog.WarnContext(ctx, "unparseable Zoom start_time", "start_time", value, logging.ErrKey, err)
		return time.Time{}
	}
	return t
}
