// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// WebinarTimeLayout renders the start time offered on the registration page, e.g. "2:00 PM EST".
const WebinarTimeLayout = "3:04 PM MST"

// MeetingService backs the dashboard's meeting management and the public webinar listing.
type MeetingService struct {
	Provider       domain.MeetingProvider
	MessageBuilder domain.MessageBuilder
	Location       *time.Location
	Config         ServiceConfig

	now func() time.Time
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(
	provider domain.MeetingProvider,
	messageBuilder domain.MessageBuilder,
	location *time.Location,
	config ServiceConfig,
) *MeetingService {
	if location == nil {
		location = time.UTC
	}
	return &MeetingService{
		Provider:       provider,
		MessageBuilder: messageBuilder,
		Location:       location,
		Config:         config,
		now:            time.Now,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *MeetingService) ServiceReady() bool {
	return s.Provider != nil && s.MessageBuilder != nil
}

func (s *MeetingService) ready(ctx context.Context) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.ErrServiceUnavailable
	}
	return nil
}

// ListMeetings returns the provider's scheduled meetings.
func (s *MeetingService) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.Provider.ListMeetings(ctx)
}

// CreateMeeting schedules a single meeting from the dashboard.
func (s *MeetingService) CreateMeeting(ctx context.Context, input models.CreateMeetingInput) (*models.Meeting, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	input.Topic = strings.TrimSpace(input.Topic)
	input.Date = strings.TrimSpace(input.Date)
	if input.Topic == "" || input.Date == "" {
		return nil, domain.NewValidationError("topic and date are required")
	}
	if _, err := time.ParseInLocation(models.DateLayout, input.Date, s.Location); err != nil {
		return nil, domain.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	if input.DurationMinutes == 0 {
		input.DurationMinutes = s.defaultDuration()
	}
	if input.DurationMinutes < 0 || input.DurationMinutes > constants.MaxMeetingDurationMinutes {
		return nil, domain.NewValidationError("duration must be between 1 and 600 minutes")
	}

	meeting, err := s.Provider.CreateMeeting(ctx, input)
	if err != nil {
		return nil, err
	}

	publishMeetingEvent(ctx, s.MessageBuilder, models.ActionCreated, meeting, models.EventSourceDashboard, clock(s.now))
	return meeting, nil
}

// UpdateMeeting changes the topic and/or agenda of a meeting.
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingID string, input models.UpdateMeetingInput) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	if strings.TrimSpace(meetingID) == "" {
		return domain.NewValidationError("meeting ID is required")
	}
	input.Topic = strings.TrimSpace(input.Topic)
	if input.Topic == "" && input.Agenda == nil {
		return domain.NewValidationError("topic or agenda is required")
	}

	return s.Provider.UpdateMeeting(ctx, meetingID, input)
}

// DeleteMeeting cancels a meeting.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	if strings.TrimSpace(meetingID) == "" {
		return domain.NewValidationError("meeting ID is required")
	}

	if err := s.Provider.DeleteMeeting(ctx, meetingID); err != nil {
		return err
	}

	publishMeetingEvent(ctx, s.MessageBuilder, models.ActionDeleted, &models.Meeting{ID: meetingID}, models.EventSourceDashboard, clock(s.now))
	return nil
}

// UpcomingWebinars returns the next webinars open for registration: meetings
// that have not started whose topic contains the webinar topic, earliest first.
func (s *MeetingService) UpcomingWebinars(ctx context.Context) ([]models.UpcomingWebinar, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	meetings, err := s.Provider.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	now := clock(s.now)
	needle := strings.ToLower(s.Config.WebinarTopic)

	upcoming := make([]models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.StartTime.IsZero() || !m.StartTime.After(now) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(m.Topic), needle) {
			continue
		}
		upcoming = append(upcoming, m)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})

	limit := s.Config.SlotCount
	if limit <= 0 {
		limit = constants.DefaultWebinarSlotCount
	}
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	webinars := make([]models.UpcomingWebinar, 0, len(upcoming))
	for _, m := range upcoming {
		local := m.StartTime.In(s.Location)
		webinars = append(webinars, models.UpcomingWebinar{
			Meeting:   m,
			DateLabel: local.Format(SlotLabelLayout),
			TimeLabel: local.Format(WebinarTimeLayout),
		})
	}
	return webinars, nil
}

func (s *MeetingService) defaultDuration() int {
	if s.Config.DurationMinutes > 0 {
		return s.Config.DurationMinutes
	}
	return constants.DefaultWebinarDurationMinutes
}
