// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
)

// ScheduleService keeps the next weeks of the recurring webinar scheduled on
// the meeting provider. The provider is the only record of what exists: every
// call lists its meetings again.
type ScheduleService struct {
	Provider       domain.MeetingProvider
	Slots          domain.SlotCalculator
	MessageBuilder domain.MessageBuilder
	Config         ServiceConfig

	now func() time.Time
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(
	provider domain.MeetingProvider,
	slots domain.SlotCalculator,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *ScheduleService {
	return &ScheduleService{
		Provider:       provider,
		Slots:          slots,
		MessageBuilder: messageBuilder,
		Config:         config,
		now:            time.Now,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *ScheduleService) ServiceReady() bool {
	return s.Provider != nil && s.Slots != nil && s.MessageBuilder != nil
}

// Preview returns the upcoming slots paired with the meetings already scheduled for them.
func (s *ScheduleService) Preview(ctx context.Context) ([]models.SlotMatch, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.ErrServiceUnavailable
	}

	slots := s.Slots.ComputeSlots(s.Config.SlotCount, clock(s.now))

	meetings, err := s.Provider.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	return Reconcile(slots, meetings, s.Slots.Location()), nil
}

// Run creates a meeting for every upcoming slot that has none. Creations are
// issued one at a time; a failed slot is reported and the run continues.
// The run itself fails only when the meetings cannot be listed.
func (s *ScheduleService) Run(ctx context.Context) (*models.ScheduleRun, error) {
	ctx = logging.AppendCtx(ctx, slog.String("operation", "schedule_run"))

	matches, err := s.Preview(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reconcile webinar slots", logging.ErrKey, err)
		return nil, err
	}

	run := &models.ScheduleRun{Results: make([]models.SlotOutcome, 0, len(matches))}
	for _, match := range matches {
		run.Results = append(run.Results, s.processSlot(ctx, match))
	}

	created, failed := run.Count(models.SlotActionCreated), run.Count(models.SlotActionFailed)
	attrs := []any{
		"created", created,
		"skipped", run.Count(models.SlotActionSkipped),
		"failed", failed,
	}
	switch {
	case failed > 0 && failed == len(run.Results):
		slog.ErrorContext(ctx, "every webinar slot failed to schedule", append(attrs, logging.PriorityCritical())...)
	case failed > 0:
		slog.WarnContext(ctx, "some webinar slots failed to schedule", attrs...)
	default:
		slog.InfoContext(ctx, "webinar schedule run finished", attrs...)
	}

	return run, nil
}

func (s *ScheduleService) processSlot(ctx context.Context, match models.SlotMatch) models.SlotOutcome {
	outcome := models.SlotOutcome{Date: match.Slot.Date, Label: match.Slot.Label}

	if match.Scheduled() {
		outcome.Action = models.SlotActionSkipped
		outcome.Topic = match.Meeting.Topic
		outcome.MeetingID = match.Meeting.ID
		slog.DebugContext(ctx, "slot already scheduled", "date", match.Slot.Date, "meeting_id", match.Meeting.ID)
		return outcome
	}

	outcome.Topic = fmt.Sprintf("%s - %s", s.Config.WebinarTopic, match.Slot.DateLabel)
	meeting, err := s.Provider.CreateMeeting(ctx, models.CreateMeetingInput{
		Topic:           outcome.Topic,
		Date:            match.Slot.Date,
		DurationMinutes: s.Config.DurationMinutes,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create webinar meeting", "date", match.Slot.Date, logging.ErrKey, err)
		outcome.Action = models.SlotActionFailed
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Action = models.SlotActionCreated
	outcome.MeetingID = meeting.ID
	slog.InfoContext(ctx, "created webinar meeting", "date", match.Slot.Date, "meeting_id", meeting.ID)

	publishMeetingEvent(ctx, s.MessageBuilder, models.ActionCreated, meeting, models.EventSourceSchedule, clock(s.now))
	return outcome
}

// publishMeetingEvent sends the event and only logs a failure.
func publishMeetingEvent(ctx context.Context, builder domain.MessageBuilder, action models.MessageAction, meeting *models.Meeting, source string, at time.Time) {
	msg := models.MeetingEventMessage{
		Action:     action,
		MeetingID:  meeting.ID,
		Topic:      meeting.Topic,
		JoinURL:    meeting.JoinURL,
		Source:     source,
		OccurredAt: at.UTC(),
	}
	if !meeting.StartTime.IsZero() {
		start := meeting.StartTime
		msg.StartTime = &start
	}

	if err := builder.SendMeetingEvent(ctx, msg); err != nil {
		slog.WarnContext(ctx, "failed to publish meeting event", "meeting_id", meeting.ID, logging.ErrKey, err)
	}
}
