// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/mocks"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

func setupMeetingServiceForTesting(t *testing.T) (*MeetingService, *mocks.MockMeetingProvider, *mocks.MockMessageBuilder) {
	t.Helper()
	provider := &mocks.MockMeetingProvider{}
	builder := &mocks.MockMessageBuilder{}
	svc := NewMeetingService(provider, builder, newYork(t), ServiceConfig{
		WebinarTopic:    "Weekly Webinar",
		SlotCount:       2,
		DurationMinutes: 45,
	})
	svc.now = func() time.Time { return time.Date(2025, time.January, 16, 15, 0, 0, 0, time.UTC) }
	return svc, provider, builder
}

func TestMeetingService_CreateMeeting(t *testing.T) {
	tests := []struct {
		name          string
		input         models.CreateMeetingInput
		expectedInput *models.CreateMeetingInput
		expectedError domain.ErrorType
	}{
		{
			name:          "default duration",
			input:         models.CreateMeetingInput{Topic: " Office Hours ", Date: "2025-02-12"},
			expectedInput: &models.CreateMeetingInput{Topic: "Office Hours", Date: "2025-02-12", DurationMinutes: 45},
		},
		{
			name:          "explicit duration and agenda",
			input:         models.CreateMeetingInput{Topic: "Office Hours", Date: "2025-02-12", DurationMinutes: 90, Agenda: "Q&A"},
			expectedInput: &models.CreateMeetingInput{Topic: "Office Hours", Date: "2025-02-12", DurationMinutes: 90, Agenda: "Q&A"},
		},
		{
			name:          "missing topic",
			input:         models.CreateMeetingInput{Date: "2025-02-12"},
			expectedError: domain.ErrorTypeValidation,
		},
		{
			name:          "missing date",
			input:         models.CreateMeetingInput{Topic: "Office Hours"},
			expectedError: domain.ErrorTypeValidation,
		},
		{
			name:          "malformed date",
			input:         models.CreateMeetingInput{Topic: "Office Hours", Date: "02/12/2025"},
			expectedError: domain.ErrorTypeValidation,
		},
		{
			name:          "duration too long",
			input:         models.CreateMeetingInput{Topic: "Office Hours", Date: "2025-02-12", DurationMinutes: 601},
			expectedError: domain.ErrorTypeValidation,
		},
		{
			name:          "negative duration",
			input:         models.CreateMeetingInput{Topic: "Office Hours", Date: "2025-02-12", DurationMinutes: -5},
			expectedError: domain.ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, builder := setupMeetingServiceForTesting(t)
			if tt.expectedInput != nil {
				provider.On("CreateMeeting", mock.Anything, *tt.expectedInput).Return(&models.Meeting{ID: "123", Topic: tt.expectedInput.Topic}, nil)
				builder.On("SendMeetingEvent", mock.Anything, mock.MatchedBy(func(msg models.MeetingEventMessage) bool {
					return msg.MeetingID == "123" && msg.Source == models.EventSourceDashboard
				})).Return(nil)
			}

			meeting, err := svc.CreateMeeting(context.Background(), tt.input)

			if tt.expectedInput == nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, domain.GetErrorType(err))
				provider.AssertNotCalled(t, "CreateMeeting", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "123", meeting.ID)
			provider.AssertExpectations(t)
			builder.AssertExpectations(t)
		})
	}
}

func TestMeetingService_UpdateMeeting(t *testing.T) {
	agenda := "New agenda"

	t.Run("topic only leaves agenda unset", func(t *testing.T) {
		svc, provider, _ := setupMeetingServiceForTesting(t)
		provider.On("UpdateMeeting", mock.Anything, "123", models.UpdateMeetingInput{Topic: "Renamed"}).Return(nil)

		err := svc.UpdateMeeting(context.Background(), "123", models.UpdateMeetingInput{Topic: " Renamed "})

		require.NoError(t, err)
		provider.AssertExpectations(t)
	})

	t.Run("agenda only", func(t *testing.T) {
		svc, provider, _ := setupMeetingServiceForTesting(t)
		provider.On("UpdateMeeting", mock.Anything, "123", models.UpdateMeetingInput{Agenda: &agenda}).Return(nil)

		require.NoError(t, svc.UpdateMeeting(context.Background(), "123", models.UpdateMeetingInput{Agenda: &agenda}))
	})

	t.Run("nothing to update", func(t *testing.T) {
		svc, provider, _ := setupMeetingServiceForTesting(t)

		err := svc.UpdateMeeting(context.Background(), "123", models.UpdateMeetingInput{Topic: "  "})

		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
		provider.AssertNotCalled(t, "UpdateMeeting", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing meeting id", func(t *testing.T) {
		svc, _, _ := setupMeetingServiceForTesting(t)

		err := svc.UpdateMeeting(context.Background(), "", models.UpdateMeetingInput{Topic: "Renamed"})

		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})

	t.Run("provider not found passes through", func(t *testing.T) {
		svc, provider, _ := setupMeetingServiceForTesting(t)
		provider.On("UpdateMeeting", mock.Anything, "404", mock.Anything).Return(domain.NewUpstreamError("update_meeting", 404, "Meeting does not exist"))

		err := svc.UpdateMeeting(context.Background(), "404", models.UpdateMeetingInput{Topic: "Renamed"})

		assert.Equal(t, domain.ErrorTypeUpstream, domain.GetErrorType(err))
	})
}

func TestMeetingService_DeleteMeeting(t *testing.T) {
	t.Run("publishes a deleted event", func(t *testing.T) {
		svc, provider, builder := setupMeetingServiceForTesting(t)
		provider.On("DeleteMeeting", mock.Anything, "123").Return(nil)
		builder.On("SendMeetingEvent", mock.Anything, mock.MatchedBy(func(msg models.MeetingEventMessage) bool {
			return msg.Action == models.ActionDeleted && msg.MeetingID == "123" && msg.StartTime == nil
		})).Return(nil)

		require.NoError(t, svc.DeleteMeeting(context.Background(), "123"))
		builder.AssertExpectations(t)
	})

	t.Run("failed delete publishes nothing", func(t *testing.T) {
		svc, provider, builder := setupMeetingServiceForTesting(t)
		provider.On("DeleteMeeting", mock.Anything, "123").Return(domain.NewUpstreamError("delete_meeting", 500, "boom"))

		assert.Error(t, svc.DeleteMeeting(context.Background(), "123"))
		builder.AssertNotCalled(t, "SendMeetingEvent", mock.Anything, mock.Anything)
	})

	t.Run("missing meeting id", func(t *testing.T) {
		svc, provider, _ := setupMeetingServiceForTesting(t)

		err := svc.DeleteMeeting(context.Background(), " ")

		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
		provider.AssertNotCalled(t, "DeleteMeeting", mock.Anything, mock.Anything)
	})
}

func TestMeetingService_UpcomingWebinars(t *testing.T) {
	svc, provider, _ := setupMeetingServiceForTesting(t)
	provider.On("ListMeetings", mock.Anything).Return([]models.Meeting{
		{ID: "past", Topic: "Weekly Webinar - Jan 15", StartTime: time.Date(2025, time.January, 15, 19, 0, 0, 0, time.UTC)},
		{ID: "later", Topic: "Weekly Webinar - Feb 5", StartTime: time.Date(2025, time.February, 5, 19, 0, 0, 0, time.UTC)},
		{ID: "other", Topic: "Board meeting", StartTime: time.Date(2025, time.January, 20, 19, 0, 0, 0, time.UTC)},
		{ID: "next", Topic: "weekly webinar - Jan 22", StartTime: time.Date(2025, time.January, 22, 19, 0, 0, 0, time.UTC)},
		{ID: "undated", Topic: "Weekly Webinar"},
		{ID: "third", Topic: "Weekly Webinar - Jan 29", StartTime: time.Date(2025, time.January, 29, 19, 0, 0, 0, time.UTC)},
	}, nil)

	webinars, err := svc.UpcomingWebinars(context.Background())

	require.NoError(t, err)
	require.Len(t, webinars, 2)
	assert.Equal(t, "next", webinars[0].Meeting.ID)
	assert.Equal(t, "third", webinars[1].Meeting.ID)
	assert.Equal(t, "Wednesday, January 22, 2025", webinars[0].DateLabel)
	assert.Equal(t, "2:00 PM EST", webinars[0].TimeLabel)
}

func TestMeetingService_NotReady(t *testing.T) {
	svc := &MeetingService{}

	_, err := svc.ListMeetings(context.Background())
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)

	_, err = svc.UpcomingWebinars(context.Background())
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}
