// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNATSConn is a mock implementation of INatsConn
type MockNATSConn struct {
	mock.Mock
}

func (m *MockNATSConn) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockNATSConn) PublishMsg(msg *nats.Msg) error {
	args := m.Called(msg)
	return args.Error(0)
}

func TestMessageBuilder_SendMeetingEvent(t *testing.T) {
	start := time.Date(2025, time.January, 15, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		action          models.MessageAction
		expectedSubject string
	}{
		{"created", models.ActionCreated, models.WebinarMeetingCreatedSubject},
		{"deleted", models.ActionDeleted, models.WebinarMeetingDeletedSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := new(MockNATSConn)
			conn.On("IsConnected").Return(true)
			conn.On("PublishMsg", mock.MatchedBy(func(msg *nats.Msg) bool {
				return msg.Subject == tt.expectedSubject
			})).Return(nil).Run(func(args mock.Arguments) {
				msg := args.Get(0).(*nats.Msg)
				var payload models.MeetingEventMessage
				require.NoError(t, json.Unmarshal(msg.Data, &payload))
				assert.Equal(t, "85012345678", payload.MeetingID)
				assert.Equal(t, "req-1", msg.Header.Get(constants.RequestIDHeader))
			})

			ctx := context.WithValue(context.Background(), constants.RequestIDContextID, "req-1")
			err := NewMessageBuilder(conn).SendMeetingEvent(ctx, models.MeetingEventMessage{
				Action:    tt.action,
				MeetingID: "85012345678",
				StartTime: &start,
				Source:    models.EventSourceSchedule,
			})

			assert.NoError(t, err)
			conn.AssertExpectations(t)
		})
	}
}

func TestMessageBuilder_SendRegistrationEvent_PublishError(t *testing.T) {
	conn := new(MockNATSConn)
	conn.On("IsConnected").Return(true)
	conn.On("PublishMsg", mock.Anything).Return(errors.New("nats: connection closed"))

	err := NewMessageBuilder(conn).SendRegistrationEvent(context.Background(), models.RegistrationEventMessage{ContactID: "501"})

	assert.EqualError(t, err, "nats: connection closed")
}

func TestMessageBuilder_Disconnected(t *testing.T) {
	conn := new(MockNATSConn)
	conn.On("IsConnected").Return(false)

	err := NewMessageBuilder(conn).SendRegistrationEvent(context.Background(), models.RegistrationEventMessage{ContactID: "501"})

	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	conn.AssertNotCalled(t, "PublishMsg", mock.Anything)
}

func TestNoopMessageBuilder(t *testing.T) {
	var builder domain.MessageBuilder = NoopMessageBuilder{}
	assert.NoError(t, builder.SendMeetingEvent(context.Background(), models.MeetingEventMessage{}))
	assert.NoError(t, builder.SendRegistrationEvent(context.Background(), models.RegistrationEventMessage{}))
}
