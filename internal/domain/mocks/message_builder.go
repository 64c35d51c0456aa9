// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// MockMessageBuilder implements MessageBuilder for testing
type MockMessageBuilder struct {
	mock.Mock
}

var _ domain.MessageBuilder = (*MockMessageBuilder)(nil)

func (m *MockMessageBuilder) SendMeetingEvent(ctx context.Context, msg models.MeetingEventMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendRegistrationEvent(ctx context.Context, msg models.RegistrationEventMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
