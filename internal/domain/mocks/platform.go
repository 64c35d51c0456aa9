// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// MockMeetingProvider implements MeetingProvider for testing
type MockMeetingProvider struct {
	mock.Mock
}

var _ domain.MeetingProvider = (*MockMeetingProvider)(nil)

func (m *MockMeetingProvider) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	args := m.Called(ctx)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]models.Meeting), args.Error(1)
}

func (m *MockMeetingProvider) CreateMeeting(ctx context.Context, input models.CreateMeetingInput) (*models.Meeting, error) {
	args := m.Called(ctx, input)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.(*models.Meeting), args.Error(1)
}

func (m *MockMeetingProvider) UpdateMeeting(ctx context.Context, meetingID string, input models.UpdateMeetingInput) error {
	args := m.Called(ctx, meetingID, input)
	return args.Error(0)
}

func (m *MockMeetingProvider) DeleteMeeting(ctx context.Context, meetingID string) error {
	args := m.Called(ctx, meetingID)
	return args.Error(0)
}
