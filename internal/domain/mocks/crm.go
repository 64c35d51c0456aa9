// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// MockContactManager implements ContactManager for testing
type MockContactManager struct {
	mock.Mock
}

var _ domain.ContactManager = (*MockContactManager)(nil)

func (m *MockContactManager) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockContactManager) SubmitForm(ctx context.Context, submission models.FormSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockContactManager) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	args := m.Called(ctx, email)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.(*models.Contact), args.Error(1)
}

func (m *MockContactManager) CreateContact(ctx context.Context, properties map[string]string) (*models.Contact, error) {
	args := m.Called(ctx, properties)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.(*models.Contact), args.Error(1)
}

func (m *MockContactManager) UpdateContact(ctx context.Context, contactID string, properties map[string]string) error {
	args := m.Called(ctx, contactID, properties)
	return args.Error(0)
}

func (m *MockContactManager) CreateNote(ctx context.Context, note models.ContactNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
