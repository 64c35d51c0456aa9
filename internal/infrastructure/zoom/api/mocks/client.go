// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/infrastructure/zoom/api"
)

// MockClient is a complete mock implementation of the Zoom API client
type MockClient struct {
	*MockMeetingsAPI
}

// NewMockClient creates a new mock client with default implementations
func NewMockClient() *MockClient {
	return &MockClient{
		MockMeetingsAPI: &MockMeetingsAPI{},
	}
}

// Ensure MockClient implements ClientAPI interface
var _ api.ClientAPI = (*MockClient)(nil)
