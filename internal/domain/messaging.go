// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// MessageBuilder publishes webinar events for other services.
// Publishing is best-effort: callers log a failure and carry on.
type MessageBuilder interface {
	SendMeetingEvent(ctx context.Context, msg models.MeetingEventMessage) error
	SendRegistrationEvent(ctx context.Context, msg models.RegistrationEventMessage) error
}
