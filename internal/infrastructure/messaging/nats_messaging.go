// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
	"github.com/nats-io/nats.go"
)

// INatsConn is the part of a NATS connection the MessageBuilder needs.
type INatsConn interface {
	IsConnected() bool
	PublishMsg(msg *nats.Msg) error
}

// MessageBuilder builds webinar events and sends them to the NATS server.
type MessageBuilder struct {
	NatsConn INatsConn
}

var _ domain.MessageBuilder = (*MessageBuilder)(nil)

// NewMessageBuilder creates a new MessageBuilder.
func NewMessageBuilder(natsConn INatsConn) *MessageBuilder {
	return &MessageBuilder{
		NatsConn: natsConn,
	}
}

// sendMessage sends the message to the NATS server, carrying the request id
// of the originating HTTP request as a header.
func (m *MessageBuilder) sendMessage(ctx context.Context, subject string, data []byte) error {
	if !m.NatsConn.IsConnected() {
		slog.WarnContext(ctx, "NATS connection is not connected, dropping message", "subject", subject)
		return domain.ErrServiceUnavailable
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	if requestID, ok := ctx.Value(constants.RequestIDContextID).(string); ok && requestID != "" {
		msg.Header.Set(constants.RequestIDHeader, requestID)
	}

	if err := m.NatsConn.PublishMsg(msg); err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err, "subject", subject)
		return err
	}
	slog.DebugContext(ctx, "sent message to NATS", "subject", subject)
	return nil
}

func (m *MessageBuilder) sendJSON(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message into JSON", logging.ErrKey, err, "subject", subject)
		return err
	}
	return m.sendMessage(ctx, subject, data)
}

// SendMeetingEvent publishes a created or deleted meeting.
func (m *MessageBuilder) SendMeetingEvent(ctx context.Context, msg models.MeetingEventMessage) error {
	subject := models.WebinarMeetingCreatedSubject
	if msg.Action == models.ActionDeleted {
		subject = models.WebinarMeetingDeletedSubject
	}
	return m.sendJSON(ctx, subject, msg)
}

// SendRegistrationEvent publishes a completed registration.
func (m *MessageBuilder) SendRegistrationEvent(ctx context.Context, msg models.RegistrationEventMessage) error {
	return m.sendJSON(ctx, models.WebinarRegistrationSubject, msg)
}

// NoopMessageBuilder is used when no NATS server is configured.
type NoopMessageBuilder struct{}

var _ domain.MessageBuilder = NoopMessageBuilder{}

// SendMeetingEvent does nothing.
func (NoopMessageBuilder) SendMeetingEvent(context.Context, models.MeetingEventMessage) error {
	return nil
}

// SendRegistrationEvent does nothing.
func (NoopMessageBuilder) SendRegistrationEvent(context.Context, models.RegistrationEventMessage) error {
	return nil
}
