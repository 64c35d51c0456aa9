// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package platforms

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/infrastructure/messaging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
)

// NATSConfig holds the event bus configuration
type NATSConfig struct {
	URL        string
	ClientName string
}

// NewNATSConfigFromEnv creates a NATSConfig from environment variables
func NewNATSConfigFromEnv() NATSConfig {
	return NATSConfig{
		URL:        os.Getenv("NATS_URL"),
		ClientName: "lfx-v2-webinar-service",
	}
}

// SetupNATS connects to NATS when a URL is configured. Without one, events
// are dropped by a no-op builder and the returned connection is nil.
func SetupNATS(config NATSConfig) (domain.MessageBuilder, *nats.Conn, error) {
	if config.URL == "" {
		slog.Info("NATS not configured, webinar events will not be published")
		return messaging.NoopMessageBuilder{}, nil, nil
	}

	conn, err := nats.Connect(
		config.URL,
		nats.Name(config.ClientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("NATS disconnected", logging.ErrKey, err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			slog.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	slog.Info("NATS connection established", "url", conn.ConnectedUrl())
	return messaging.NewMessageBuilder(conn), conn, nil
}
