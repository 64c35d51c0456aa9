// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package platforms

import (
	"log/slog"
	"os"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/infrastructure/zoom"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/infrastructure/zoom/api"
)

// ZoomConfig holds Zoom-specific configuration
type ZoomConfig struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	// UserID owns the scheduled meetings; defaults to the account owner.
	UserID string
}

// NewZoomConfigFromEnv creates a ZoomConfig from environment variables
func NewZoomConfigFromEnv() ZoomConfig {
	return ZoomConfig{
		AccountID:    os.Getenv("ZOOM_ACCOUNT_ID"),
		ClientID:     os.Getenv("ZOOM_CLIENT_ID"),
		ClientSecret: os.Getenv("ZOOM_CLIENT_SECRET"),
		UserID:       os.Getenv("ZOOM_USER_ID"),
	}
}

// IsConfigured returns true if all required Zoom credentials are provided
func (z ZoomConfig) IsConfigured() bool {
	return z.AccountID != "" && z.ClientID != "" && z.ClientSecret != ""
}

// ToAPIConfig converts the ZoomConfig to an api.Config
func (z ZoomConfig) ToAPIConfig() api.Config {
	return api.Config{
		AccountID:    z.AccountID,
		ClientID:     z.ClientID,
		ClientSecret: z.ClientSecret,
	}
}

// SetupZoom builds the Zoom meeting provider. The provider is returned even
// without credentials: every call then fails with a configuration error
// before any network request, so the rest of the service keeps running.
func SetupZoom(config ZoomConfig, timezone, startTime string) *zoom.ZoomProvider {
	if config.IsConfigured() {
		slog.Info("Zoom platform integration configured",
			"account_id", config.AccountID,
			"client_id", config.ClientID,
			"user_id", config.UserID)
	} else {
		slog.Warn("Zoom platform integration not configured - missing required environment variables",
			"has_account_id", config.AccountID != "",
			"has_client_id", config.ClientID != "",
			"has_client_secret", config.ClientSecret != "")
	}

	return zoom.NewZoomProvider(api.NewClient(config.ToAPIConfig()), zoom.ProviderConfig{
		UserID:    config.UserID,
		Timezone:  timezone,
		StartTime: startTime,
	})
}
