// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package platforms

import (
	"log/slog"
	"os"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/infrastructure/hubspot"
)

// HubSpotConfig holds the CRM configuration
type HubSpotConfig struct {
	PortalID        string
	FormID          string
	PrivateAppToken string
	// FormSubmissionEnabled submits the marketing form before the contact upsert.
	FormSubmissionEnabled bool
	FormPageURI           string
	FormPageName          string
}

// NewHubSpotConfigFromEnv creates a HubSpotConfig from environment variables
func NewHubSpotConfigFromEnv() HubSpotConfig {
	return HubSpotConfig{
		PortalID:              os.Getenv("HUBSPOT_PORTAL_ID"),
		FormID:                os.Getenv("HUBSPOT_FORM_ID"),
		PrivateAppToken:       os.Getenv("HUBSPOT_PRIVATE_APP_TOKEN"),
		FormSubmissionEnabled: envBool("HUBSPOT_FORM_SUBMISSION_ENABLED", true),
		FormPageURI:           os.Getenv("HUBSPOT_FORM_PAGE_URI"),
		FormPageName:          os.Getenv("HUBSPOT_FORM_PAGE_NAME"),
	}
}

// ToClientConfig converts the HubSpotConfig to a hubspot.Config
func (h HubSpotConfig) ToClientConfig() hubspot.Config {
	return hubspot.Config{
		PortalID:        h.PortalID,
		FormID:          h.FormID,
		PrivateAppToken: h.PrivateAppToken,
		FormsEnabled:    h.FormSubmissionEnabled,
	}
}

// SetupHubSpot builds the CRM client. Registrations fail with a configuration
// error while the client reports itself unconfigured.
func SetupHubSpot(config HubSpotConfig) *hubspot.Client {
	client := hubspot.NewClient(config.ToClientConfig())

	if client.Configured() {
		slog.Info("HubSpot integration configured",
			"portal_id", config.PortalID,
			"form_submission_enabled", config.FormSubmissionEnabled)
	} else {
		slog.Warn("HubSpot integration not configured - missing required environment variables",
			"has_portal_id", config.PortalID != "",
			"has_form_id", config.FormID != "",
			"has_private_app_token", config.PrivateAppToken != "",
			"form_submission_enabled", config.FormSubmissionEnabled)
	}
	return client
}
