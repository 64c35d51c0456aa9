// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package platforms builds the external integrations of the webinar service
// (Zoom, HubSpot and NATS) from environment variables.
package platforms

import (
	"os"
	"strconv"
	"strings"
)

// PlatformConfigs holds configuration for all external integrations
type PlatformConfigs struct {
	Zoom    ZoomConfig
	HubSpot HubSpotConfig
	NATS    NATSConfig
}

// NewPlatformConfigsFromEnv creates platform configurations from environment variables
func NewPlatformConfigsFromEnv() PlatformConfigs {
	return PlatformConfigs{
		Zoom:    NewZoomConfigFromEnv(),
		HubSpot: NewHubSpotConfigFromEnv(),
		NATS:    NewNATSConfigFromEnv(),
	}
}

func envBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
