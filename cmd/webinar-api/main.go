// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is the webinar service API. It keeps the weekly webinar
// scheduled on Zoom, serves the admin dashboard and records public
// registrations in HubSpot.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/linuxfoundation/lfx-v2-webinar-service/cmd/webinar-api/platforms"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/utils"
)

func main() {
	loadDotEnv()

	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	otelShutdown, err := utils.SetupOTelSDK(context.Background())
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up OpenTelemetry")
		os.Exit(1)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Initialize platform integrations
	platformConfigs := platforms.NewPlatformConfigsFromEnv()
	provider := platforms.SetupZoom(platformConfigs.Zoom, env.Webinar.Location.String(), env.Webinar.StartTime)
	contacts := platforms.SetupHubSpot(platformConfigs.HubSpot)
	messageBuilder, natsConn, err := platforms.SetupNATS(platformConfigs.NATS)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		os.Exit(1)
	}

	// Initialize services
	serviceConfig := service.ServiceConfig{
		WebinarTopic:          env.Webinar.Topic,
		SlotCount:             env.Webinar.SlotCount,
		DurationMinutes:       env.Webinar.DurationMinutes,
		FormSubmissionEnabled: platformConfigs.HubSpot.FormSubmissionEnabled,
		FormPageURI:           platformConfigs.HubSpot.FormPageURI,
		FormPageName:          platformConfigs.HubSpot.FormPageName,
	}
	if env.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD not set, dashboard login is disabled")
	}
	authService := service.NewAuthService(env.AdminPassword)
	slotService := service.NewSlotService(env.Webinar.Location, env.Webinar.Weekday)
	scheduleService := service.NewScheduleService(provider, slotService, messageBuilder, serviceConfig)
	meetingService := service.NewMeetingService(provider, messageBuilder, env.Webinar.Location, serviceConfig)
	registrationService := service.NewRegistrationService(contacts, messageBuilder, env.Webinar.Location, serviceConfig)

	api := NewWebinarAPI(authService, scheduleService, meetingService, registrationService, env.AdminCookieSecure)

	slog.Info("webinar schedule configured",
		"topic", env.Webinar.Topic,
		"timezone", env.Webinar.Location.String(),
		"weekday", env.Webinar.Weekday.String(),
		"start_time", env.Webinar.StartTime,
		"slot_count", env.Webinar.SlotCount,
	)

	httpServer := setupHTTPServer(flags, newHandler(api, routeConfig{
		CronSecret:     env.CronSecret,
		PublicHostname: env.PublicHostname,
		TrustedProxies: env.TrustedProxies,
	}), &gracefulCloseWG)

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	closers := []func(context.Context) error{}
	if natsConn != nil {
		closers = append(closers, func(context.Context) error {
			return natsConn.Drain()
		})
	}
	closers = append(closers, otelShutdown)

	gracefulShutdown(httpServer, closers, &gracefulCloseWG)
}
