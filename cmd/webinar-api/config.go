// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/middleware"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// flags are the command line flags for the webinar service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the webinar service.
type environment struct {
	Port string

	AdminPassword     string
	AdminCookieSecure bool
	CronSecret        string
	PublicHostname    string
	TrustedProxies    []netip.Prefix

	Webinar webinarConfig
}

// webinarConfig describes the recurring webinar.
type webinarConfig struct {
	Topic           string
	Location        *time.Location
	Weekday         time.Weekday
	StartTime       string
	DurationMinutes int
	SlotCount       int
}

// loadDotEnv loads a .env file for local development. A missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.With(logging.ErrKey, err).Warn("error loading .env file")
	}
}

// parseFlags parses command line flags for the webinar service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the webinar service. Invalid
// values are logged and replaced by their defaults.
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return environment{
		Port:              port,
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminCookieSecure: envBool("ADMIN_COOKIE_SECURE", true),
		CronSecret:        os.Getenv("CRON_SECRET"),
		PublicHostname:    os.Getenv("PUBLIC_HOSTNAME"),
		TrustedProxies:    parseTrustedProxies(),
		Webinar:           parseWebinarConfig(),
	}
}

// parseTrustedProxies reads TRUSTED_PROXY_CIDRS. An invalid list trusts no proxy.
func parseTrustedProxies() []netip.Prefix {
	raw := os.Getenv("TRUSTED_PROXY_CIDRS")
	proxies, err := middleware.ParseTrustedProxies(raw)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("invalid TRUSTED_PROXY_CIDRS provided, forwarding headers will be ignored")
		return nil
	}
	return proxies
}

func parseWebinarConfig() webinarConfig {
	cfg := webinarConfig{
		Topic:           envString("WEBINAR_TOPIC", constants.DefaultWebinarTopic),
		Weekday:         constants.DefaultWebinarWeekday,
		StartTime:       constants.DefaultWebinarStartTime,
		DurationMinutes: envInt("WEBINAR_DURATION_MINUTES", constants.DefaultWebinarDurationMinutes),
		SlotCount:       envInt("WEBINAR_SLOT_COUNT", constants.DefaultWebinarSlotCount),
	}

	tz := envString("WEBINAR_TIMEZONE", constants.DefaultWebinarTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.With(logging.ErrKey, err, "timezone", tz).Error("invalid WEBINAR_TIMEZONE provided, using default")
		loc, err = time.LoadLocation(constants.DefaultWebinarTimezone)
		if err != nil {
			slog.With(logging.ErrKey, err).Error("default timezone unavailable, using UTC")
			loc = time.UTC
		}
	}
	cfg.Location = loc

	if raw := os.Getenv("WEBINAR_WEEKDAY"); raw != "" {
		day, err := service.ParseWeekday(raw)
		if err != nil {
			slog.With(logging.ErrKey, err, "weekday", raw).Error("invalid WEBINAR_WEEKDAY provided, using default")
		} else {
			cfg.Weekday = day
		}
	}

	if raw := os.Getenv("WEBINAR_START_TIME"); raw != "" {
		start, err := time.Parse("15:04", strings.TrimSpace(raw))
		if err != nil {
			slog.With(logging.ErrKey, err, "start_time", raw).Error("invalid WEBINAR_START_TIME provided, using default")
		} else {
			// Zero-padded so the provider receives a valid HH:MM:SS.
			cfg.StartTime = start.Format("15:04")
		}
	}

	if cfg.DurationMinutes < 1 || cfg.DurationMinutes > constants.MaxMeetingDurationMinutes {
		slog.Error("invalid WEBINAR_DURATION_MINUTES provided, using default", "duration", cfg.DurationMinutes)
		cfg.DurationMinutes = constants.DefaultWebinarDurationMinutes
	}
	if cfg.SlotCount < 1 {
		slog.Error("invalid WEBINAR_SLOT_COUNT provided, using default", "slot_count", cfg.SlotCount)
		cfg.SlotCount = constants.DefaultWebinarSlotCount
	}

	return cfg
}

func envString(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.With(logging.ErrKey, err, "key", key).Error("invalid integer environment variable, using default")
		return defaultValue
	}
	return value
}

func envBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.With(logging.ErrKey, err, "key", key).Error("invalid boolean environment variable, using default")
		return defaultValue
	}
	return value
}
