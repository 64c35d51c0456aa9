// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import "time"

// Webinar schedule defaults
const (
	// DefaultWebinarTimezone is the timezone the weekly webinar is held in
	DefaultWebinarTimezone = "America/New_York"

	// DefaultWebinarWeekday is the weekday the webinar is held on
	DefaultWebinarWeekday = time.Wednesday

	// DefaultWebinarStartTime is the local wall-clock start time (HH:MM)
	DefaultWebinarStartTime = "14:00"

	// DefaultWebinarDurationMinutes is the default meeting length
	DefaultWebinarDurationMinutes = 60

	// DefaultWebinarSlotCount is how many upcoming weeks are kept scheduled
	DefaultWebinarSlotCount = 3

	// DefaultWebinarTopic is the topic prefix of scheduled webinars
	DefaultWebinarTopic = "Weekly Webinar"

	// MaxMeetingDurationMinutes is the maximum duration of a meeting in minutes
	MaxMeetingDurationMinutes = 600

	// ListMeetingsPageSize is the page size used when listing scheduled meetings
	ListMeetingsPageSize = 300
)
