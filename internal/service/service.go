// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import "time"

// ServiceConfig is the configuration for the Services.
type ServiceConfig struct {
	// WebinarTopic prefixes the topic of scheduled webinars and selects the
	// meetings offered on the registration page.
	WebinarTopic string
	// SlotCount is how many upcoming weeks are kept scheduled.
	SlotCount int
	// DurationMinutes is the length of scheduled webinars.
	DurationMinutes int

	// FormSubmissionEnabled submits the marketing form before the contact upsert.
	FormSubmissionEnabled bool
	// FormPageURI and FormPageName are sent as the form submission context.
	FormPageURI  string
	FormPageName string
}

// clock returns now, or time.Now when now is nil.
func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
