// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import "time"

// DateLayout is the layout of calendar dates exchanged with clients and used as reconciliation keys.
const DateLayout = "2006-01-02"

// Slot is one instance of the recurring webinar: a calendar date without a time component.
type Slot struct {
	// Date is the calendar date in the webinar timezone, formatted with DateLayout.
	Date string `json:"date"`
	// DateLabel is the long form of Date, e.g. "Wednesday, January 15, 2025".
	DateLabel string `json:"date_label"`
	// Label is DateLabel qualified with the timezone name.
	Label string `json:"label"`
	// Day is midnight of Date in the webinar timezone.
	Day time.Time `json:"-"`
}

// SlotMatch pairs a slot with the provider meeting already scheduled on that date, if any.
type SlotMatch struct {
	Slot    Slot     `json:"slot"`
	Meeting *Meeting `json:"meeting"`
}

// Scheduled reports whether a meeting already exists for the slot.
func (m SlotMatch) Scheduled() bool {
	return m.Meeting != nil
}

// SlotAction is the outcome of a scheduling run for one slot.
type SlotAction string

const (
	SlotActionCreated SlotAction = "created"
	SlotActionSkipped SlotAction = "skipped"
	SlotActionFailed  SlotAction = "failed"
)

// SlotOutcome is reported for every slot of a scheduling run.
type SlotOutcome struct {
	Date      string     `json:"date"`
	Label     string     `json:"label"`
	Action    SlotAction `json:"action"`
	Topic     string     `json:"topic,omitempty"`
	MeetingID string     `json:"meeting_id,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// ScheduleRun is the result of one reconciliation run.
type ScheduleRun struct {
	Results []SlotOutcome `json:"results"`
}

// Count returns how many slots ended with the given action.
func (r ScheduleRun) Count(action SlotAction) int {
	n := 0
	for _, o := range r.Results {
		if o.Action == action {
			n++
		}
	}
	return n
}
