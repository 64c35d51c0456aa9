// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeeting_LocalDate(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name     string
		start    time.Time
		loc      *time.Location
		expected string
	}{
		{"evening in New York is the previous UTC day", time.Date(2025, time.January, 16, 2, 0, 0, 0, time.UTC), newYork, "2025-01-15"},
		{"afternoon keeps the date", time.Date(2025, time.January, 15, 19, 0, 0, 0, time.UTC), newYork, "2025-01-15"},
		{"summer offset", time.Date(2025, time.July, 17, 3, 59, 0, 0, time.UTC), newYork, "2025-07-16"},
		{"east of UTC moves forward", time.Date(2025, time.January, 15, 20, 0, 0, 0, time.UTC), tokyo, "2025-01-16"},
		{"utc", time.Date(2025, time.January, 16, 2, 0, 0, 0, time.UTC), time.UTC, "2025-01-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Meeting{StartTime: tt.start}.LocalDate(tt.loc))
		})
	}
}

func TestScheduleRun_Count(t *testing.T) {
	run := ScheduleRun{Results: []SlotOutcome{
		{Action: SlotActionCreated},
		{Action: SlotActionSkipped},
		{Action: SlotActionCreated},
		{Action: SlotActionFailed},
	}}

	assert.Equal(t, 2, run.Count(SlotActionCreated))
	assert.Equal(t, 1, run.Count(SlotActionSkipped))
	assert.Equal(t, 1, run.Count(SlotActionFailed))
}

func TestSlotMatch_Scheduled(t *testing.T) {
	assert.False(t, SlotMatch{Slot: Slot{Date: "2025-01-15"}}.Scheduled())
	assert.True(t, SlotMatch{Slot: Slot{Date: "2025-01-15"}, Meeting: &Meeting{ID: "1"}}.Scheduled())
}
