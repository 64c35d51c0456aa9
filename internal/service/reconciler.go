// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// Reconcile pairs every slot with the meeting scheduled on the same calendar
// date in loc. Meetings are keyed by their local date, not their UTC date.
// When several meetings share a date the first one in listing order is used.
func Reconcile(slots []models.Slot, meetings []models.Meeting, loc *time.Location) []models.SlotMatch {
	if loc == nil {
		loc = time.UTC
	}

	byDate := make(map[string]*models.Meeting, len(meetings))
	for _, meeting := range meetings {
		if meeting.StartTime.IsZero() {
			continue
		}
		date := meeting.LocalDate(loc)
		if _, taken := byDate[date]; taken {
			continue
		}
		byDate[date] = &meeting
	}

	matches := make([]models.SlotMatch, 0, len(slots))
	for _, slot := range slots {
		matches = append(matches, models.SlotMatch{Slot: slot, Meeting: byDate[slot.Date]})
	}
	return matches
}
