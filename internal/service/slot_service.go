// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
)

// SlotLabelLayout renders a slot date, e.g. "Wednesday, January 15, 2025".
const SlotLabelLayout = "Monday, January 2, 2006"

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// ParseWeekday accepts a full or three-letter English weekday name, in any case.
func ParseWeekday(value string) (time.Weekday, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for day := time.Sunday; day <= time.Saturday; day++ {
		name := strings.ToLower(day.String())
		if value == name || value == name[:3] {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", value)
}

// SlotService computes the dates of a weekly webinar held on one weekday.
type SlotService struct {
	location *time.Location
	weekday  time.Weekday
}

// Ensure SlotService implements SlotCalculator
var _ domain.SlotCalculator = (*SlotService)(nil)

// NewSlotService creates a SlotService for the weekday in loc.
func NewSlotService(loc *time.Location, weekday time.Weekday) *SlotService {
	if loc == nil {
		loc = time.UTC
	}
	return &SlotService{location: loc, weekday: weekday}
}

// Location returns the timezone the slots are computed in.
func (s *SlotService) Location() *time.Location {
	return s.location
}

// ComputeSlots returns count slots, one week apart, starting at the first
// target weekday on or after the calendar day of reference in the slot
// timezone. The result depends only on its arguments.
func (s *SlotService) ComputeSlots(count int, reference time.Time) []models.Slot {
	if count <= 0 {
		return []models.Slot{}
	}

	local := reference.In(s.location)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[s.weekday]},
		Count:     count,
		Dtstart:   dayStart,
	})
	if err != nil {
		slog.Error("invalid weekly recurrence", "weekday", s.weekday.String(), logging.ErrKey, err)
		return []models.Slot{}
	}

	occurrences := rule.All()
	slots := make([]models.Slot, 0, len(occurrences))
	for _, occurrence := range occurrences {
		day := occurrence.In(s.location)
		slots = append(slots, models.Slot{
			Date:      day.Format(models.DateLayout),
			DateLabel: day.Format(SlotLabelLayout),
			Label:     fmt.Sprintf("%s (%s)", day.Format(SlotLabelLayout), s.location.String()),
			Day:       day,
		})
	}
	return slots
}
