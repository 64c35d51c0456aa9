// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// SlotCalculator computes the upcoming dates of the recurring webinar.
type SlotCalculator interface {
	// ComputeSlots returns count slots starting at the first target weekday on or after reference's day
	ComputeSlots(count int, reference time.Time) []models.Slot

	// Location returns the timezone the slots are computed in
	Location() *time.Location
}
