// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// ContactManager defines the CRM operations used by the registration flow.
type ContactManager interface {
	// Configured reports whether the CRM credentials are present
	Configured() bool

	// SubmitForm records a marketing-form submission
	SubmitForm(ctx context.Context, submission models.FormSubmission) error

	// FindContactByEmail returns the contact whose email matches exactly, or nil when none does
	FindContactByEmail(ctx context.Context, email string) (*models.Contact, error)

	// CreateContact creates a contact and returns it with its id
	CreateContact(ctx context.Context, properties map[string]string) (*models.Contact, error)

	// UpdateContact patches the given properties on an existing contact
	UpdateContact(ctx context.Context, contactID string, properties map[string]string) error

	// CreateNote attaches a note to a contact
	CreateNote(ctx context.Context, note models.ContactNote) error
}
