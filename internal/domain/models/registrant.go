// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

// Registrant is a person signing up for a webinar through the public page.
// It is built per submission and not retained after the CRM write.
type Registrant struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Role      string `json:"role,omitempty"`

	Meeting RegistrantMeeting `json:"meeting"`
}

// RegistrantMeeting is the webinar the registrant picked, as displayed on the page.
type RegistrantMeeting struct {
	ID        string `json:"id"`
	Topic     string `json:"topic,omitempty"`
	DateLabel string `json:"date_label,omitempty"`
	StartTime string `json:"start_time,omitempty"` // ISO 8601 as returned by the provider
	JoinURL   string `json:"join_url,omitempty"`
}

// Contact is a CRM contact record.
type Contact struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties,omitempty"`
}

// ContactNote is the registration note attached to a contact.
type ContactNote struct {
	ContactID string
	Body      string
}

// FormSubmission is a marketing-form submission recorded before the contact upsert.
type FormSubmission struct {
	Fields   map[string]string
	PageURI  string
	PageName string
}

// RegistrationStep names a sub-step of the registration flow.
type RegistrationStep string

const (
	RegistrationStepFormSubmission RegistrationStep = "form_submission"
	RegistrationStepContactSearch  RegistrationStep = "contact_search"
	RegistrationStepContactUpdate  RegistrationStep = "contact_update"
	RegistrationStepNote           RegistrationStep = "note"
)

// DiagnosticStepFailed is the only error text a diagnostic carries.
const DiagnosticStepFailed = "step did not complete"

// Diagnostic records a best-effort step that failed without failing the registration.
type Diagnostic struct {
	Step  RegistrationStep `json:"step"`
	Error string           `json:"error"`
}

// RegistrationResult is returned by a successful registration.
type RegistrationResult struct {
	ContactID   string       `json:"contact_id"`
	JoinURL     string       `json:"join_url"`
	Created     bool         `json:"created"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
