// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/logging"
)

// CRM property and form field names written for a registrant.
const (
	fieldFirstName   = "firstname"
	fieldLastName    = "lastname"
	fieldEmail       = "email"
	fieldCompany     = "company"
	fieldRole        = "type_mktg"
	fieldWebinarDate = "webinar_date"
)

// RegistrationService writes webinar registrants to the CRM.
type RegistrationService struct {
	Contacts       domain.ContactManager
	MessageBuilder domain.MessageBuilder
	Location       *time.Location
	Config         ServiceConfig

	now func() time.Time
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	contacts domain.ContactManager,
	messageBuilder domain.MessageBuilder,
	location *time.Location,
	config ServiceConfig,
) *RegistrationService {
	if location == nil {
		location = time.UTC
	}
	return &RegistrationService{
		Contacts:       contacts,
		MessageBuilder: messageBuilder,
		Location:       location,
		Config:         config,
		now:            time.Now,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *RegistrationService) ServiceReady() bool {
	return s.Contacts != nil && s.MessageBuilder != nil
}

// Register finds or creates the registrant's contact by email and attaches a
// registration note. Only the contact write itself can fail the registration;
// a failed form submission, patch of an existing contact or note is recorded
// as a diagnostic. Diagnostics name the step only; upstream detail stays in
// the log. A failed event publish is logged and not reported.
func (s *RegistrationService) Register(ctx context.Context, registrant models.Registrant) (*models.RegistrationResult, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.ErrServiceUnavailable
	}

	registrant = normalizeRegistrant(registrant)
	if err := validateRegistrant(registrant); err != nil {
		return nil, err
	}
	if !s.Contacts.Configured() {
		slog.ErrorContext(ctx, "CRM credentials are not configured")
		return nil, domain.NewConfigurationError("crm credentials are not configured")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_id", registrant.Meeting.ID))
	result := &models.RegistrationResult{JoinURL: registrant.Meeting.JoinURL}

	if s.Config.FormSubmissionEnabled {
		err := s.Contacts.SubmitForm(ctx, models.FormSubmission{
			Fields: map[string]string{
				fieldFirstName: registrant.FirstName,
				fieldLastName:  registrant.LastName,
				fieldEmail:     registrant.Email,
				fieldCompany:   registrant.Company,
				fieldRole:      registrant.Role,
			},
			PageURI:  s.Config.FormPageURI,
			PageName: s.Config.FormPageName,
		})
		if err != nil {
			s.recordDiagnostic(ctx, result, models.RegistrationStepFormSubmission, err)
		}
	}

	existing, err := s.Contacts.FindContactByEmail(ctx, registrant.Email)
	if err != nil {
		// Treated as no match; the create below still protects the registration.
		s.recordDiagnostic(ctx, result, models.RegistrationStepContactSearch, err)
		existing = nil
	}

	properties := s.contactProperties(ctx, registrant)
	if existing != nil {
		result.ContactID = existing.ID
		if err := s.Contacts.UpdateContact(ctx, existing.ID, properties); err != nil {
			s.recordDiagnostic(ctx, result, models.RegistrationStepContactUpdate, err)
		}
	} else {
		properties[fieldEmail] = registrant.Email
		created, err := s.Contacts.CreateContact(ctx, properties)
		if err != nil {
			slog.ErrorContext(ctx, "failed to create CRM contact", logging.ErrKey, err)
			return nil, err
		}
		result.ContactID = created.ID
		result.Created = true
	}

	ctx = logging.AppendCtx(ctx, slog.String("contact_id", result.ContactID))

	if err := s.Contacts.CreateNote(ctx, models.ContactNote{ContactID: result.ContactID, Body: registrationNote(s.Config.WebinarTopic, registrant)}); err != nil {
		s.recordDiagnostic(ctx, result, models.RegistrationStepNote, err)
	}

	if err := s.MessageBuilder.SendRegistrationEvent(ctx, models.RegistrationEventMessage{
		ContactID:  result.ContactID,
		Created:    result.Created,
		MeetingID:  registrant.Meeting.ID,
		Email:      registrant.Email,
		OccurredAt: clock(s.now).UTC(),
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish registration event", logging.ErrKey, err)
	}

	slog.InfoContext(ctx, "registrant written to CRM",
		"created", result.Created,
		"diagnostics", len(result.Diagnostics),
	)
	return result, nil
}

func (s *RegistrationService) recordDiagnostic(ctx context.Context, result *models.RegistrationResult, step models.RegistrationStep, err error) {
	slog.WarnContext(ctx, "registration step failed", "step", string(step), logging.ErrKey, err)
	result.Diagnostics = append(result.Diagnostics, models.Diagnostic{Step: step, Error: models.DiagnosticStepFailed})
}

// contactProperties returns the properties written on create and patch.
// webinar_date is the meeting's calendar date in the webinar timezone.
func (s *RegistrationService) contactProperties(ctx context.Context, registrant models.Registrant) map[string]string {
	properties := map[string]string{
		fieldFirstName: registrant.FirstName,
		fieldLastName:  registrant.LastName,
	}
	if registrant.Company != "" {
		properties[fieldCompany] = registrant.Company
	}
	if registrant.Role != "" {
		properties[fieldRole] = registrant.Role
	}
	if registrant.Meeting.StartTime != "" {
		start, err := time.Parse(time.RFC3339, registrant.Meeting.StartTime)
		if err != nil {
			slog.WarnContext(ctx, "unparseable meeting start time, webinar_date not set",
				"start_time", registrant.Meeting.StartTime, logging.ErrKey, err)
		} else {
			properties[fieldWebinarDate] = start.In(s.Location).Format(models.DateLayout)
		}
	}
	return properties
}

func registrationNote(webinar string, registrant models.Registrant) string {
	if webinar == "" {
		webinar = registrant.Meeting.Topic
	}
	return strings.Join([]string{
		"Registered for " + webinar,
		"Date: " + registrant.Meeting.DateLabel,
		"Topic: " + registrant.Meeting.Topic,
		"Join URL: " + registrant.Meeting.JoinURL,
		"Meeting ID: " + registrant.Meeting.ID,
	}, "\n")
}

func normalizeRegistrant(r models.Registrant) models.Registrant {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Role = strings.TrimSpace(r.Role)
	r.Meeting.ID = strings.TrimSpace(r.Meeting.ID)
	return r
}

func validateRegistrant(r models.Registrant) error {
	var missing []string
	if r.FirstName == "" {
		missing = append(missing, "first name")
	}
	if r.LastName == "" {
		missing = append(missing, "last name")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Meeting.ID == "" {
		missing = append(missing, "meeting id")
	}
	if len(missing) > 0 {
		return domain.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	if !strings.Contains(r.Email, "@") {
		return domain.NewValidationError("email address is not valid")
	}
	return nil
}
