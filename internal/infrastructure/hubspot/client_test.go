// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package hubspot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		PortalID:        "4242",
		FormID:          "form-1",
		PrivateAppToken: "pat-test",
		FormsEnabled:    true,
		APIBaseURL:      server.URL,
		FormsBaseURL:    server.URL,
	})
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient_Configured(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{"token and form ids", Config{PrivateAppToken: "t", PortalID: "p", FormID: "f", FormsEnabled: true}, true},
		{"no token", Config{PortalID: "p", FormID: "f", FormsEnabled: true}, false},
		{"forms enabled without form id", Config{PrivateAppToken: "t", PortalID: "p", FormsEnabled: true}, false},
		{"forms disabled needs only token", Config{PrivateAppToken: "t"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewClient(tt.config).Configured())
		})
	}
}

func TestClient_FindContactByEmail(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		expectedID string
	}{
		{"match", `{"total":1,"results":[{"id":"501","properties":{"email":"ada@example.com","firstname":"Ada","lastname":null}}]}`, "501"},
		{"no match", `{"total":0,"results":[]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/crm/v3/objects/contacts/search", r.URL.Path)
				assert.Equal(t, "Bearer pat-test", r.Header.Get("Authorization"))

				body := decodeBody(t, r)
				assert.EqualValues(t, 1, body["limit"])
				filter := body["filterGroups"].([]any)[0].(map[string]any)["filters"].([]any)[0].(map[string]any)
				assert.Equal(t, "email", filter["propertyName"])
				assert.Equal(t, "EQ", filter["operator"])
				assert.Equal(t, "ada@example.com", filter["value"])

				_, _ = w.Write([]byte(tt.response))
			})

			contact, err := client.FindContactByEmail(context.Background(), "ada@example.com")

			require.NoError(t, err)
			if tt.expectedID == "" {
				assert.Nil(t, contact)
				return
			}
			require.NotNil(t, contact)
			assert.Equal(t, tt.expectedID, contact.ID)
			assert.Equal(t, "Ada", contact.Properties["firstname"])
		})
	}
}

func TestClient_CreateContact(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		props := decodeBody(t, r)["properties"].(map[string]any)
		assert.Equal(t, "ada@example.com", props["email"])
		assert.Equal(t, "2025-01-15", props["webinar_date"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"777","properties":{"email":"ada@example.com"}}`))
	})

	contact, err := client.CreateContact(context.Background(), map[string]string{
		PropertyEmail:       "ada@example.com",
		PropertyWebinarDate: "2025-01-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "777", contact.ID)
}

func TestClient_UpdateContact(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/crm/v3/objects/contacts/501", r.URL.Path)
		props := decodeBody(t, r)["properties"].(map[string]any)
		assert.Equal(t, "Lovelace", props["lastname"])
		assert.NotContains(t, props, "email")
		_, _ = w.Write([]byte(`{"id":"501"}`))
	})

	err := client.UpdateContact(context.Background(), "501", map[string]string{PropertyLastName: "Lovelace"})
	assert.NoError(t, err)
}

func TestClient_CreateNote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v3/objects/notes", r.URL.Path)
		body := decodeBody(t, r)

		props := body["properties"].(map[string]any)
		assert.Equal(t, "Registered for Weekly Webinar", props["hs_note_body"])
		assert.NotEmpty(t, props["hs_timestamp"])

		assoc := body["associations"].([]any)[0].(map[string]any)
		assert.Equal(t, "501", assoc["to"].(map[string]any)["id"])
		kind := assoc["types"].([]any)[0].(map[string]any)
		assert.Equal(t, "HUBSPOT_DEFINED", kind["associationCategory"])
		assert.EqualValues(t, 202, kind["associationTypeId"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"n-1"}`))
	})

	err := client.CreateNote(context.Background(), models.ContactNote{ContactID: "501", Body: "Registered for Weekly Webinar"})
	assert.NoError(t, err)
}

func TestClient_SubmitForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions/v3/integration/submit/4242/form-1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "forms endpoint is unauthenticated")

		body := decodeBody(t, r)
		fields := body["fields"].([]any)
		require.Len(t, fields, 3)
		assert.Equal(t, map[string]any{"name": "email", "value": "ada@example.com"}, fields[0])
		assert.Equal(t, "https://webinars.example.com/register", body["context"].(map[string]any)["pageUri"])

		_, _ = w.Write([]byte(`{"inlineMessage":"Thanks"}`))
	})

	err := client.SubmitForm(context.Background(), models.FormSubmission{
		Fields: map[string]string{
			"firstname": "Ada",
			"lastname":  "Lovelace",
			"email":     "ada@example.com",
			"company":   "",
		},
		PageURI:  "https://webinars.example.com/register",
		PageName: "Webinar Registration",
	})
	assert.NoError(t, err)
}

func TestClient_ErrorResponsesBecomeUpstreamErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Property values were not valid","category":"VALIDATION_ERROR"}`))
	})

	err := client.UpdateContact(context.Background(), "501", map[string]string{PropertyCompany: "x"})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUpstream, domain.GetErrorType(err))

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, OperationUpdateContact, upstream.Operation)
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Equal(t, "Property values were not valid", upstream.StatusText)
}

func TestClient_MissingTokenFailsBeforeNetwork(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hits++ }))
	defer server.Close()

	client := NewClient(Config{APIBaseURL: server.URL, FormsBaseURL: server.URL})
	ctx := context.Background()

	_, searchErr := client.FindContactByEmail(ctx, "a@example.com")
	_, createErr := client.CreateContact(ctx, map[string]string{})
	noteErr := client.CreateNote(ctx, models.ContactNote{ContactID: "1"})
	formErr := client.SubmitForm(ctx, models.FormSubmission{})

	for _, err := range []error{searchErr, createErr, noteErr, formErr} {
		assert.Equal(t, domain.ErrorTypeConfiguration, domain.GetErrorType(err))
	}
	assert.Zero(t, hits)
}
