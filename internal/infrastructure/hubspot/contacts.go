// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package hubspot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// Contact property names
const (
	PropertyEmail       = "email"
	PropertyFirstName   = "firstname"
	PropertyLastName    = "lastname"
	PropertyCompany     = "company"
	PropertyRole        = "type_mktg"
	PropertyWebinarDate = "webinar_date"
)

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchFilterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	FilterGroups []searchFilterGroup `json:"filterGroups"`
	Properties   []string            `json:"properties"`
	Limit        int                 `json:"limit"`
}

type contactObject struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type searchResponse struct {
	Total   int             `json:"total"`
	Results []contactObject `json:"results"`
}

type propertiesBody struct {
	Properties map[string]string `json:"properties"`
}

func (c *Client) requireToken() error {
	if c.config.PrivateAppToken == "" {
		return domain.NewConfigurationError("hubspot private app token is not configured")
	}
	return nil
}

// FindContactByEmail searches for a contact whose email equals email.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	request := searchRequest{
		FilterGroups: []searchFilterGroup{{
			Filters: []searchFilter{{PropertyName: PropertyEmail, Operator: "EQ", Value: email}},
		}},
		Properties: []string{PropertyEmail, PropertyFirstName, PropertyLastName},
		Limit:      1,
	}

	var resp searchResponse
	if err := c.doJSON(ctx, OperationSearchContact, http.MethodPost,
		c.config.APIBaseURL+"/crm/v3/objects/contacts/search", true, request, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}
	found := resp.Results[0]
	return &models.Contact{ID: found.ID, Properties: found.Properties}, nil
}

// CreateContact creates a contact with the given properties.
func (c *Client) CreateContact(ctx context.Context, properties map[string]string) (*models.Contact, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var created contactObject
	if err := c.doJSON(ctx, OperationCreateContact, http.MethodPost,
		c.config.APIBaseURL+"/crm/v3/objects/contacts", true, propertiesBody{Properties: properties}, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, domain.NewUpstreamError(OperationCreateContact, http.StatusOK, "response carried no contact id")
	}

	return &models.Contact{ID: created.ID, Properties: created.Properties}, nil
}

// UpdateContact patches properties on an existing contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, properties map[string]string) error {
	if err := c.requireToken(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/crm/v3/objects/contacts/%s", c.config.APIBaseURL, url.PathEscape(contactID))
	return c.doJSON(ctx, OperationUpdateContact, http.MethodPatch, endpoint, true, propertiesBody{Properties: properties}, nil)
}
