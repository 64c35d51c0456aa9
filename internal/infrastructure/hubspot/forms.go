// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package hubspot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

type formField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type formContext struct {
	PageURI  string `json:"pageUri,omitempty"`
	PageName string `json:"pageName,omitempty"`
}

type formRequest struct {
	Fields  []formField  `json:"fields"`
	Context *formContext `json:"context,omitempty"`
}

// SubmitForm records a submission of the configured marketing form. The
// Forms API is unauthenticated; empty field values are left out.
func (c *Client) SubmitForm(ctx context.Context, submission models.FormSubmission) error {
	if c.config.PortalID == "" || c.config.FormID == "" {
		return domain.NewConfigurationError("hubspot portal or form id is not configured")
	}

	names := make([]string, 0, len(submission.Fields))
	for name, value := range submission.Fields {
		if value != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	request := formRequest{Fields: make([]formField, 0, len(names))}
	for _, name := range names {
		request.Fields = append(request.Fields, formField{Name: name, Value: submission.Fields[name]})
	}
	if submission.PageURI != "" || submission.PageName != "" {
		request.Context = &formContext{PageURI: submission.PageURI, PageName: submission.PageName}
	}

	endpoint := fmt.Sprintf("%s/submissions/v3/integration/submit/%s/%s",
		c.config.FormsBaseURL, url.PathEscape(c.config.PortalID), url.PathEscape(c.config.FormID))
	return c.doJSON(ctx, OperationSubmitForm, http.MethodPost, endpoint, false, request, nil)
}
