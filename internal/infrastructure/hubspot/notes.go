// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package hubspot

import (
	"context"
	"net/http"
	"time"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain/models"
)

// NoteToContactAssociationTypeID is HubSpot's built-in note -> contact association
const NoteToContactAssociationTypeID = 202

type associationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

type associationTarget struct {
	ID string `json:"id"`
}

type association struct {
	To    associationTarget `json:"to"`
	Types []associationType `json:"types"`
}

type noteRequest struct {
	Properties   map[string]string `json:"properties"`
	Associations []association     `json:"associations"`
}

// CreateNote creates a note associated with the contact.
func (c *Client) CreateNote(ctx context.Context, note models.ContactNote) error {
	if err := c.requireToken(); err != nil {
		return err
	}

	request := noteRequest{
		Properties: map[string]string{
			"hs_note_body": note.Body,
			"hs_timestamp": time.Now().UTC().Format(time.RFC3339),
		},
		Associations: []association{{
			To: associationTarget{ID: note.ContactID},
			Types: []associationType{{
				AssociationCategory: "HUBSPOT_DEFINED",
				AssociationTypeID:   NoteToContactAssociationTypeID,
			}},
		}},
	}

	return c.doJSON(ctx, OperationCreateNote, http.MethodPost, c.config.APIBaseURL+"/crm/v3/objects/notes", true, request, nil)
}
