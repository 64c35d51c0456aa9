// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/constants"
)

// MeetingTypeScheduled is the Zoom meeting type of a scheduled meeting.
const MeetingTypeScheduled = 2

// ApprovalTypeNoRegistration disables Zoom's own registration.
const ApprovalTypeNoRegistration = 2

// CreateMeetingRequest represents the request to create a Zoom meeting
type CreateMeetingRequest struct {
	Topic     string           `json:"topic"`
	Type      int              `json:"type"`
	StartTime string           `json:"start_time,omitempty"`
	Duration  int              `json:"duration,omitempty"`
	Timezone  string           `json:"timezone,omitempty"`
	Agenda    string           `json:"agenda,omitempty"`
	Settings  *MeetingSettings `json:"settings,omitempty"`
}

// UpdateMeetingRequest represents the request to update a Zoom meeting
type UpdateMeetingRequest struct {
	Topic  string  `json:"topic,omitempty"`
	Agenda *string `json:"agenda,omitempty"`
}

// MeetingSettings represents Zoom meeting settings
type MeetingSettings struct {
	HostVideo        bool   `json:"host_video"`
	ParticipantVideo bool   `json:"participant_video"`
	JoinBeforeHost   bool   `json:"join_before_host"`
	MuteUponEntry    bool   `json:"mute_upon_entry"`
	WaitingRoom      bool   `json:"waiting_room"`
	ApprovalType     int    `json:"approval_type"`
	Audio            string `json:"audio"`
	AutoRecording    string `json:"auto_recording"`
}

// CreateMeetingResponse represents the response from creating a Zoom meeting
type CreateMeetingResponse struct {
	ID        int64            `json:"id"`
	UUID      string           `json:"uuid"`
	HostID    string           `json:"host_id"`
	Topic     string           `json:"topic"`
	Type      int              `json:"type"`
	StartTime string           `json:"start_time"`
	Duration  int              `json:"duration"`
	Timezone  string           `json:"timezone"`
	Agenda    string           `json:"agenda"`
	JoinURL   string           `json:"join_url"`
	Password  string           `json:"password"`
	Settings  *MeetingSettings `json:"settings"`
}

// MeetingSummary is one entry of the scheduled meetings listing
type MeetingSummary struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	Topic     string `json:"topic"`
	Type      int    `json:"type"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone"`
	Agenda    string `json:"agenda"`
	JoinURL   string `json:"join_url"`
	Password  string `json:"password"`
}

// ListMeetingsResponse is the body of GET /users/{userId}/meetings
type ListMeetingsResponse struct {
	PageSize      int              `json:"page_size"`
	TotalRecords  int              `json:"total_records"`
	NextPageToken string           `json:"next_page_token"`
	Meetings      []MeetingSummary `json:"meetings"`
}

// ListMeetings returns the user's scheduled meetings in one page
func (c *Client) ListMeetings(ctx context.Context, userID string) ([]MeetingSummary, error) {
	query := url.Values{}
	query.Set("type", "scheduled")
	query.Set("page_size", fmt.Sprint(constants.ListMeetingsPageSize))
	path := fmt.Sprintf("/users/%s/meetings?%s", url.PathEscape(userID), query.Encode())

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(ctx, resp)
	}

	var listResp ListMeetingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode meetings response: %w", err)
	}

	return listResp.Meetings, nil
}

// CreateMeeting creates a new meeting in Zoom for the specified user
// This is a pure API call with no business logic
func (c *Client) CreateMeeting(ctx context.Context, userID string, request *CreateMeetingRequest) (*CreateMeetingResponse, error) {
	path := fmt.Sprintf("/users/%s/meetings", url.PathEscape(userID))
	resp, err := c.doRequest(ctx, http.MethodPost, path, request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(ctx, resp)
	}

	var meetingResp CreateMeetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&meetingResp); err != nil {
		return nil, fmt.Errorf("failed to decode meeting response: %w", err)
	}

	return &meetingResp, nil
}

// UpdateMeeting updates an existing meeting in Zoom
func (c *Client) UpdateMeeting(ctx context.Context, meetingID string, request *UpdateMeetingRequest) error {
	path := fmt.Sprintf("/meetings/%s", url.PathEscape(meetingID))
	resp, err := c.doRequest(ctx, http.MethodPatch, path, request)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return parseErrorResponse(ctx, resp)
	}

	return nil
}

// DeleteMeeting deletes a meeting from Zoom
func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) error {
	path := fmt.Sprintf("/meetings/%s", url.PathEscape(meetingID))
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return parseErrorResponse(ctx, resp)
	}

	return nil
}
