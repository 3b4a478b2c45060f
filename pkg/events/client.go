/*
Copyright 2025 the Stratocloud Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package events wraps the event-tracking service: per-event detail lookups
// and the report catalogue.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/stratocloud/cloudqa/pkg/config"
	"github.com/stratocloud/cloudqa/pkg/rest"
)

// EventDetails is the expanded record of a single tracked event.
type EventDetails struct {
	EventID    string `json:"event_id"`
	Name       string `json:"name"`
	UUID       string `json:"uuid"`
	State      string `json:"state"`
	Host       string `json:"host"`
	RequestID  string `json:"request_id"`
	When       string `json:"when"`
	Deployment string `json:"deployment"`
}

// Report is a catalogue entry for a generated usage report.
type Report struct {
	ReportID    string `json:"id"`
	Name        string `json:"name"`
	Version     int    `json:"version"`
	Created     string `json:"created"`
	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`
}

// API is the event service surface the behaviors depend on.
type API interface {
	GetEventDetails(ctx context.Context, eventID string) (*EventDetails, error)
	ListReports(ctx context.Context) ([]Report, error)
}

// Client is a hand-written event-tracking REST client.
type Client struct {
	rest *rest.Client
}

func NewClient(config *config.Config) *Client {
	options := rest.Options{
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	}

	return &Client{
		rest: rest.NewClient(config.EventsBaseURL, config.EventsAuthToken, config.RequestTimeout, options),
	}
}

// NewClientForURL builds a client against an explicit base URL.
func NewClientForURL(baseURL string, config *config.Config) *Client {
	options := rest.Options{
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	}

	return &Client{
		rest: rest.NewClient(baseURL, config.EventsAuthToken, config.RequestTimeout, options),
	}
}

func (c *Client) GetEventDetails(ctx context.Context, eventID string) (*EventDetails, error) {
	path := fmt.Sprintf("/events/%s", url.PathEscape(eventID))

	//nolint:bodyclose // response body is closed in rest.Client.Do
	resp, respBody, err := c.rest.Do(ctx, http.MethodGet, path, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("getting event details: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var details EventDetails
		if err := json.Unmarshal(respBody, &details); err != nil {
			return nil, fmt.Errorf("unmarshaling event details response: %w", err)
		}

		return &details, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("event '%s' not found (status: %d)", eventID, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}
}

// listReportsResponse is the wire wrapper around the report catalogue.
type listReportsResponse struct {
	Reports []Report `json:"reports"`
}

func (c *Client) ListReports(ctx context.Context) ([]Report, error) {
	//nolint:bodyclose // response body is closed in rest.Client.Do
	_, respBody, err := c.rest.Do(ctx, http.MethodGet, "/reports", nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var listing listReportsResponse
	if err := json.Unmarshal(respBody, &listing); err != nil {
		return nil, fmt.Errorf("unmarshaling reports response: %w", err)
	}

	return listing.Reports, nil
}
