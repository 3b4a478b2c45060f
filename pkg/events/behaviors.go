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

package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/stratocloud/cloudqa/pkg/config"
)

// DefaultEventID is the event looked up when no ID is supplied.
const DefaultEventID = "1"

// ErrReportNotFound is returned when no report in the catalogue carries the
// requested name.
var ErrReportNotFound = errors.New("report not found")

// Behaviors layers lookup helpers over the raw event client.
type Behaviors struct {
	config *config.Config
	client API
}

func NewBehaviors(client API, config *config.Config) *Behaviors {
	return &Behaviors{
		config: config,
		client: client,
	}
}

// InstanceUUIDFromEvent returns the instance UUID recorded on an event. An
// empty eventID looks up DefaultEventID.
func (b *Behaviors) InstanceUUIDFromEvent(ctx context.Context, eventID string) (string, error) {
	if eventID == "" {
		eventID = DefaultEventID
	}

	details, err := b.client.GetEventDetails(ctx, eventID)
	if err != nil {
		return "", err
	}

	if details.UUID == "" {
		return "", fmt.Errorf("no instance UUID on event '%s'", eventID)
	}

	return details.UUID, nil
}

// ReportIDByName returns the ID of the first report whose name matches, from
// the catalogue of available reports.
func (b *Behaviors) ReportIDByName(ctx context.Context, reportName string) (string, error) {
	reports, err := b.client.ListReports(ctx)
	if err != nil {
		return "", err
	}

	if len(reports) == 0 {
		return "", fmt.Errorf("no reports in catalogue: %w", ErrReportNotFound)
	}

	for _, report := range reports {
		if report.Name == reportName {
			return report.ReportID, nil
		}
	}

	return "", fmt.Errorf("report '%s': %w", reportName, ErrReportNotFound)
}
