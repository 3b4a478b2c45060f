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

package volumes

import (
	"fmt"
	"strings"
)

// The CLI prints entities as ASCII tables:
//
//	+---------------------+--------------------------------------+
//	|       Property      |                Value                 |
//	+---------------------+--------------------------------------+
//	|     attachments     |                  []                  |
//	|  availability_zone  |                 nova                 |
//	+---------------------+--------------------------------------+
//
// and listings as header-row tables with one row per entity.

// parsePropertyTable parses a two-column Property/Value table into a map.
// Blank output parses to an empty map.
func parsePropertyTable(output string) (map[string]string, error) {
	properties := map[string]string{}

	sawHeader := false

	for _, line := range strings.Split(output, "\n") {
		cells, ok := splitRow(line)
		if !ok {
			continue
		}

		if len(cells) != 2 {
			return nil, fmt.Errorf("expected 2 columns in property table row, got %d: %q", len(cells), line)
		}

		if !sawHeader {
			// First row is the Property/Value header.
			sawHeader = true
			continue
		}

		properties[cells[0]] = cells[1]
	}

	return properties, nil
}

// parseListTable parses a header-row table into one map per data row, keyed
// by column header. Blank output parses to no rows.
func parseListTable(output string) ([]map[string]string, error) {
	var (
		header []string
		rows   []map[string]string
	)

	for _, line := range strings.Split(output, "\n") {
		cells, ok := splitRow(line)
		if !ok {
			continue
		}

		if header == nil {
			header = cells
			continue
		}

		if len(cells) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d: %q", len(cells), len(header), line)
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			row[column] = cells[i]
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// splitRow splits a pipe-delimited table row into trimmed cells. Rule lines
// (+----+) and anything else that is not a row report ok=false.
func splitRow(line string) ([]string, bool) {
	line = strings.TrimSpace(line)

	if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
		return nil, false
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")

	parts := strings.Split(trimmed, "|")

	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}

	return cells, true
}
