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

// Package volumes wraps the block-storage CLI: it assembles invocations from
// suite configuration, executes them without a shell, and parses the table
// output back into entities.
package volumes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stratocloud/cloudqa/pkg/config"
)

// CLI drives the block-storage command line client.
type CLI struct {
	config  *config.Config
	runner  Runner
	binary  string
	globals []string
}

func NewCLI(cfg *config.Config) *CLI {
	return NewCLIWithRunner(cfg, NewRunner(cfg.LogRequests))
}

// NewCLIWithRunner allows tests to substitute the runner.
func NewCLIWithRunner(cfg *config.Config, runner Runner) *CLI {
	return &CLI{
		config: cfg,
		runner: runner,
		binary: cfg.CLIBinary,
		globals: globalArgs(cliConfig{
			Username:          cfg.CLIUsername,
			Password:          cfg.CLIPassword,
			TenantName:        cfg.CLITenantName,
			AuthURL:           cfg.CLIAuthURL,
			RegionName:        cfg.CLIRegionName,
			VolumeServiceName: cfg.VolumeServiceName,
			VolumeAPIVersion:  cfg.VolumeAPIVersion,
			Retries:           cfg.CLIRetries,
		}),
	}
}

func (c *CLI) run(ctx context.Context, args []string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.CLITimeout)
	defer cancel()

	result, err := c.runner.Run(ctx, c.binary, args)
	if err != nil {
		return nil, err
	}

	if result.ExitCode != 0 {
		return result, fmt.Errorf("%s exited with code %d: %s", c.binary, result.ExitCode, result.Stderr)
	}

	return result, nil
}

// CreateVolume creates a volume of the given size in GB and returns the
// parsed entity along with the raw execution result.
func (c *CLI) CreateVolume(ctx context.Context, size int, opts CreateVolumeOptions) (*Volume, *Result, error) {
	args := newCommand(c.globals, "create").
		flag("snapshot-id", opts.SnapshotID).
		flag("source-volid", opts.SourceVolID).
		flag("image-id", opts.ImageID).
		flag("display-name", opts.DisplayName).
		flag("display-description", opts.DisplayDescription).
		flag("volume-type", opts.VolumeType).
		flag("availability-zone", opts.AvailabilityZone).
		metadataFlag("metadata", opts.Metadata).
		positional(strconv.Itoa(size)).
		build()

	result, err := c.run(ctx, args)
	if err != nil {
		return nil, result, err
	}

	properties, err := parsePropertyTable(result.Stdout)
	if err != nil {
		return nil, result, fmt.Errorf("parsing create volume output: %w", err)
	}

	return volumeFromProperties(properties), result, nil
}

// DeleteVolume deletes a volume by name or ID. The CLI prints nothing on
// success.
func (c *CLI) DeleteVolume(ctx context.Context, nameOrID string) (*Result, error) {
	args := newCommand(c.globals, "delete").
		positional(nameOrID).
		build()

	return c.run(ctx, args)
}

// ListVolumes lists volumes, optionally filtered.
func (c *CLI) ListVolumes(ctx context.Context, opts ListVolumesOptions) ([]Volume, *Result, error) {
	args := newCommand(c.globals, "list").
		flag("display-name", opts.DisplayName).
		flag("status", opts.Status).
		boolFlag("all-tenants", opts.AllTenants).
		build()

	result, err := c.run(ctx, args)
	if err != nil {
		return nil, result, err
	}

	rows, err := parseListTable(result.Stdout)
	if err != nil {
		return nil, result, fmt.Errorf("parsing volume list output: %w", err)
	}

	volumeList := make([]Volume, len(rows))
	for i, row := range rows {
		volumeList[i] = volumeFromRow(row)
	}

	return volumeList, result, nil
}

// ListVolumeTypes lists the available volume types.
func (c *CLI) ListVolumeTypes(ctx context.Context) ([]VolumeType, *Result, error) {
	args := newCommand(c.globals, "type-list").build()

	result, err := c.run(ctx, args)
	if err != nil {
		return nil, result, err
	}

	rows, err := parseListTable(result.Stdout)
	if err != nil {
		return nil, result, fmt.Errorf("parsing volume type list output: %w", err)
	}

	types := make([]VolumeType, len(rows))
	for i, row := range rows {
		types[i] = VolumeType{
			ID:   row["ID"],
			Name: row["Name"],
		}
	}

	return types, result, nil
}

func volumeFromProperties(properties map[string]string) *Volume {
	size, _ := strconv.Atoi(properties["size"])

	return &Volume{
		ID:                 properties["id"],
		DisplayName:        properties["display_name"],
		DisplayDescription: properties["display_description"],
		Status:             properties["status"],
		Size:               size,
		VolumeType:         properties["volume_type"],
		AvailabilityZone:   properties["availability_zone"],
		SnapshotID:         properties["snapshot_id"],
		Bootable:           properties["bootable"],
		CreatedAt:          properties["created_at"],
		Metadata:           properties["metadata"],
		Attachments:        properties["attachments"],
	}
}

func volumeFromRow(row map[string]string) Volume {
	size, _ := strconv.Atoi(row["Size"])

	return Volume{
		ID:          row["ID"],
		Status:      row["Status"],
		DisplayName: row["Display Name"],
		Size:        size,
		VolumeType:  row["Volume Type"],
		Bootable:    row["Bootable"],
		AttachedTo:  row["Attached to"],
	}
}
