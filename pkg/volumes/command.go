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
	"sort"
	"strconv"
)

// command assembles a CLI argv: global flags first, then the subcommand,
// then per-call options and positional arguments.
type command struct {
	args []string
}

func newCommand(globals []string, subcommand string) *command {
	cmd := &command{}
	cmd.args = append(cmd.args, globals...)
	cmd.args = append(cmd.args, subcommand)

	return cmd
}

// flag appends --name value when value is non-empty.
func (c *command) flag(name, value string) *command {
	if value != "" {
		c.args = append(c.args, "--"+name, value)
	}

	return c
}

// boolFlag renders a boolean the way the CLI expects it, as --name 1|0.
func (c *command) boolFlag(name string, value bool) *command {
	rendered := "0"
	if value {
		rendered = "1"
	}

	c.args = append(c.args, "--"+name, rendered)

	return c
}

// metadataFlag renders a metadata map as --metadata k=v k2=v2, keys sorted
// so invocations are deterministic.
func (c *command) metadataFlag(name string, metadata map[string]string) *command {
	if len(metadata) == 0 {
		return c
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	c.args = append(c.args, "--"+name)
	for _, key := range keys {
		c.args = append(c.args, fmt.Sprintf("%s=%s", key, metadata[key]))
	}

	return c
}

// positional appends a bare argument.
func (c *command) positional(value string) *command {
	c.args = append(c.args, value)

	return c
}

func (c *command) build() []string {
	return c.args
}

// globalArgs renders the credential and service-selection flags shared by
// every invocation.
func globalArgs(cfg cliConfig) []string {
	cmd := &command{}

	cmd.flag("os-username", cfg.Username)
	cmd.flag("os-password", cfg.Password)
	cmd.flag("os-tenant-name", cfg.TenantName)
	cmd.flag("os-auth-url", cfg.AuthURL)
	cmd.flag("os-region-name", cfg.RegionName)
	cmd.flag("volume-service-name", cfg.VolumeServiceName)
	cmd.flag("os-volume-api-version", cfg.VolumeAPIVersion)

	if cfg.Retries > 0 {
		cmd.flag("retries", strconv.Itoa(cfg.Retries))
	}

	return cmd.args
}

// cliConfig is the subset of suite configuration the CLI wrapper needs.
type cliConfig struct {
	Username          string
	Password          string
	TenantName        string
	AuthURL           string
	RegionName        string
	VolumeServiceName string
	VolumeAPIVersion  string
	Retries           int
}
