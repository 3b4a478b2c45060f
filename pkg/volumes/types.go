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

// Volume is a block-storage volume parsed from CLI output.
type Volume struct {
	ID                 string
	DisplayName        string
	DisplayDescription string
	Status             string
	Size               int
	VolumeType         string
	AvailabilityZone   string
	SnapshotID         string
	Bootable           string
	AttachedTo         string
	CreatedAt          string
	// Metadata and Attachments are kept as printed by the CLI.
	Metadata    string
	Attachments string
}

// VolumeType is a provisioning type parsed from CLI output.
type VolumeType struct {
	ID   string
	Name string
}

// CreateVolumeOptions are the optional arguments to volume creation. Empty
// fields are omitted from the invocation.
type CreateVolumeOptions struct {
	SnapshotID         string
	SourceVolID        string
	ImageID            string
	DisplayName        string
	DisplayDescription string
	VolumeType         string
	AvailabilityZone   string
	Metadata           map[string]string
}

// ListVolumesOptions filter volume listings.
type ListVolumesOptions struct {
	DisplayName string
	Status      string
	AllTenants  bool
}
