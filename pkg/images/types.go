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

package images

import (
	"time"
)

// Status is the lifecycle status of an image.
type Status string

const (
	StatusQueued        Status = "queued"
	StatusSaving        Status = "saving"
	StatusActive        Status = "active"
	StatusKilled        Status = "killed"
	StatusDeleted       Status = "deleted"
	StatusPendingDelete Status = "pending_delete"
	StatusError         Status = "error"
)

// ContainerFormat is the image container format.
type ContainerFormat string

const (
	ContainerBare ContainerFormat = "bare"
	ContainerOVF  ContainerFormat = "ovf"
	ContainerAKI  ContainerFormat = "aki"
	ContainerARI  ContainerFormat = "ari"
	ContainerAMI  ContainerFormat = "ami"
)

// DiskFormat is the image disk format.
type DiskFormat string

const (
	DiskRaw   DiskFormat = "raw"
	DiskQCOW2 DiskFormat = "qcow2"
	DiskVHD   DiskFormat = "vhd"
	DiskVMDK  DiskFormat = "vmdk"
	DiskISO   DiskFormat = "iso"
)

// Visibility controls who can see an image.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
)

// Schema paths advertised by the image service on every entity.
const (
	ImageSchemaPath  = "/v2/schemas/image"
	MemberSchemaPath = "/v2/schemas/member"
)

// Image is an image registry entity. Optional fields the service may omit
// are pointers so absence is distinguishable from a zero value.
type Image struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Status          Status          `json:"status"`
	Visibility      Visibility      `json:"visibility,omitempty"`
	Protected       *bool           `json:"protected,omitempty"`
	ContainerFormat ContainerFormat `json:"container_format,omitempty"`
	DiskFormat      DiskFormat      `json:"disk_format,omitempty"`
	Checksum        string          `json:"checksum,omitempty"`
	Size            *int64          `json:"size,omitempty"`
	MinDisk         *int            `json:"min_disk,omitempty"`
	MinRAM          *int            `json:"min_ram,omitempty"`
	Owner           string          `json:"owner,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
	Self            string          `json:"self,omitempty"`
	File            string          `json:"file,omitempty"`
	Schema          string          `json:"schema,omitempty"`
}

// Member is an image sharing record.
type Member struct {
	ImageID   string     `json:"image_id"`
	MemberID  string     `json:"member_id"`
	Status    string     `json:"status"`
	Schema    string     `json:"schema,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateImageRequest carries the mutable fields accepted on image creation.
type CreateImageRequest struct {
	Name            string          `json:"name,omitempty"`
	ContainerFormat ContainerFormat `json:"container_format,omitempty"`
	DiskFormat      DiskFormat      `json:"disk_format,omitempty"`
	Protected       *bool           `json:"protected,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Visibility      Visibility      `json:"visibility,omitempty"`
}

// ListImagesParams are the filtering and paging parameters understood by the
// listing endpoint. Zero values are omitted from the query string.
type ListImagesParams struct {
	Limit           int
	Marker          string
	Name            string
	Status          Status
	Visibility      Visibility
	MemberStatus    string
	Owner           string
	ContainerFormat ContainerFormat
	DiskFormat      DiskFormat
	Checksum        string
	SizeMin         *int64
	SizeMax         *int64
	MinRAM          *int
	MinDisk         *int
	Protected       *bool
	SortKey         string
	SortDir         string
	ChangesSince    string
}
