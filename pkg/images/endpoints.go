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
	"fmt"
	"net/url"
)

// Endpoints contains all image service endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func (e *Endpoints) CreateImage() string {
	return "/v2/images"
}

func (e *Endpoints) ListImages() string {
	return "/v2/images"
}

func (e *Endpoints) GetImage(imageID string) string {
	return fmt.Sprintf("/v2/images/%s", url.PathEscape(imageID))
}

func (e *Endpoints) DeleteImage(imageID string) string {
	return fmt.Sprintf("/v2/images/%s", url.PathEscape(imageID))
}

func (e *Endpoints) ImageFile(imageID string) string {
	return fmt.Sprintf("/v2/images/%s/file", url.PathEscape(imageID))
}

func (e *Endpoints) ListMembers(imageID string) string {
	return fmt.Sprintf("/v2/images/%s/members", url.PathEscape(imageID))
}

// Schema document endpoints.
func (e *Endpoints) ImageSchema() string {
	return ImageSchemaPath
}

func (e *Endpoints) MemberSchema() string {
	return MemberSchemaPath
}
