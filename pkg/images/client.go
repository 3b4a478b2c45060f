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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stratocloud/cloudqa/pkg/config"
	"github.com/stratocloud/cloudqa/pkg/rest"
)

// API is the image service surface the behaviors depend on. Tests can swap
// in the generated mock from pkg/images/mock.
type API interface {
	CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error)
	GetImage(ctx context.Context, imageID string) (*Image, error)
	ListImages(ctx context.Context, params ListImagesParams) ([]Image, error)
	DeleteImage(ctx context.Context, imageID string) error
	ListMembers(ctx context.Context, imageID string) ([]Member, error)
	ImageSchema(ctx context.Context) ([]byte, error)
}

// Client is a hand-written image service REST client.
type Client struct {
	rest      *rest.Client
	endpoints *Endpoints
}

func NewClient(config *config.Config) *Client {
	options := rest.Options{
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	}

	return &Client{
		rest:      rest.NewClient(config.ImagesBaseURL, config.ImagesAuthToken, config.RequestTimeout, options),
		endpoints: NewEndpoints(),
	}
}

// NewClientForURL builds a client against an explicit base URL, e.g. an
// in-process fake service.
func NewClientForURL(baseURL string, config *config.Config) *Client {
	options := rest.Options{
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	}

	return &Client{
		rest:      rest.NewClient(baseURL, config.ImagesAuthToken, config.RequestTimeout, options),
		endpoints: NewEndpoints(),
	}
}

func (c *Client) CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling image body: %w", err)
	}

	//nolint:bodyclose // response body is closed in rest.Client.Do
	_, respBody, err := c.rest.Do(ctx, http.MethodPost, c.endpoints.CreateImage(), bytes.NewReader(body), http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating image: %w", err)
	}

	var image Image
	if err := json.Unmarshal(respBody, &image); err != nil {
		return nil, fmt.Errorf("unmarshaling image response: %w", err)
	}

	return &image, nil
}

func (c *Client) GetImage(ctx context.Context, imageID string) (*Image, error) {
	//nolint:bodyclose // response body is closed in rest.Client.Do
	resp, respBody, err := c.rest.Do(ctx, http.MethodGet, c.endpoints.GetImage(imageID), nil, 0)
	if err != nil {
		return nil, fmt.Errorf("getting image: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var image Image
		if err := json.Unmarshal(respBody, &image); err != nil {
			return nil, fmt.Errorf("unmarshaling image response: %w", err)
		}

		return &image, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("image '%s' not found (status: %d)", imageID, resp.StatusCode)
	case http.StatusForbidden:
		return nil, fmt.Errorf("image '%s' access denied (status: %d)", imageID, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}
}

// listImagesResponse is the wire wrapper around image listings.
type listImagesResponse struct {
	Images []Image `json:"images"`
	Next   string  `json:"next,omitempty"`
	Schema string  `json:"schema,omitempty"`
}

func (c *Client) ListImages(ctx context.Context, params ListImagesParams) ([]Image, error) {
	path := c.endpoints.ListImages()

	if query := params.encode(); query != "" {
		path += "?" + query
	}

	//nolint:bodyclose // response body is closed in rest.Client.Do
	_, respBody, err := c.rest.Do(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	var listing listImagesResponse
	if err := json.Unmarshal(respBody, &listing); err != nil {
		return nil, fmt.Errorf("unmarshaling images response: %w", err)
	}

	return listing.Images, nil
}

func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	//nolint:bodyclose // response body is closed in rest.Client.Do
	_, _, err := c.rest.Do(ctx, http.MethodDelete, c.endpoints.DeleteImage(imageID), nil, http.StatusNoContent)
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}

	return nil
}

// listMembersResponse is the wire wrapper around member listings.
type listMembersResponse struct {
	Members []Member `json:"members"`
	Schema  string   `json:"schema,omitempty"`
}

func (c *Client) ListMembers(ctx context.Context, imageID string) ([]Member, error) {
	//nolint:bodyclose // response body is closed in rest.Client.Do
	_, respBody, err := c.rest.Do(ctx, http.MethodGet, c.endpoints.ListMembers(imageID), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing members of image '%s': %w", imageID, err)
	}

	var listing listMembersResponse
	if err := json.Unmarshal(respBody, &listing); err != nil {
		return nil, fmt.Errorf("unmarshaling members response: %w", err)
	}

	return listing.Members, nil
}

// ImageSchema fetches the raw JSON schema document the service advertises
// for image entities.
func (c *Client) ImageSchema(ctx context.Context) ([]byte, error) {
	//nolint:bodyclose // response body is closed in rest.Client.Do
	_, respBody, err := c.rest.Do(ctx, http.MethodGet, c.endpoints.ImageSchema(), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting image schema: %w", err)
	}

	return respBody, nil
}

// encode renders the non-zero parameters as a query string.
func (p ListImagesParams) encode() string {
	values := url.Values{}

	setString := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	setString("marker", p.Marker)
	setString("name", p.Name)
	setString("status", string(p.Status))
	setString("visibility", string(p.Visibility))
	setString("member_status", p.MemberStatus)
	setString("owner", p.Owner)
	setString("container_format", string(p.ContainerFormat))
	setString("disk_format", string(p.DiskFormat))
	setString("checksum", p.Checksum)
	setString("sort_key", p.SortKey)
	setString("sort_dir", p.SortDir)
	setString("changes-since", p.ChangesSince)

	if p.SizeMin != nil {
		values.Set("size_min", strconv.FormatInt(*p.SizeMin, 10))
	}

	if p.SizeMax != nil {
		values.Set("size_max", strconv.FormatInt(*p.SizeMax, 10))
	}

	if p.MinRAM != nil {
		values.Set("min_ram", strconv.Itoa(*p.MinRAM))
	}

	if p.MinDisk != nil {
		values.Set("min_disk", strconv.Itoa(*p.MinDisk))
	}

	if p.Protected != nil {
		values.Set("protected", strconv.FormatBool(*p.Protected))
	}

	return values.Encode()
}
