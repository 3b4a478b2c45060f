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
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/stratocloud/cloudqa/pkg/cleanup"
	"github.com/stratocloud/cloudqa/pkg/config"

	"k8s.io/apimachinery/pkg/util/wait"
)

var (
	// ErrBuildFailed is returned when a polled image enters the error status.
	ErrBuildFailed = errors.New("image build failed")

	// ErrWaitTimeout is returned when a polled image never reaches the
	// desired status within the timeout.
	ErrWaitTimeout = errors.New("timed out waiting for image status")
)

// idRegex matches the canonical UUID form image IDs must take.
var idRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// mismatch is the violation message format used by the validators.
const mismatch = "unexpected %s value: expected %v, got %v"

// Behaviors layers test-oriented helpers over the raw image client:
// create-and-track, paginate-to-exhaustion, poll-until-status and entity
// validation.
type Behaviors struct {
	config    *config.Config
	client    API
	Resources *cleanup.Pool
}

func NewBehaviors(client API, config *config.Config) *Behaviors {
	return &Behaviors{
		config:    config,
		client:    client,
		Resources: cleanup.NewPool(),
	}
}

// CreateImage creates an image, filling in defaults for anything unset, and
// registers it for deletion in the resource pool.
func (b *Behaviors) CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error) {
	if req.ContainerFormat == "" {
		req.ContainerFormat = ContainerBare
	}

	if req.DiskFormat == "" {
		req.DiskFormat = DiskRaw
	}

	if req.Name == "" {
		req.Name = randomName("image")
	}

	image, err := b.client.CreateImage(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := b.Resources.Add(image.ID, func(ctx context.Context, id string) error {
		return b.client.DeleteImage(ctx, id)
	}); err != nil {
		return image, err
	}

	return image, nil
}

// CreateImages creates count images with the same request template.
func (b *Behaviors) CreateImages(ctx context.Context, req CreateImageRequest, count int) ([]Image, error) {
	imageList := make([]Image, 0, count)

	for range count {
		image, err := b.CreateImage(ctx, req)
		if err != nil {
			return imageList, err
		}

		imageList = append(imageList, *image)
	}

	return imageList, nil
}

// ListAllImages lists images accounting for pagination. It keeps requesting
// pages, advancing the marker to the last ID of each full page, until the
// service returns a short page. When the total is an exact multiple of the
// results limit the final request returns an empty page; that extra round
// trip is accepted.
func (b *Behaviors) ListAllImages(ctx context.Context, params ListImagesParams) ([]Image, error) {
	resultsLimit := b.config.ImageResultsLimit

	page, err := b.client.ListImages(ctx, params)
	if err != nil {
		return nil, err
	}

	if resultsLimit <= 0 {
		return page, nil
	}

	var imageList []Image

	for len(page) == resultsLimit {
		imageList = append(imageList, page...)
		params.Marker = page[len(page)-1].ID

		page, err = b.client.ListImages(ctx, params)
		if err != nil {
			return nil, err
		}
	}

	return append(imageList, page...), nil
}

// MemberIDs returns the member IDs of every member of the given image.
func (b *Behaviors) MemberIDs(ctx context.Context, imageID string) ([]string, error) {
	members, err := b.client.ListMembers(ctx, imageID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, len(members))
	for i, member := range members {
		memberIDs[i] = member.MemberID
	}

	return memberIDs, nil
}

// CreationOffset returns the absolute difference between an image creation
// time and another timestamp on the entity.
func CreationOffset(createdAt, property time.Time) time.Duration {
	offset := property.Sub(createdAt)
	if offset < 0 {
		offset = -offset
	}

	return offset
}

// WaitForImageStatus polls the image every interval until it reaches the
// desired status and returns the last fetched entity. An image entering the
// error status fails immediately with ErrBuildFailed; running out of time
// fails with ErrWaitTimeout. The interval is fixed; there is no backoff.
// Zero interval or timeout fall back to the configured defaults.
func (b *Behaviors) WaitForImageStatus(ctx context.Context, imageID string, desired Status, interval, timeout time.Duration) (*Image, error) {
	if interval <= 0 {
		interval = b.config.ImageStatusInterval
	}

	if timeout <= 0 {
		timeout = b.config.ImageBuildTimeout
	}

	var last *Image

	err := wait.PollUntilContextTimeout(ctx, interval, timeout, true, func(ctx context.Context) (bool, error) {
		image, err := b.client.GetImage(ctx, imageID)
		if err != nil {
			return false, err
		}

		last = image

		// The error sentinel is matched case-insensitively; the desired
		// status is not.
		if strings.EqualFold(string(image.Status), string(StatusError)) {
			return false, fmt.Errorf("image %s entered %s status: %w", imageID, image.Status, ErrBuildFailed)
		}

		return image.Status == desired, nil
	})
	if err != nil {
		if errors.Is(err, ErrBuildFailed) {
			return nil, err
		}

		if wait.Interrupted(err) {
			return nil, fmt.Errorf("image %s did not reach the %s status within %s: %w", imageID, desired, timeout, ErrWaitTimeout)
		}

		return nil, err
	}

	return last, nil
}

// ValidateImage checks that an image carries the crucial expected data. All
// violations are accumulated and returned together rather than failing on
// the first, so a report shows everything wrong with the entity at once.
func (b *Behaviors) ValidateImage(image *Image) error {
	var result *multierror.Error

	if image.CreatedAt == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "created_at", "a timestamp", nil))
	}

	if expected := fmt.Sprintf("/v2/images/%s/file", image.ID); image.File != expected {
		result = multierror.Append(result, fmt.Errorf(mismatch, "file", expected, image.File))
	}

	if !idRegex.MatchString(image.ID) {
		result = multierror.Append(result, fmt.Errorf(mismatch, "id", "a UUID", image.ID))
	}

	if image.MinDisk == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "min_disk", "a value", nil))
	}

	if image.MinRAM == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "min_ram", "a value", nil))
	}

	if image.Protected == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "protected", "a value", nil))
	}

	if image.Schema != ImageSchemaPath {
		result = multierror.Append(result, fmt.Errorf(mismatch, "schema", ImageSchemaPath, image.Schema))
	}

	if expected := fmt.Sprintf("/v2/images/%s", image.ID); image.Self != expected {
		result = multierror.Append(result, fmt.Errorf(mismatch, "self", expected, image.Self))
	}

	if image.Status == "" {
		result = multierror.Append(result, fmt.Errorf(mismatch, "status", "a status", image.Status))
	}

	if image.UpdatedAt == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "updated_at", "a timestamp", nil))
	}

	return result.ErrorOrNil()
}

// ValidateMember checks that an image member carries the crucial expected
// data, accumulating violations like ValidateImage.
func (b *Behaviors) ValidateMember(imageID string, member *Member, memberID string) error {
	var result *multierror.Error

	if member.CreatedAt == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "created_at", "a timestamp", nil))
	}

	if member.ImageID != imageID {
		result = multierror.Append(result, fmt.Errorf(mismatch, "image_id", imageID, member.ImageID))
	}

	if member.MemberID != memberID {
		result = multierror.Append(result, fmt.Errorf(mismatch, "member_id", memberID, member.MemberID))
	}

	if member.Schema != MemberSchemaPath {
		result = multierror.Append(result, fmt.Errorf(mismatch, "schema", MemberSchemaPath, member.Schema))
	}

	if member.Status == "" {
		result = multierror.Append(result, fmt.Errorf(mismatch, "status", "a status", member.Status))
	}

	if member.UpdatedAt == nil {
		result = multierror.Append(result, fmt.Errorf(mismatch, "updated_at", "a timestamp", nil))
	}

	return result.ErrorOrNil()
}
