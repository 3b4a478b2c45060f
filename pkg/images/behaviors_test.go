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

package images_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stratocloud/cloudqa/pkg/config"
	"github.com/stratocloud/cloudqa/pkg/images"
	"github.com/stratocloud/cloudqa/pkg/images/mock"

	"k8s.io/utils/ptr"
)

func testConfig() *config.Config {
	return &config.Config{
		ImageResultsLimit:   2,
		ImageStatusInterval: 10 * time.Millisecond,
		ImageBuildTimeout:   time.Second,
	}
}

func validImage(id string) *images.Image {
	now := time.Now()

	return &images.Image{
		ID:        id,
		Name:      "cirros-test",
		Status:    images.StatusActive,
		Protected: ptr.To(false),
		MinDisk:   ptr.To(0),
		MinRAM:    ptr.To(0),
		CreatedAt: &now,
		UpdatedAt: &now,
		Self:      fmt.Sprintf("/v2/images/%s", id),
		File:      fmt.Sprintf("/v2/images/%s/file", id),
		Schema:    images.ImageSchemaPath,
	}
}

func imagePage(count int) []images.Image {
	page := make([]images.Image, count)
	for i := range page {
		page[i] = *validImage(uuid.NewString())
	}

	return page
}

func TestCreateImageDefaultsAndTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	created := validImage(uuid.NewString())

	client.EXPECT().CreateImage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req images.CreateImageRequest) (*images.Image, error) {
			assert.Equal(t, images.ContainerBare, req.ContainerFormat)
			assert.Equal(t, images.DiskRaw, req.DiskFormat)
			assert.NotEmpty(t, req.Name)

			return created, nil
		})

	image, err := behaviors.CreateImage(context.Background(), images.CreateImageRequest{})
	require.NoError(t, err)
	require.Equal(t, created.ID, image.ID)
	require.Equal(t, 1, behaviors.Resources.Len())

	client.EXPECT().DeleteImage(gomock.Any(), created.ID).Return(nil)

	failed := behaviors.Resources.Release(context.Background())
	assert.Zero(t, failed)
}

func TestCreateImagesCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	client.EXPECT().CreateImage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req images.CreateImageRequest) (*images.Image, error) {
			return validImage(uuid.NewString()), nil
		}).Times(3)

	imageList, err := behaviors.CreateImages(context.Background(), images.CreateImageRequest{}, 3)
	require.NoError(t, err)
	assert.Len(t, imageList, 3)
	assert.Equal(t, 3, behaviors.Resources.Len())
}

func TestListAllImagesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	pageOne := imagePage(2)
	pageTwo := imagePage(2)
	pageThree := imagePage(1)

	var markers []string

	client.EXPECT().ListImages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params images.ListImagesParams) ([]images.Image, error) {
			markers = append(markers, params.Marker)

			switch len(markers) {
			case 1:
				return pageOne, nil
			case 2:
				return pageTwo, nil
			default:
				return pageThree, nil
			}
		}).Times(3)

	imageList, err := behaviors.ListAllImages(context.Background(), images.ListImagesParams{})
	require.NoError(t, err)

	assert.Len(t, imageList, 5)
	assert.Equal(t, []string{"", pageOne[1].ID, pageTwo[1].ID}, markers)
}

func TestListAllImagesExactMultipleIssuesExtraRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	fullPage := imagePage(2)

	calls := 0

	client.EXPECT().ListImages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params images.ListImagesParams) ([]images.Image, error) {
			calls++
			if calls == 1 {
				return fullPage, nil
			}

			return nil, nil
		}).Times(2)

	imageList, err := behaviors.ListAllImages(context.Background(), images.ListImagesParams{})
	require.NoError(t, err)

	// The empty trailing page signals completion; its request is the
	// accepted cost of an exact-multiple total.
	assert.Len(t, imageList, 2)
	assert.Equal(t, 2, calls)
}

func TestListAllImagesShortFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	client.EXPECT().ListImages(gomock.Any(), gomock.Any()).Return(imagePage(1), nil)

	imageList, err := behaviors.ListAllImages(context.Background(), images.ListImagesParams{})
	require.NoError(t, err)
	assert.Len(t, imageList, 1)
}

func TestWaitForImageStatusReachesDesired(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	imageID := uuid.NewString()
	statuses := []images.Status{images.StatusQueued, images.StatusSaving, images.StatusActive}

	call := 0

	client.EXPECT().GetImage(gomock.Any(), imageID).DoAndReturn(
		func(ctx context.Context, id string) (*images.Image, error) {
			image := validImage(id)
			image.Status = statuses[call]

			if call < len(statuses)-1 {
				call++
			}

			return image, nil
		}).MinTimes(3)

	image, err := behaviors.WaitForImageStatus(context.Background(), imageID, images.StatusActive, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, images.StatusActive, image.Status)
}

func TestWaitForImageStatusBuildError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	imageID := uuid.NewString()
	failed := validImage(imageID)
	failed.Status = images.Status("ERROR")

	client.EXPECT().GetImage(gomock.Any(), imageID).Return(failed, nil)

	_, err := behaviors.WaitForImageStatus(context.Background(), imageID, images.StatusActive, 0, 0)
	require.ErrorIs(t, err, images.ErrBuildFailed)
	assert.Contains(t, err.Error(), imageID)
}

func TestWaitForImageStatusTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	imageID := uuid.NewString()
	queued := validImage(imageID)
	queued.Status = images.StatusQueued

	client.EXPECT().GetImage(gomock.Any(), imageID).Return(queued, nil).MinTimes(1)

	_, err := behaviors.WaitForImageStatus(context.Background(), imageID, images.StatusActive, 10*time.Millisecond, 50*time.Millisecond)
	require.ErrorIs(t, err, images.ErrWaitTimeout)
	assert.Contains(t, err.Error(), string(images.StatusActive))
}

func TestWaitForImageStatusClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	imageID := uuid.NewString()

	client.EXPECT().GetImage(gomock.Any(), imageID).Return(nil, fmt.Errorf("image '%s' not found (status: 404)", imageID))

	_, err := behaviors.WaitForImageStatus(context.Background(), imageID, images.StatusActive, 0, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, images.ErrWaitTimeout)
}

func TestValidateImagePasses(t *testing.T) {
	behaviors := images.NewBehaviors(nil, testConfig())

	err := behaviors.ValidateImage(validImage(uuid.NewString()))
	require.NoError(t, err)
}

func TestValidateImageAccumulatesViolations(t *testing.T) {
	behaviors := images.NewBehaviors(nil, testConfig())

	image := validImage(uuid.NewString())
	image.ID = "not-a-uuid"
	image.CreatedAt = nil
	image.Schema = "/v2/schemas/images"
	image.Self = "/wrong/self"
	image.File = "/wrong/file"

	err := behaviors.ValidateImage(image)
	require.Error(t, err)

	// Every violation is reported, not just the first.
	assert.Contains(t, err.Error(), "created_at")
	assert.Contains(t, err.Error(), "unexpected id value")
	assert.Contains(t, err.Error(), "unexpected schema value")
	assert.Contains(t, err.Error(), "unexpected self value")
	assert.Contains(t, err.Error(), "unexpected file value")
}

func TestValidateMember(t *testing.T) {
	behaviors := images.NewBehaviors(nil, testConfig())

	imageID := uuid.NewString()
	now := time.Now()

	member := &images.Member{
		ImageID:   imageID,
		MemberID:  "tenant-a",
		Status:    "accepted",
		Schema:    images.MemberSchemaPath,
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	require.NoError(t, behaviors.ValidateMember(imageID, member, "tenant-a"))

	member.MemberID = "tenant-b"
	member.Schema = ""

	err := behaviors.ValidateMember(imageID, member, "tenant-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member_id")
	assert.Contains(t, err.Error(), "schema")
}

func TestMemberIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	imageID := uuid.NewString()

	client.EXPECT().ListMembers(gomock.Any(), imageID).Return([]images.Member{
		{ImageID: imageID, MemberID: "tenant-a"},
		{ImageID: imageID, MemberID: "tenant-b"},
	}, nil)

	memberIDs, err := behaviors.MemberIDs(context.Background(), imageID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tenant-a", "tenant-b"}, memberIDs)
}

func TestCreationOffset(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 90*time.Second, images.CreationOffset(createdAt, createdAt.Add(90*time.Second)))
	assert.Equal(t, 90*time.Second, images.CreationOffset(createdAt, createdAt.Add(-90*time.Second)))
}
