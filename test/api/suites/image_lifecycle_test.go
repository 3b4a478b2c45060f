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

package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stratocloud/cloudqa/pkg/images"
)

var _ = Describe("Image Lifecycle", func() {
	Context("When registering a new image", func() {
		Describe("Given default creation parameters", func() {
			It("should create the image and reach the active status", func() {
				// Given: A registration request with defaults
				// When: I create the image and wait for it to build
				image, err := imageBehaviors.CreateImage(ctx, images.CreateImageRequest{})
				Expect(err).NotTo(HaveOccurred())
				Expect(image.ID).NotTo(BeEmpty())

				GinkgoWriter.Printf("Created image with ID: %s\n", image.ID)

				active, err := imageBehaviors.WaitForImageStatus(ctx, image.ID, images.StatusActive, 0, 0)

				// Then: The image reaches active without entering error
				Expect(err).NotTo(HaveOccurred())
				Expect(active.Status).To(Equal(images.StatusActive))

				// And: The entity carries all crucial expected data
				Expect(imageBehaviors.ValidateImage(active)).To(Succeed())
			})

			It("should validate the entity against the advertised schema", func() {
				image, err := imageBehaviors.CreateImage(ctx, images.CreateImageRequest{})
				Expect(err).NotTo(HaveOccurred())

				active, err := imageBehaviors.WaitForImageStatus(ctx, image.ID, images.StatusActive, 0, 0)
				Expect(err).NotTo(HaveOccurred())

				Expect(imageBehaviors.ValidateImageEntity(ctx, active)).To(Succeed())
			})
		})

		Describe("Given explicit creation parameters", func() {
			It("should honor the requested formats and visibility", func() {
				image, err := imageBehaviors.CreateImage(ctx, images.CreateImageRequest{
					Name:            "format-check",
					ContainerFormat: images.ContainerBare,
					DiskFormat:      images.DiskQCOW2,
					Visibility:      images.VisibilityPrivate,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(image.DiskFormat).To(Equal(images.DiskQCOW2))
				Expect(image.Visibility).To(Equal(images.VisibilityPrivate))
			})
		})
	})

	Context("When listing images", func() {
		Describe("Given more images than one page holds", func() {
			It("should accumulate every page into one listing", func() {
				// Given: Enough images to roll past the results limit
				created, err := imageBehaviors.CreateImages(ctx, images.CreateImageRequest{}, 3)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(HaveLen(3))

				// When: I list accounting for pagination
				imageList, err := imageBehaviors.ListAllImages(ctx, images.ListImagesParams{
					Limit: cfg.ImageResultsLimit,
				})

				// Then: Every created image appears in the accumulated list
				Expect(err).NotTo(HaveOccurred())

				ids := make([]string, len(imageList))
				for i, image := range imageList {
					ids[i] = image.ID
				}

				for _, image := range created {
					Expect(ids).To(ContainElement(image.ID))
				}

				GinkgoWriter.Printf("Accumulated %d images\n", len(imageList))
			})
		})
	})

	Context("When listing image members", func() {
		Describe("Given an image with no members", func() {
			It("should return an empty member ID list", func() {
				image, err := imageBehaviors.CreateImage(ctx, images.CreateImageRequest{})
				Expect(err).NotTo(HaveOccurred())

				memberIDs, err := imageBehaviors.MemberIDs(ctx, image.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(memberIDs).To(BeEmpty())
			})
		})
	})
})
