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
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stratocloud/cloudqa/pkg/volumes"
)

var _ = Describe("Volume Operations", func() {
	Context("When creating a volume through the CLI", func() {
		Describe("Given a minimal creation request", func() {
			It("should create, list and delete the volume", func() {
				name := fmt.Sprintf("cloudqa-%s", time.Now().Format("20060102-150405"))

				// Given: A 1 GB volume request
				volume, _, err := volumeCLI.CreateVolume(ctx, 1, volumes.CreateVolumeOptions{
					DisplayName: name,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(volume.ID).NotTo(BeEmpty())
				Expect(volume.Size).To(Equal(1))

				GinkgoWriter.Printf("Created volume %s (%s)\n", name, volume.ID)

				DeferCleanup(func() {
					if _, err := volumeCLI.DeleteVolume(ctx, volume.ID); err != nil {
						GinkgoWriter.Printf("Warning: failed to delete volume %s: %v\n", volume.ID, err)
					}
				})

				// When: I list volumes filtered by the display name
				Eventually(func() []volumes.Volume {
					volumeList, _, listErr := volumeCLI.ListVolumes(ctx, volumes.ListVolumesOptions{
						DisplayName: name,
					})
					if listErr != nil {
						return nil
					}

					return volumeList
				}).WithTimeout(2 * time.Minute).WithPolling(5 * time.Second).ShouldNot(BeEmpty())
			})
		})

		Describe("Given metadata on the request", func() {
			It("should pass the metadata through the invocation", func() {
				name := fmt.Sprintf("cloudqa-meta-%s", time.Now().Format("20060102-150405"))

				volume, result, err := volumeCLI.CreateVolume(ctx, 1, volumes.CreateVolumeOptions{
					DisplayName: name,
					Metadata:    map[string]string{"purpose": "integration"},
				})
				Expect(err).NotTo(HaveOccurred())

				DeferCleanup(func() {
					_, _ = volumeCLI.DeleteVolume(ctx, volume.ID)
				})

				Expect(result.Args).To(ContainElement("purpose=integration"))
			})
		})
	})

	Context("When listing volume types", func() {
		It("should return the provisioning types for the deployment", func() {
			types, _, err := volumeCLI.ListVolumeTypes(ctx)
			Expect(err).NotTo(HaveOccurred())

			GinkgoWriter.Printf("Found %d volume types\n", len(types))
		})
	})
})
