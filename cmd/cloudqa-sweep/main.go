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

// cloudqa-sweep deletes images leaked by interrupted test runs: anything
// whose name carries the test prefix and whose creation time is older than
// the cutoff.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/stratocloud/cloudqa/pkg/config"
	"github.com/stratocloud/cloudqa/pkg/images"
)

func main() {
	var (
		prefix    string
		olderThan time.Duration
		dryRun    bool
	)

	pflag.StringVar(&prefix, "prefix", "image-", "name prefix identifying test resources")
	pflag.DurationVar(&olderThan, "older-than", time.Hour, "only delete resources created before now minus this duration")
	pflag.BoolVar(&dryRun, "dry-run", false, "list what would be deleted without deleting")

	pflag.Parse()

	if err := run(prefix, olderThan, dryRun); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(prefix string, olderThan time.Duration, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	client := images.NewClient(cfg)
	behaviors := images.NewBehaviors(client, cfg)

	imageList, err := behaviors.ListAllImages(ctx, images.ListImagesParams{
		Limit: cfg.ImageResultsLimit,
	})
	if err != nil {
		return fmt.Errorf("listing images: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	swept := 0

	for _, image := range imageList {
		if !strings.HasPrefix(image.Name, prefix) {
			continue
		}

		if image.CreatedAt == nil || image.CreatedAt.After(cutoff) {
			continue
		}

		if dryRun {
			fmt.Printf("would delete %s (%s, created %s)\n", image.Name, image.ID, image.CreatedAt)
			continue
		}

		if err := client.DeleteImage(ctx, image.ID); err != nil {
			fmt.Fprintf(os.Stderr, "failed to delete %s: %v\n", image.ID, err)
			continue
		}

		fmt.Printf("deleted %s (%s)\n", image.Name, image.ID)
		swept++
	}

	fmt.Printf("swept %d of %d images\n", swept, len(imageList))

	return nil
}
