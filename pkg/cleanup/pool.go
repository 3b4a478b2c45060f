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

// Package cleanup tracks resources created by test behaviors so they can be
// deleted when a suite (or a single spec) finishes, whether it passed or not.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/onsi/ginkgo/v2"
)

// DeleteFunc removes a single resource by ID.
type DeleteFunc func(ctx context.Context, id string) error

var ErrReleased = errors.New("cleanup pool already released")

type resource struct {
	id     string
	delete DeleteFunc
}

// Pool accumulates created resources and deletes them in reverse order of
// registration. Deletion failures are logged and do not stop the sweep, so a
// single stuck resource cannot leak everything registered after it.
type Pool struct {
	mu        sync.Mutex
	resources []resource
	released  bool
}

func NewPool() *Pool {
	return &Pool{}
}

// Add registers a resource for deletion on Release.
func (p *Pool) Add(id string, delete DeleteFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		return fmt.Errorf("%w: cannot track resource %s", ErrReleased, id)
	}

	p.resources = append(p.resources, resource{id: id, delete: delete})

	return nil
}

// Len reports how many resources are currently tracked.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.resources)
}

// Release deletes every tracked resource, newest first. It returns the number
// of resources that could not be deleted.
func (p *Pool) Release(ctx context.Context) int {
	p.mu.Lock()
	resources := p.resources
	p.resources = nil
	p.released = true
	p.mu.Unlock()

	failed := 0

	for i := len(resources) - 1; i >= 0; i-- {
		r := resources[i]

		if err := r.delete(ctx, r.id); err != nil {
			ginkgo.GinkgoWriter.Printf("Warning: failed to delete resource %s: %v\n", r.id, err)
			failed++

			continue
		}

		ginkgo.GinkgoWriter.Printf("Deleted resource %s\n", r.id)
	}

	return failed
}
