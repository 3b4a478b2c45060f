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

// Package fakeimage is an in-process image service used by unit tests and
// local suite smoke runs. It implements the slice of the image API the
// behavior layer touches: create, get, paginated list, delete, member
// listing and the schema document, with scriptable status transitions so
// polling paths can be exercised without a live cloud.
package fakeimage

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stratocloud/cloudqa/pkg/images"

	"k8s.io/utils/ptr"
)

// DefaultScript is the status sequence a new image walks through, one step
// per GET.
var DefaultScript = []images.Status{images.StatusQueued, images.StatusSaving, images.StatusActive}

type record struct {
	image  images.Image
	script []images.Status
	step   int
}

// Server holds the in-memory image store behind a chi router.
type Server struct {
	mu      sync.Mutex
	order   []string
	records map[string]*record
	members map[string][]images.Member
	router  chi.Router
}

func New() *Server {
	s := &Server{
		records: map[string]*record{},
		members: map[string][]images.Member{},
	}

	router := chi.NewRouter()

	router.Post("/v2/images", s.createImage)
	router.Get("/v2/images", s.listImages)
	router.Get("/v2/images/{imageID}", s.getImage)
	router.Delete("/v2/images/{imageID}", s.deleteImage)
	router.Get("/v2/images/{imageID}/members", s.listMembers)
	router.Get("/v2/schemas/image", s.imageSchema)

	s.router = router

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Script replaces the status sequence for an existing image.
func (s *Server) Script(imageID string, statuses ...images.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[imageID]; ok {
		rec.script = statuses
		rec.step = 0
	}
}

// AddMember registers a member on an image.
func (s *Server) AddMember(imageID, memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	s.members[imageID] = append(s.members[imageID], images.Member{
		ImageID:   imageID,
		MemberID:  memberID,
		Status:    "pending",
		Schema:    images.MemberSchemaPath,
		CreatedAt: &now,
		UpdatedAt: &now,
	})
}

// Seed inserts count pre-built active images and returns their IDs in
// listing order.
func (s *Server) Seed(count int, namePrefix string) []string {
	ids := make([]string, count)

	for i := range count {
		image := s.newImage(images.CreateImageRequest{Name: namePrefix + "-" + strconv.Itoa(i)})
		image.Status = images.StatusActive

		s.mu.Lock()
		s.records[image.ID] = &record{image: *image, script: []images.Status{images.StatusActive}}
		s.order = append(s.order, image.ID)
		s.mu.Unlock()

		ids[i] = image.ID
	}

	return ids
}

func (s *Server) newImage(req images.CreateImageRequest) *images.Image {
	now := time.Now().UTC()
	id := uuid.NewString()

	protected := false
	if req.Protected != nil {
		protected = *req.Protected
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = images.VisibilityPrivate
	}

	return &images.Image{
		ID:              id,
		Name:            req.Name,
		Status:          images.StatusQueued,
		Visibility:      visibility,
		Protected:       ptr.To(protected),
		ContainerFormat: req.ContainerFormat,
		DiskFormat:      req.DiskFormat,
		MinDisk:         ptr.To(0),
		MinRAM:          ptr.To(0),
		Tags:            req.Tags,
		CreatedAt:       &now,
		UpdatedAt:       &now,
		Self:            "/v2/images/" + id,
		File:            "/v2/images/" + id + "/file",
		Schema:          images.ImageSchemaPath,
	}
}

func (s *Server) createImage(w http.ResponseWriter, r *http.Request) {
	var req images.CreateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	image := s.newImage(req)

	s.mu.Lock()
	s.records[image.ID] = &record{image: *image, script: DefaultScript}
	s.order = append(s.order, image.ID)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, image)
}

// getImage advances the image one step along its status script per fetch,
// which lets a polling caller observe the full transition sequence.
func (s *Server) getImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	s.mu.Lock()
	rec, ok := s.records[imageID]
	if ok {
		rec.image.Status = rec.script[rec.step]
		if rec.step < len(rec.script)-1 {
			rec.step++
		}
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, rec.image)
}

func (s *Server) listImages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if value := query.Get("limit"); value != "" {
		limit, _ = strconv.Atoi(value)
	}

	marker := query.Get("marker")
	name := query.Get("name")

	s.mu.Lock()

	var page []images.Image

	started := marker == ""

	for _, id := range s.order {
		if !started {
			started = id == marker
			continue
		}

		rec := s.records[id]
		if name != "" && rec.image.Name != name {
			continue
		}

		page = append(page, rec.image)

		if limit > 0 && len(page) == limit {
			break
		}
	}

	s.mu.Unlock()

	if page == nil {
		page = []images.Image{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"images": page,
		"schema": "/v2/schemas/images",
	})
}

func (s *Server) deleteImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	s.mu.Lock()
	_, ok := s.records[imageID]
	delete(s.records, imageID)

	for i, id := range s.order {
		if id == imageID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	s.mu.Lock()
	members := s.members[imageID]
	s.mu.Unlock()

	if members == nil {
		members = []images.Member{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"members": members,
		"schema":  "/v2/schemas/members",
	})
}

const imageSchemaDocument = `{
	"name": "image",
	"type": "object",
	"properties": {
		"id": {
			"type": "string",
			"pattern": "^([0-9a-fA-F]){8}-([0-9a-fA-F]){4}-([0-9a-fA-F]){4}-([0-9a-fA-F]){4}-([0-9a-fA-F]){12}$"
		},
		"name": {"type": ["string", "null"]},
		"status": {"type": "string"},
		"visibility": {"enum": ["public", "private", "shared"]},
		"protected": {"type": "boolean"},
		"container_format": {"type": "string"},
		"disk_format": {"type": "string"},
		"min_disk": {"type": "integer"},
		"min_ram": {"type": "integer"},
		"tags": {"type": "array", "items": {"type": "string"}},
		"created_at": {"type": "string"},
		"updated_at": {"type": "string"},
		"self": {"type": "string"},
		"file": {"type": "string"},
		"schema": {"type": "string"}
	},
	"required": ["id", "status"],
	"additionalProperties": true
}`

func (s *Server) imageSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(imageSchemaDocument))
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
