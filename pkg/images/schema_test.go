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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stratocloud/cloudqa/pkg/images"
	"github.com/stratocloud/cloudqa/pkg/images/mock"
)

const imageSchemaDoc = `{
	"name": "image",
	"type": "object",
	"properties": {
		"id": {
			"type": "string",
			"pattern": "^([0-9a-fA-F]){8}-([0-9a-fA-F]){4}-([0-9a-fA-F]){4}-([0-9a-fA-F]){4}-([0-9a-fA-F]){12}$"
		},
		"name": {"type": ["string", "null"]},
		"status": {"type": "string"},
		"visibility": {"enum": ["public", "private", "shared"]}
	},
	"required": ["id", "status"]
}`

func TestValidateImageJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	client.EXPECT().ImageSchema(gomock.Any()).Return([]byte(imageSchemaDoc), nil).Times(2)

	valid := []byte(`{"id": "` + uuid.NewString() + `", "status": "active", "visibility": "private"}`)
	require.NoError(t, behaviors.ValidateImageJSON(context.Background(), valid))

	invalid := []byte(`{"id": "not-a-uuid", "visibility": "hidden"}`)
	err := behaviors.ValidateImageJSON(context.Background(), invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match advertised schema")
}

func TestValidateImageEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockAPI(ctrl)
	behaviors := images.NewBehaviors(client, testConfig())

	client.EXPECT().ImageSchema(gomock.Any()).Return([]byte(imageSchemaDoc), nil)

	require.NoError(t, behaviors.ValidateImageEntity(context.Background(), validImage(uuid.NewString())))
}
