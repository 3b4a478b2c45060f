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

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateImageJSON validates a raw image document against the JSON schema
// the service itself advertises. This catches drift between what the service
// documents and what it actually returns.
func (b *Behaviors) ValidateImageJSON(ctx context.Context, document []byte) error {
	schemaDoc, err := b.client.ImageSchema(ctx)
	if err != nil {
		return err
	}

	schema, err := compileSchema(ImageSchemaPath, schemaDoc)
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(document))
	if err != nil {
		return fmt.Errorf("decoding image document: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("image document does not match advertised schema: %w", err)
	}

	return nil
}

// ValidateImageEntity marshals an image entity and validates it against the
// advertised schema.
func (b *Behaviors) ValidateImageEntity(ctx context.Context, image *Image) error {
	document, err := json.Marshal(image)
	if err != nil {
		return fmt.Errorf("marshaling image entity: %w", err)
	}

	return b.ValidateImageJSON(ctx, document)
}

func compileSchema(name string, schemaDoc []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaDoc))
	if err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return schema, nil
}
