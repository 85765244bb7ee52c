package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the generated bindings schema.
const SchemaID = "https://github.com/bnema/lunar/bindings.schema.json"

// Schema returns the JSON schema of a bindings document, indented for humans.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&Document{})

	schema.ID = SchemaID
	schema.Title = "Lunar Input Bindings"
	schema.Description = "Maps keyboard and pointer inputs to registered callbacks"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
