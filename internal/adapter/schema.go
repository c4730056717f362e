package adapter

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaName identifies one of the embedded result schemas.
type SchemaName string

const (
	// TargetsSchema describes the target list of a single Makefile.
	TargetsSchema SchemaName = "targets.schema.json"
	// MakefilesSchema describes the result of a scan.
	MakefilesSchema SchemaName = "makefiles.schema.json"
)

const schemaBaseURL = "makeparse://schemas/"

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaValidator checks encoded JSON results against the published schemas.
type SchemaValidator interface {
	// Source returns the raw schema document.
	Source(name SchemaName) ([]byte, error)
	// Validate decodes a JSON document and validates it against the schema.
	Validate(name SchemaName, document []byte) error
}

// JSONSchemaValidator compiles the embedded draft 2020-12 schemas once.
type JSONSchemaValidator struct {
	compiled map[SchemaName]*jsonschema.Schema
}

// NewJSONSchemaValidator compiles every embedded schema. Remote references
// are never followed.
func NewJSONSchemaValidator() (*JSONSchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.LoadURL = func(url string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("remote $ref not allowed: %s", url)
	}

	names := []SchemaName{TargetsSchema, MakefilesSchema}

	for _, name := range names {
		data, err := schemaFS.ReadFile(path.Join("schemas", string(name)))
		if err != nil {
			return nil, err
		}

		if err := compiler.AddResource(schemaBaseURL+string(name), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to load schema %s: %w", name, err)
		}
	}

	v := &JSONSchemaValidator{compiled: make(map[SchemaName]*jsonschema.Schema, len(names))}

	for _, name := range names {
		schema, err := compiler.Compile(schemaBaseURL + string(name))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}

		v.compiled[name] = schema
	}

	return v, nil
}

// Source returns the embedded schema document.
func (v *JSONSchemaValidator) Source(name SchemaName) ([]byte, error) {
	data, err := schemaFS.ReadFile(path.Join("schemas", string(name)))
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	return data, nil
}

// Validate checks document against the named schema.
func (v *JSONSchemaValidator) Validate(name SchemaName, document []byte) error {
	schema, ok := v.compiled[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	var doc any
	if err := json.Unmarshal(document, &doc); err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("result does not match %s: %w", name, err)
	}

	return nil
}
