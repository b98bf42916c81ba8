package webapi

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaBaseURL namespaces compiled schemas. Nothing is fetched from it.
const schemaBaseURL = "https://schemas.vocabsync.dev/"

// Schema is a compiled JSON schema for one endpoint response.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// CompileSchema compiles a JSON schema document registered under name.
func CompileSchema(name, doc string) (*Schema, error) {
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	loc := schemaBaseURL + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(loc, parsed); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}

	compiled, err := c.Compile(loc)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompileSchema is like CompileSchema but panics on error.
// Intended for package-level schema variables.
func MustCompileSchema(name, doc string) *Schema {
	s, err := CompileSchema(name, doc)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name used in validation errors.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks a decoded JSON instance against the schema.
func (s *Schema) Validate(instance any) error {
	return s.compiled.Validate(instance)
}

// parseInstance decodes a response body the way the validator expects,
// keeping numbers as json.Number so integer checks are exact.
func parseInstance(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty body")
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(body))
}
