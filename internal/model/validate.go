package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"portfolio-api/internal/domain"
)

const (
	SchemaGenerateRequest     = "generate_request"
	SchemaCoverRequest        = "cover_request"
	SchemaPlaceholdersRequest = "placeholders_request"
	SchemaPost                = "post"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var (
	schemasMu sync.Mutex
	schemas   = map[string]*gojsonschema.Schema{}
)

func loadSchema(name string) (*gojsonschema.Schema, error) {
	schemasMu.Lock()
	defer schemasMu.Unlock()

	if s, ok := schemas[name]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile("schema/" + name + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	schemas[name] = s
	return s, nil
}

// ValidateJSON checks raw against the named schema. Violations are
// reported as domain.ErrValidation with every failing field listed.
func ValidateJSON(name string, raw []byte) error {
	if !json.Valid(raw) {
		return fmt.Errorf("%w: body is not valid JSON", domain.ErrValidation)
	}
	return validate(name, gojsonschema.NewBytesLoader(raw))
}

// ValidatePost checks a post document before it is persisted.
func ValidatePost(p domain.Post) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return validate(SchemaPost, gojsonschema.NewBytesLoader(raw))
}

func validate(name string, doc gojsonschema.JSONLoader) error {
	schema, err := loadSchema(name)
	if err != nil {
		return err
	}
	res, err := schema.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, describe(e))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

// describe gives friendlier text for the common request failures.
func describe(e gojsonschema.ResultError) string {
	field := e.Field()
	switch e.Type() {
	case "required":
		if prop, ok := e.Details()["property"].(string); ok {
			return prop + " is required"
		}
	case "pattern":
		if field == "prompt" {
			return "prompt is required"
		}
		return field + " has an invalid format"
	}
	return e.String()
}
