// Package model checks incoming resume JSON against the embedded document
// schema before it is decoded.
package model

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/internal/domain"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiled() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
	})
	return schema, schemaErr
}

// ValidateDocument validates raw JSON holding a whole or partial resume
// document. Unknown top-level keys are allowed so a client can send a
// persisted resume back as is.
func ValidateDocument(raw []byte) error {
	s, err := compiled()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema validation failed: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

// ValidateMap validates an already decoded document.
func ValidateMap(m map[string]any) error {
	s, err := compiled()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !res.Valid() {
		return fmt.Errorf("%w: schema validation failed: %s", domain.ErrInvalidInput, res.Errors()[0].String())
	}
	return nil
}
