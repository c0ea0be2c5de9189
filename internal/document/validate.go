package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resumebuilder/internal/model"
)

var ErrInvalidDocument = errors.New("invalid resume document")

// schema mirrors the payload accepted by the backend's resume create/update
// endpoints.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version_name", "personal_info", "experience", "education", "skills", "projects", "certificates", "achievements", "links"],
  "properties": {
    "version_name": {"type": "string", "maxLength": 200},
    "personal_info": {
      "type": "object",
      "required": ["name", "email", "phone", "address", "summary", "title"],
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "address": {"type": "string"},
        "summary": {"type": "string"},
        "title": {"type": "string"}
      }
    },
    "experience": {"type": "array", "items": {"$ref": "#/definitions/experience"}},
    "education": {"type": "array", "items": {"$ref": "#/definitions/education"}},
    "skills": {"type": "array", "items": {"type": "string"}},
    "projects": {"type": "array", "items": {"type": "object"}},
    "certificates": {"type": "array", "items": {"type": "object"}},
    "achievements": {"type": "array", "items": {"type": "object"}},
    "links": {"type": "array", "items": {"$ref": "#/definitions/link"}}
  },
  "definitions": {
    "experience": {
      "type": "object",
      "required": ["title", "company", "period", "description"],
      "properties": {
        "title": {"type": "string"},
        "company": {"type": "string"},
        "period": {"type": "string"},
        "description": {"type": "string"}
      }
    },
    "education": {
      "type": "object",
      "required": ["degree", "institution", "period", "description"],
      "properties": {
        "degree": {"type": "string"},
        "institution": {"type": "string"},
        "period": {"type": "string"},
        "description": {"type": "string"}
      }
    },
    "link": {
      "type": "object",
      "required": ["platform", "url"],
      "properties": {
        "platform": {"type": "string"},
        "url": {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Validate checks d against the persistence schema. It normalizes a copy
// first, so a document with nil lists is still valid.
func Validate(d model.ResumeDocument) error {
	c := d.Clone()
	c.Normalize()

	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(c))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
