package course

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://course.json"

// documentSchema describes the structure of a course document. Integrity rules
// that span records (unique ids, one correct option) live in Validate.
const documentSchema = `{
  "type": "object",
  "required": ["format", "title", "chapters"],
  "properties": {
    "format": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "tagline": {"type": "string"},
    "features": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "chapters": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/$defs/chapter"}
    }
  },
  "additionalProperties": false,
  "$defs": {
    "chapter": {
      "type": "object",
      "required": ["id", "title", "difficulty", "sections"],
      "properties": {
        "id": {"type": "integer", "minimum": 1},
        "title": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "duration": {"type": "string"},
        "difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
        "topics": {"type": "array", "items": {"type": "string"}},
        "introduction": {"type": "string"},
        "sections": {
          "type": "array",
          "minItems": 1,
          "items": {"$ref": "#/$defs/section"}
        }
      },
      "additionalProperties": false
    },
    "section": {
      "type": "object",
      "required": ["id", "title"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "title": {"type": "string", "minLength": 1},
        "body": {"type": "string"},
        "code": {
          "type": "object",
          "required": ["language", "source"],
          "properties": {
            "language": {"type": "string", "minLength": 1},
            "title": {"type": "string"},
            "description": {"type": "string"},
            "source": {"type": "string"}
          },
          "additionalProperties": false
        },
        "quiz": {
          "type": "object",
          "required": ["question", "options"],
          "properties": {
            "question": {"type": "string", "minLength": 1},
            "explanation": {"type": "string"},
            "options": {
              "type": "array",
              "minItems": 2,
              "items": {
                "type": "object",
                "required": ["id", "text"],
                "properties": {
                  "id": {"type": "string", "minLength": 1},
                  "text": {"type": "string", "minLength": 1},
                  "correct": {"type": "boolean"}
                },
                "additionalProperties": false
              }
            }
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateSchema checks a generically decoded document against the course
// schema. The value is round-tripped through JSON so the validator sees the
// number and map types it expects.
func validateSchema(raw any) error {
	compiled, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("course schema: %w", err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%w: schema validation failed: %v", ErrInvalidContent, err)
	}
	return nil
}
