package bundle

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchema validates the bundle wire shape before per-object decoding
// runs. Object content is deliberately loose here: only the envelope and
// each object's type/id discriminators are checked, typed decoders enforce
// the rest.
const envelopeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["type", "id", "objects"],
  "properties": {
    "type": {
      "const": "bundle"
    },
    "id": {
      "type": "string",
      "pattern": "^bundle--[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
    },
    "objects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "id"],
        "properties": {
          "type": {
            "type": "string",
            "pattern": "^[a-z][a-z0-9-]*$"
          },
          "id": {
            "type": "string",
            "pattern": "^[a-z][a-z0-9-]*--[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
          }
        }
      }
    }
  }
}`

// ValidateEnvelope checks raw bundle JSON against the envelope schema.
func ValidateEnvelope(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(envelopeSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate bundle against schema: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("bundle validation failed: %v", result.Errors())
	}
	return nil
}
