package extract

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/solargrid-io/lease-tracker/constants"
)

// leaseSchemaJSON constrains pre-structured lease records on the passthrough
// path. Optionals are nullable; bounds mirror what the resolvers enforce.
const leaseSchemaJSON = `{
  "type": "object",
  "properties": {
    "name":         {"type": "string", "minLength": 1},
    "annual_rent":  {"type": ["integer", "null"], "minimum": 0},
    "term_years":   {"type": ["integer", "null"], "minimum": 0},
    "escalator":    {"type": "number", "minimum": 0},
    "risk_tier":    {"type": "string", "enum": ["low", "medium", "high"]},
    "location":     {"type": ["string", "null"]},
    "acres":        {"type": ["number", "null"], "minimum": 0},
    "developer":    {"type": ["string", "null"]},
    "landowners":   {"type": ["string", "null"]},
    "needs_review": {"type": "boolean"}
  },
  "required": ["name"]
}`

var leaseSchema = jsonschema.MustCompileString("lease.schema.json", leaseSchemaJSON)

// DecodeStructured validates and decodes a pre-structured JSON lease record.
// These records bypass the pattern engine entirely (the document was already
// structured at the source); validation is the only gate.
func DecodeStructured(raw []byte) (LeaseFields, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return LeaseFields{}, fmt.Errorf("decode structured lease: %w", err)
	}
	if err := leaseSchema.Validate(doc); err != nil {
		return LeaseFields{}, fmt.Errorf("structured lease failed schema validation: %w", err)
	}

	var f LeaseFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return LeaseFields{}, fmt.Errorf("decode structured lease: %w", err)
	}
	if f.RiskTier == "" {
		f.RiskTier = constants.DefaultRiskTier
	}
	return f, nil
}
