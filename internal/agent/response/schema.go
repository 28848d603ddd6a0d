package response

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SummarySchema is the JSON Schema every generated summary must satisfy.
// Title and author must contain at least one non-space character.
const SummarySchema = `{
  "type": "object",
  "required": ["title", "author", "foreword", "whoIsItFor", "keyTakeaways", "actionableSteps", "coreConcepts"],
  "properties": {
    "title": {"type": "string", "pattern": "\\S"},
    "author": {"type": "string", "pattern": "\\S"},
    "foreword": {"type": "string"},
    "whoIsItFor": {"$ref": "#/definitions/stringList"},
    "keyTakeaways": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "description"],
        "properties": {
          "title": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "actionableSteps": {"$ref": "#/definitions/stringList"},
    "coreConcepts": {"$ref": "#/definitions/stringList"}
  },
  "definitions": {
    "stringList": {"type": "array", "items": {"type": "string"}}
  }
}`

var summarySchema = jsonschema.MustCompileString("book_summary.json", SummarySchema)
