package cases

// casesSchema gates the cases document before it is decoded into domain
// types: a non-empty array where every case names a fixture file and an
// expectation.
const casesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["input", "expected"],
    "properties": {
      "input": {
        "type": "object",
        "required": ["file_path"],
        "properties": {
          "name": {"type": "string"},
          "doc_type": {"type": "string"},
          "file_path": {"type": "string", "minLength": 1}
        }
      },
      "expected": {
        "type": "object",
        "properties": {
          "status": {"enum": ["COMPLETED", "REJECTED", "FAILED"]},
          "doc_type": {"type": "string"},
          "min_confidence": {"type": "number", "minimum": 0, "maximum": 1},
          "result": {"type": "object"}
        }
      }
    }
  }
}`
