package openai

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// responseFormatType is the only format type accepted for schema-constrained
// output.
const responseFormatType = "json_schema"

// ErrSchemaInvalid is returned when a response-format schema file does not
// hold valid JSON.
var ErrSchemaInvalid = errors.New("schema file is not valid JSON")

// LoadResponseFormat reads a JSON schema file and wraps it as a chat
// completions response format. The schema document itself is passed through
// to the backend without interpretation.
func LoadResponseFormat(path string) (*ResponseFormat, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%s: %w", path, ErrSchemaInvalid)
	}
	return &ResponseFormat{Type: responseFormatType, JSONSchema: raw}, nil
}

// SchemaName returns the schema's top-level name field, or "" when absent.
func (f *ResponseFormat) SchemaName() string {
	return gjson.GetBytes(f.JSONSchema, "name").String()
}
