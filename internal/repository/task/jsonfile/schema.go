package jsonfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaJSON string

var documentSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// validateDocument checks raw file contents against the embedded schema.
func validateDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse task file: %w", err)
	}

	if err := documentSchema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return fmt.Errorf("validate task file: %w", err)
		}
		var messages []string
		collectSchemaErrors(&messages, ve)
		return fmt.Errorf("invalid task file: %s", strings.Join(messages, "; "))
	}
	return nil
}

func collectSchemaErrors(messages *[]string, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		path := jsonPointerToPath(err.InstanceLocation)
		if path == "" {
			*messages = append(*messages, err.Message)
			return
		}
		*messages = append(*messages, path+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(messages, cause)
	}
}

// jsonPointerToPath turns "/0/id" into "[0].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
