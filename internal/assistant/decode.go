package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschemago "github.com/google/jsonschema-go/jsonschema"
)

// decodeToolArguments validates arguments against the parameter schema shown
// to the assistant and only then decodes them into target.
func decodeToolArguments(arguments string, validator *jsonschemago.Resolved, target any) error {
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	if err := rejectDuplicateKeys(arguments); err != nil {
		return err
	}

	var instance any
	if err := json.Unmarshal([]byte(arguments), &instance); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if err := validator.Validate(instance); err != nil {
		return fmt.Errorf("arguments do not match the parameter schema: %w", err)
	}

	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	return nil
}

// rejectDuplicateKeys fails when a top-level key appears more than once.
// Decoding keeps only the last occurrence, so a repeated key could smuggle a
// different value past validation.
func rejectDuplicateKeys(arguments string) error {
	decoder := json.NewDecoder(strings.NewReader(arguments))
	tok, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	seen := map[string]struct{}{}
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("arguments are not valid JSON: %w", err)
		}
		key, _ := tok.(string)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate argument %q", key)
		}
		seen[key] = struct{}{}

		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("arguments are not valid JSON: %w", err)
		}
	}
	return nil
}
