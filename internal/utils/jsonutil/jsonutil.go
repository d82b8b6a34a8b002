package jsonutil

import (
	"bytes"
	"encoding/json"

	"golang.org/x/xerrors"
)

// FormatJSON pretty-formats the object.
func FormatJSON(input interface{}) (string, error) {
	output, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", xerrors.Errorf("failed to marshal result: %w", err)
	}

	return string(output), nil
}

// UnmarshalBody decodes a request body into v.
// An empty body leaves v untouched, the same as the JSON literal null.
func UnmarshalBody(body []byte, v interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return xerrors.Errorf("failed to decode request body: %w", err)
	}

	return nil
}
