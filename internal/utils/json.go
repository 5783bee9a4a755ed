package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// SaveCompactJSON marshals the data without whitespace and writes it to a file.
// HTML characters are left unescaped so icon URLs stay readable.
func SaveCompactJSON(path string, data interface{}) error {
	bytes, err := MarshalCompact(data)
	if err != nil {
		return err
	}
	return writeFile(path, bytes)
}

// MarshalCompact encodes data as compact JSON without HTML escaping and
// without the trailing newline json.Encoder adds.
func MarshalCompact(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}

func writeFile(path string, bytes []byte) error {
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
