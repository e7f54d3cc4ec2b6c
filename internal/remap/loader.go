package remap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a settings document. A missing file yields empty settings.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}

		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a JSON settings document. Empty input yields empty settings.
func Parse(data []byte) (*Settings, error) {
	var s Settings

	if len(bytes.TrimSpace(data)) == 0 {
		return &s, nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %w", err)
	}

	return &s, nil
}

// Marshal serializes s as indented JSON. Target fields are written as is;
// '<' and '>' are not escaped.
func Marshal(s *Settings) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSettings
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes s to path as JSON.
func WriteFile(s *Settings, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}

// ToYAML renders s as YAML with the given indent (2 when indent < 1).
func ToYAML(s *Settings, indent int) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSettings
	}

	if indent < 1 {
		indent = 2
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)

	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to marshal settings YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal settings YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseYAML parses the YAML rendering produced by ToYAML.
func ParseYAML(data []byte) (*Settings, error) {
	var s Settings

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return &s, nil
}
