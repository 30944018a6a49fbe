package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML layout file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
