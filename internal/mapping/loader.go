package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}

	if mf.Options.EmptyValues == "" {
		mf.Options.EmptyValues = "associations"
	}

	for i := range mf.Entities {
		for j := range mf.Entities[i].Collections {
			c := &mf.Entities[i].Collections[j]
			if c.Kind == "" {
				c.Kind = "bag"
			}

			if c.Element.Fetch == "" {
				c.Element.Fetch = "select"
			}

			for k := range c.Element.Columns {
				col := &c.Element.Columns[k]
				writable := col.Formula == ""

				if col.Nullable == nil && writable {
					col.Nullable = boolPtr(true)
				}

				if col.Insertable == nil {
					col.Insertable = boolPtr(writable)
				}

				if col.Updatable == nil {
					col.Updatable = boolPtr(writable)
				}
			}
		}
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
