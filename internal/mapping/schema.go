package mapping

import (
	"fmt"
	"strings"

	"plural-binder/internal/binding"
)

// CurrentVersion is the mapping schema version written by this package.
const CurrentVersion = "1"

// MappingFile represents the root of a YAML mapping document.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Options tune how the document is assembled.
	Options Options `yaml:"options,omitempty"`

	// Entities lists the entities that own plural attributes.
	Entities []EntityMapping `yaml:"entities"`
}

// Options are document-wide assembly settings.
type Options struct {
	// EmptyValues is the empty relational value policy:
	// "associations" (default), "allow" or "reject".
	EmptyValues string `yaml:"empty_values,omitempty"`
}

// EntityMapping groups the plural attributes of one entity.
type EntityMapping struct {
	Name        string              `yaml:"name"`
	Collections []CollectionMapping `yaml:"collections,omitempty"`
}

// CollectionMapping declares one plural attribute.
type CollectionMapping struct {
	Name    string         `yaml:"name"`
	Kind    string         `yaml:"kind,omitempty"`
	Inverse bool           `yaml:"inverse,omitempty"`
	OrderBy string         `yaml:"order_by,omitempty"`
	Where   string         `yaml:"where,omitempty"`
	Element ElementMapping `yaml:"element"`
}

// ElementMapping declares the element side of a plural attribute.
type ElementMapping struct {
	Nature string `yaml:"nature"`
	// Entity is the referenced entity of one-to-many and many-to-many elements.
	Entity  string       `yaml:"entity,omitempty"`
	Fetch   string       `yaml:"fetch,omitempty"`
	Type    *TypeMapping `yaml:"type,omitempty"`
	Columns ColumnArray  `yaml:"columns,omitempty"`
}

// TypeMapping describes the element type.
type TypeMapping struct {
	Name   string            `yaml:"name,omitempty"`
	Go     string            `yaml:"go,omitempty"`
	Params map[string]string `yaml:"params,omitempty"`
}

// ColumnMapping declares a column or a formula. Pointer fields distinguish
// "unset" from false until defaults are applied.
type ColumnMapping struct {
	Name       string `yaml:"name,omitempty"`
	Formula    string `yaml:"formula,omitempty"`
	Nullable   *bool  `yaml:"nullable,omitempty"`
	Insertable *bool  `yaml:"insertable,omitempty"`
	Updatable  *bool  `yaml:"updatable,omitempty"`
}

// ColumnArray is a list of columns that can be unmarshaled from a single
// column name, a single column mapping, or a sequence of either.
type ColumnArray []ColumnMapping

// Role returns the attribute role of a collection of the given entity.
func Role(entity, collection string) string {
	return entity + "." + collection
}

// ParseEmptyValuePolicy parses the empty_values option.
func ParseEmptyValuePolicy(s string) (binding.EmptyValuePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "associations":
		return binding.EmptyValuesForAssociations, nil
	case "allow":
		return binding.EmptyValuesAllowed, nil
	case "reject":
		return binding.EmptyValuesRejected, nil
	default:
		return 0, fmt.Errorf("unknown empty_values policy %q (want associations, allow or reject)", s)
	}
}

// RelationalValues converts the columns to relational value bindings. The
// result is never nil. Defaults must already be applied.
func (c ColumnArray) RelationalValues() []binding.RelationalValueBinding {
	res := make([]binding.RelationalValueBinding, 0, len(c))
	for _, col := range c {
		res = append(res, binding.RelationalValueBinding{
			Column:     col.Name,
			Formula:    col.Formula,
			Nullable:   valueOr(col.Nullable, true),
			Insertable: valueOr(col.Insertable, col.Formula == ""),
			Updatable:  valueOr(col.Updatable, col.Formula == ""),
		})
	}

	return res
}

// Descriptor converts the type mapping to a binding type descriptor.
func (t *TypeMapping) Descriptor() *binding.TypeDescriptor {
	if t == nil {
		return nil
	}

	return &binding.TypeDescriptor{
		ExplicitTypeName: t.Name,
		GoType:           t.Go,
		Parameters:       t.Params,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func valueOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}

	return *p
}
