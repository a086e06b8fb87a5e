package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"plural-binder/internal/common"
)

// UnmarshalYAML accepts "title", {name: title, nullable: false}, or a
// sequence mixing both forms.
func (c *ColumnArray) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*c = nil
		return nil
	}

	switch node.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		col, err := decodeColumn(node)
		if err != nil {
			return err
		}

		*c = ColumnArray{col}

		return nil

	case yaml.SequenceNode:
		cols := make(ColumnArray, 0, len(node.Content))

		for _, item := range node.Content {
			col, err := decodeColumn(item)
			if err != nil {
				return err
			}

			cols = append(cols, col)
		}

		*c = cols

		return nil

	default:
		return fmt.Errorf("line %d: expected column name, column mapping or list", node.Line)
	}
}

func decodeColumn(node *yaml.Node) (ColumnMapping, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return ColumnMapping{}, err
		}

		return ColumnMapping{Name: name}, nil

	case yaml.MappingNode:
		var col ColumnMapping
		if err := node.Decode(&col); err != nil {
			return ColumnMapping{}, err
		}

		return col, nil

	default:
		return ColumnMapping{}, fmt.Errorf("line %d: expected column name or column mapping", node.Line)
	}
}

// MarshalYAML writes a single plain column as its bare name.
func (c ColumnArray) MarshalYAML() (any, error) {
	if first, ok := common.First(c); ok && common.IsSingle(c) && first.isPlain() {
		return first.Name, nil
	}

	return []ColumnMapping(c), nil
}

// isPlain reports whether the column can be written with the shorthand.
func (c ColumnMapping) isPlain() bool {
	return c.Formula == "" &&
		valueOr(c.Nullable, true) &&
		valueOr(c.Insertable, true) &&
		valueOr(c.Updatable, true)
}
