package analyze

import (
	"strconv"

	"plural-binder/internal/common"
)

// TypeStringer renders TypeInfo as short, package-alias qualified Go syntax.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable representation of a TypeInfo.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct, TypeKindAlias, TypeKindInterface:
		if t.IsNamed() {
			return t.ID.Name
		}
		if t.Kind == TypeKindAlias {
			return s.TypeString(t.Underlying)
		}
		if t.Kind == TypeKindInterface {
			return "interface{...}"
		}
		return "struct{...}"

	case TypeKindPointer:
		return "*" + s.elemString(t.ElemType)

	case TypeKindSlice:
		return "[]" + s.elemString(t.ElemType)

	case TypeKindArray:
		return "[" + strconv.FormatInt(t.Len, 10) + "]" + s.elemString(t.ElemType)

	case TypeKindMap:
		return "map[" + s.elemString(t.KeyType) + "]" + s.elemString(t.ElemType)

	case TypeKindExternal:
		if t.IsNamed() {
			if alias := common.PkgAlias(t.ID.PkgPath); alias != "" {
				return alias + "." + t.ID.Name
			}
			return t.ID.Name
		}
		return t.GoType.String()

	default:
		if t.GoType != nil {
			return t.GoType.String()
		}
		return common.UnknownStr
	}
}

func (s *TypeStringer) elemString(t *TypeInfo) string {
	if t == nil {
		return "<unknown>"
	}
	return s.TypeString(t)
}
