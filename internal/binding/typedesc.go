package binding

// TypeDescriptor describes the mapping type of the elements. It is owned by
// whoever assembles the metamodel and treated as opaque by element bindings.
type TypeDescriptor struct {
	// ExplicitTypeName is the mapping type name (e.g. "string", "long").
	ExplicitTypeName string
	// GoType is the Go type the elements are held in (e.g. "[]string").
	GoType string
	// Parameters are type-specific settings.
	Parameters map[string]string
}

// Parameter returns the named type parameter.
func (t *TypeDescriptor) Parameter(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	v, ok := t.Parameters[name]
	return v, ok
}

// IsEmpty reports whether nothing is known about the element type.
func (t *TypeDescriptor) IsEmpty() bool {
	return t == nil || (t.ExplicitTypeName == "" && t.GoType == "" && len(t.Parameters) == 0)
}
