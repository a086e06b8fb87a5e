package binding

import (
	"iter"
	"slices"
)

// RelationalValueBinding binds an element to a single column or to a derived
// formula. Exactly one of Column and Formula is set.
type RelationalValueBinding struct {
	Column     string
	Formula    string
	Nullable   bool
	Insertable bool
	Updatable  bool
}

// ColumnValue returns a writable column binding.
func ColumnValue(name string, nullable bool) RelationalValueBinding {
	return RelationalValueBinding{
		Column:     name,
		Nullable:   nullable,
		Insertable: true,
		Updatable:  true,
	}
}

// FormulaValue returns a read-only derived binding.
func FormulaValue(expr string) RelationalValueBinding {
	return RelationalValueBinding{Formula: expr}
}

// IsDerived reports whether the value is computed rather than stored.
func (v RelationalValueBinding) IsDerived() bool {
	return v.Formula != ""
}

// IsNullable reports whether the stored column accepts nulls. Derived values
// are never nullable columns.
func (v RelationalValueBinding) IsNullable() bool {
	return !v.IsDerived() && v.Nullable
}

// String returns the column name or the formula in parentheses.
func (v RelationalValueBinding) String() string {
	if v.IsDerived() {
		return "(" + v.Formula + ")"
	}

	return v.Column
}

func (v RelationalValueBinding) validate() string {
	switch {
	case v.Column == "" && v.Formula == "":
		return "neither column nor formula is set"
	case v.Column != "" && v.Formula != "":
		return "both column and formula are set"
	case v.IsDerived() && (v.Insertable || v.Updatable):
		return "derived value cannot be insertable or updatable"
	}

	return ""
}

// RelationalValues is a read-only view of an element's relational values in
// column order. The zero value is an empty view.
type RelationalValues struct {
	s []RelationalValueBinding
}

func (r RelationalValues) Len() int {
	return len(r.s)
}

// At returns a copy of the i-th value. It panics if i is out of range.
func (r RelationalValues) At(i int) RelationalValueBinding {
	return r.s[i]
}

// All yields the values with their positions.
func (r RelationalValues) All() iter.Seq2[int, RelationalValueBinding] {
	return slices.All(r.s)
}

// Slice returns a fresh, never-nil copy of the values.
func (r RelationalValues) Slice() []RelationalValueBinding {
	return append(make([]RelationalValueBinding, 0, len(r.s)), r.s...)
}
