package binding

import (
	"fmt"
	"slices"
)

// EmptyValuePolicy decides whether an element binding may have no relational
// values at all.
type EmptyValuePolicy int

const (
	// EmptyValuesForAssociations permits an empty sequence only for
	// association natures, whose key may live on the child table.
	EmptyValuesForAssociations EmptyValuePolicy = iota
	// EmptyValuesAllowed permits an empty sequence for every nature.
	EmptyValuesAllowed
	// EmptyValuesRejected requires at least one relational value.
	EmptyValuesRejected
)

func (p EmptyValuePolicy) permits(n Nature) bool {
	switch p {
	case EmptyValuesAllowed:
		return true
	case EmptyValuesRejected:
		return false
	default:
		return n.IsAssociation()
	}
}

// BuildOptions tune validation while building bindings.
type BuildOptions struct {
	EmptyValues EmptyValuePolicy
}

// ElementSpec carries the inputs of an element binding.
type ElementSpec struct {
	Nature Nature
	// RelationalValues must be non-nil; use an empty slice for no values.
	RelationalValues []RelationalValueBinding
	FetchMode        FetchMode
	Type             *TypeDescriptor
	// ReferencedEntity names the element entity of one-to-many and
	// many-to-many associations.
	ReferencedEntity string
}

// ElementBinding is the element side of a plural attribute binding.
// It is immutable once constructed.
type ElementBinding struct {
	model *Metamodel
	owner AttributeID

	nature           Nature
	values           []RelationalValueBinding
	fetchMode        FetchMode
	typeDescriptor   *TypeDescriptor
	referencedEntity string

	nullable    bool
	derived     bool
	nonNullable bool
}

// NewElementBinding builds an element binding that has no owner. Its
// PluralAttributeBinding accessor reports an IllegalStateError; use
// Metamodel.AddPluralAttribute to build owned bindings.
func NewElementBinding(spec ElementSpec, opts BuildOptions) (*ElementBinding, error) {
	return newElementBinding(nil, NoAttribute, "", spec, opts)
}

func newElementBinding(model *Metamodel, owner AttributeID, role string, spec ElementSpec, opts BuildOptions) (*ElementBinding, error) {
	if !spec.Nature.IsValid() {
		if spec.Nature == 0 {
			return nil, configErr(role, "nature", "nature is required")
		}

		return nil, configErr(role, "nature", "unrecognized nature %s", spec.Nature)
	}

	if spec.RelationalValues == nil {
		return nil, configErr(role, "relational_values", "sequence is nil, use an empty sequence instead")
	}

	if len(spec.RelationalValues) == 0 && !opts.EmptyValues.permits(spec.Nature) {
		return nil, configErr(role, "relational_values", "%s element requires at least one relational value", spec.Nature)
	}

	for i, v := range spec.RelationalValues {
		if reason := v.validate(); reason != "" {
			return nil, configErr(role, fmt.Sprintf("relational_values[%d]", i), "%s", reason)
		}
	}

	if !spec.FetchMode.IsValid() {
		return nil, configErr(role, "fetch_mode", "unrecognized fetch mode %s", spec.FetchMode)
	}

	switch spec.Nature {
	case NatureOneToMany, NatureManyToMany:
		if spec.ReferencedEntity == "" {
			return nil, configErr(role, "referenced_entity", "%s element requires a referenced entity", spec.Nature)
		}
	case NatureBasic, NatureAggregate:
		if spec.ReferencedEntity != "" {
			return nil, configErr(role, "referenced_entity", "%s element cannot reference entity %q", spec.Nature, spec.ReferencedEntity)
		}
	}

	typ := spec.Type
	if typ == nil {
		typ = &TypeDescriptor{}
	}

	e := &ElementBinding{
		model:            model,
		owner:            owner,
		nature:           spec.Nature,
		values:           slices.Clone(spec.RelationalValues),
		fetchMode:        spec.FetchMode,
		typeDescriptor:   typ,
		referencedEntity: spec.ReferencedEntity,
	}

	for _, v := range e.values {
		if v.IsDerived() {
			e.derived = true
			continue
		}

		if v.IsNullable() {
			e.nullable = true
		} else {
			e.nonNullable = true
		}
	}

	return e, nil
}

// PluralAttributeBinding returns the plural attribute binding that owns this
// element binding.
func (e *ElementBinding) PluralAttributeBinding() (*PluralAttributeBinding, error) {
	if e.model == nil {
		return nil, &IllegalStateError{Op: "PluralAttributeBinding", Reason: "element binding has no owner"}
	}

	p := e.model.PluralAttribute(e.owner)
	if p == nil {
		return nil, &IllegalStateError{
			Op:     "PluralAttributeBinding",
			Reason: fmt.Sprintf("owner %d is not registered yet", e.owner),
		}
	}

	return p, nil
}

// Owner returns the arena id of the owning plural attribute.
func (e *ElementBinding) Owner() AttributeID {
	return e.owner
}

// RelationalValueBindings returns the columns and formulas the elements map
// to, in column order.
func (e *ElementBinding) RelationalValueBindings() RelationalValues {
	return RelationalValues{s: e.values}
}

// IsNullable reports whether at least one stored value is nullable.
func (e *ElementBinding) IsNullable() bool {
	return e.nullable
}

// HasDerivedValue reports whether at least one value is a formula.
func (e *ElementBinding) HasDerivedValue() bool {
	return e.derived
}

// HasNonNullableValue reports whether at least one stored value is not
// nullable.
func (e *ElementBinding) HasNonNullableValue() bool {
	return e.nonNullable
}

func (e *ElementBinding) FetchMode() FetchMode {
	return e.fetchMode
}

func (e *ElementBinding) Nature() Nature {
	return e.nature
}

func (e *ElementBinding) TypeDescriptor() *TypeDescriptor {
	return e.typeDescriptor
}

// ReferencedEntity returns the element entity name for associations. It is
// empty for basic and aggregate elements and may be empty for many-to-any.
func (e *ElementBinding) ReferencedEntity() string {
	return e.referencedEntity
}
