package binding

// AttributeID indexes a plural attribute binding within its Metamodel.
type AttributeID int

// NoAttribute is the owner id of element bindings built without an owner.
const NoAttribute AttributeID = -1

// Metamodel is the arena that owns plural attribute bindings. It is built on a
// single goroutine and must be sealed before it is shared. The zero value is
// an empty metamodel with default BuildOptions.
type Metamodel struct {
	opts       BuildOptions
	attributes []*PluralAttributeBinding
	byRole     map[string]AttributeID
	sealed     bool
}

// NewMetamodel returns an empty metamodel that validates with opts.
func NewMetamodel(opts BuildOptions) *Metamodel {
	return &Metamodel{
		opts:   opts,
		byRole: make(map[string]AttributeID),
	}
}

// AddPluralAttribute builds the element binding for elem, then registers a
// plural attribute binding owning it.
func (m *Metamodel) AddPluralAttribute(attr PluralAttributeSpec, elem ElementSpec) (*PluralAttributeBinding, error) {
	if m.sealed {
		return nil, &IllegalStateError{Op: "AddPluralAttribute", Reason: "metamodel is sealed"}
	}

	role := roleOf(attr.Entity, attr.Name)

	switch {
	case attr.Entity == "":
		return nil, configErr(role, "entity", "entity name is required")
	case attr.Name == "":
		return nil, configErr(role, "name", "attribute name is required")
	case !attr.Collection.IsValid():
		return nil, configErr(role, "collection", "unrecognized collection nature %s", attr.Collection)
	}

	if m.byRole == nil {
		m.byRole = make(map[string]AttributeID)
	}

	if _, dup := m.byRole[role]; dup {
		return nil, configErr(role, "name", "duplicate plural attribute")
	}

	id := AttributeID(len(m.attributes))

	element, err := newElementBinding(m, id, role, elem, m.opts)
	if err != nil {
		return nil, err
	}

	if attr.Inverse && !element.Nature().IsAssociation() {
		return nil, configErr(role, "inverse", "%s element cannot be mapped inverse", element.Nature())
	}

	p := &PluralAttributeBinding{
		id:         id,
		entity:     attr.Entity,
		name:       attr.Name,
		collection: attr.Collection,
		inverse:    attr.Inverse,
		orderBy:    attr.OrderBy,
		where:      attr.Where,
		element:    element,
	}

	m.attributes = append(m.attributes, p)
	m.byRole[role] = id

	return p, nil
}

// Seal ends assembly. Later calls to AddPluralAttribute fail.
func (m *Metamodel) Seal() {
	m.sealed = true
}

func (m *Metamodel) Sealed() bool {
	return m.sealed
}

// PluralAttribute returns the binding with the given id, or nil.
func (m *Metamodel) PluralAttribute(id AttributeID) *PluralAttributeBinding {
	if id < 0 || int(id) >= len(m.attributes) {
		return nil
	}

	return m.attributes[id]
}

// Lookup finds a plural attribute by its role.
func (m *Metamodel) Lookup(role string) (*PluralAttributeBinding, bool) {
	id, ok := m.byRole[role]
	if !ok {
		return nil, false
	}

	return m.attributes[id], true
}

// PluralAttributes returns all bindings in registration order. The result is
// shared and must not be modified.
func (m *Metamodel) PluralAttributes() []*PluralAttributeBinding {
	return m.attributes
}

func (m *Metamodel) Len() int {
	return len(m.attributes)
}
