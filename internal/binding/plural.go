package binding

import (
	"fmt"
	"strings"
)

// CollectionNature is the Java-agnostic shape of a plural attribute.
type CollectionNature int

const (
	CollectionBag CollectionNature = iota
	CollectionIDBag
	CollectionSet
	CollectionList
	CollectionArray
	CollectionMap
)

var collectionNames = [...]string{
	CollectionBag:   "bag",
	CollectionIDBag: "idbag",
	CollectionSet:   "set",
	CollectionList:  "list",
	CollectionArray: "array",
	CollectionMap:   "map",
}

func (c CollectionNature) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("CollectionNature(%d)", int(c))
	}

	return collectionNames[c]
}

func (c CollectionNature) IsValid() bool {
	return c >= CollectionBag && int(c) < len(collectionNames)
}

// IsIndexed reports whether elements are addressed by a list index or map key.
func (c CollectionNature) IsIndexed() bool {
	return c == CollectionList || c == CollectionArray || c == CollectionMap
}

// ParseCollectionNature parses a collection nature name. The empty string is
// CollectionBag.
func ParseCollectionNature(s string) (CollectionNature, error) {
	name := strings.ReplaceAll(normalizeEnumName(s), "-", "")
	if name == "" {
		return CollectionBag, nil
	}

	for i, n := range collectionNames {
		if n == name {
			return CollectionNature(i), nil
		}
	}

	return 0, fmt.Errorf("unknown collection nature %q", s)
}

// PluralAttributeSpec carries the owner-side inputs of a plural attribute.
type PluralAttributeSpec struct {
	Entity     string
	Name       string
	Collection CollectionNature
	Inverse    bool
	OrderBy    string
	Where      string
}

// PluralAttributeBinding binds a collection-valued attribute of an entity.
type PluralAttributeBinding struct {
	id         AttributeID
	entity     string
	name       string
	collection CollectionNature
	inverse    bool
	orderBy    string
	where      string
	element    *ElementBinding
}

func (p *PluralAttributeBinding) ID() AttributeID                    { return p.id }
func (p *PluralAttributeBinding) Entity() string                     { return p.entity }
func (p *PluralAttributeBinding) Name() string                       { return p.name }
func (p *PluralAttributeBinding) CollectionNature() CollectionNature { return p.collection }
func (p *PluralAttributeBinding) IsInverse() bool                    { return p.inverse }
func (p *PluralAttributeBinding) OrderBy() string                    { return p.orderBy }
func (p *PluralAttributeBinding) Where() string                      { return p.where }
func (p *PluralAttributeBinding) ElementBinding() *ElementBinding    { return p.element }

// Role returns the qualified attribute name, "Entity.name".
func (p *PluralAttributeBinding) Role() string {
	return roleOf(p.entity, p.name)
}

func roleOf(entity, name string) string {
	return entity + "." + name
}
