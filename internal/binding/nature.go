package binding

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Nature -linecomment -output=nature_string.go

// Nature classifies collection elements by their relational implications.
type Nature int

const (
	_ Nature = iota // zero value is the null nature and never valid

	NatureBasic      // basic
	NatureAggregate  // aggregate
	NatureOneToMany  // one-to-many
	NatureManyToMany // many-to-many
	NatureManyToAny  // many-to-any

	// NatureTotal is the number of valid natures plus the null nature.
	NatureTotal = int(iota)
)

// IsValid reports whether n is one of the declared natures.
func (n Nature) IsValid() bool {
	return n >= NatureBasic && int(n) < NatureTotal
}

// IsAssociation reports whether elements of this nature are entities reached
// through an association.
func (n Nature) IsAssociation() bool {
	switch n {
	default:
		return false
	case NatureBasic, NatureAggregate:
		return false
	case NatureOneToMany, NatureManyToMany, NatureManyToAny:
		return true
	}
}

// IsCascadeable reports whether operations on the owner propagate to elements
// of this nature.
func (n Nature) IsCascadeable() bool {
	switch n {
	default:
		return false
	case NatureBasic:
		return false
	case NatureAggregate, NatureOneToMany, NatureManyToMany, NatureManyToAny:
		return true
	}
}

// Natures returns every valid nature in declaration order.
func Natures() []Nature {
	res := make([]Nature, 0, NatureTotal-1)
	for n := NatureBasic; int(n) < NatureTotal; n++ {
		res = append(res, n)
	}

	return res
}

// ParseNature parses a nature name. Names are case-insensitive and may use
// either '-' or '_' as separator, so "one-to-many" and "ONE_TO_MANY" are equal.
func ParseNature(s string) (Nature, error) {
	name := normalizeEnumName(s)
	for _, n := range Natures() {
		if n.String() == name {
			return n, nil
		}
	}

	return 0, fmt.Errorf("unknown element nature %q", s)
}

func normalizeEnumName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
