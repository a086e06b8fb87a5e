// Package binding describes the element side of plural (collection-valued)
// attributes in an object-relational metamodel.
//
// An ElementBinding records how the items inside one persisted collection map
// onto relational columns: the element Nature (basic, aggregate, or one of the
// three association styles), the ordered relational values, the fetch mode and
// the type descriptor. Nullability and derivedness are computed once at
// construction.
//
// Element bindings are owned by a PluralAttributeBinding, which in turn lives in
// a Metamodel arena. The element refers to its owner by AttributeID rather than
// by pointer.
//
// # Lifecycle
//
// A Metamodel is assembled on a single goroutine with AddPluralAttribute and
// then sealed. Once sealed and published, every binding in it is immutable and
// may be read concurrently without locking.
package binding
