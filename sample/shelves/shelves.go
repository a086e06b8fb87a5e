// Package shelves holds collection fields that have no relational mapping:
// a value type without stored fields and a nested collection.
package shelves

// Shelf is an entity in a storage room.
type Shelf struct {
	ID   int64 `orm:"id"`
	Name string

	// Labels are printed on the shelf edge.
	Labels []string
	// Neighbors link to adjacent shelves through a value type.
	Neighbors []Neighbor
	// Layout holds slot labels row by row.
	Layout [][]string
}

// Neighbor points at another shelf and stores nothing of its own.
type Neighbor struct {
	Target *Shelf
}
