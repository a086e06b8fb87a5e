// Package library is a small tagged domain model. Structs with a field tagged
// `orm:"id"` are entities; their slice, array and map fields are plural
// attributes.
package library

import "time"

// Book is the root entity.
type Book struct {
	ID        int64 `orm:"id"`
	Title     string
	Published time.Time

	// Tags are plain strings kept in a set.
	Tags []string `orm:"kind=set,column=tag"`
	// Chapters are embedded values kept in order.
	Chapters []Chapter `orm:"kind=list"`
	// Reviews are owned by the review table and loaded eagerly.
	Reviews []*Review `orm:"inverse,fetch=join"`
	// Authors are shared with other books.
	Authors []*Author `orm:"many-to-many,kind=set"`
	// Attachments may point at any attachable entity.
	Attachments []Attachment
	// Ratings maps a reviewer handle to a score.
	Ratings map[string]Rating
	// Editions lists the printing years of the first editions.
	Editions [3]int

	internalNotes []string
}

// Chapter is a value type embedded in Book.
type Chapter struct {
	Title    string
	Subtitle *string
	Pages    int
}

// Review is an entity owned by exactly one book.
type Review struct {
	ID     int64 `orm:"id"`
	Body   string
	Rating Rating
}

// Author is an entity shared between books.
type Author struct {
	ID    int64 `orm:"id"`
	Name  string
	Books []*Book `orm:"many-to-many,inverse"`
}

// Attachment is implemented by entities that can be attached to a book.
type Attachment interface {
	AttachmentKind() string
}

// Cover is an attachable image.
type Cover struct {
	ID  int64 `orm:"id"`
	URL string
}

func (Cover) AttachmentKind() string { return "cover" }

// Rating is a score from 1 to 5.
type Rating int

// Notes exposes the unexported notes so the field is used.
func (b *Book) Notes() []string { return b.internalNotes }
