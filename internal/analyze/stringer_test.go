package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeStringer_TypeString(t *testing.T) {
	graph := loadLibrary(t)
	stringer := NewTypeStringer()

	book := graph.GetType(TypeID{PkgPath: libraryPkg, Name: "Book"})
	require.NotNil(t, book)

	tests := map[string]string{
		"Tags":        "[]string",
		"Chapters":    "[]Chapter",
		"Reviews":     "[]*Review",
		"Attachments": "[]Attachment",
		"Ratings":     "map[string]Rating",
		"Editions":    "[3]int",
		"Published":   "time.Time",
	}

	for field, want := range tests {
		f := fieldNamed(book, field)
		require.NotNil(t, f, field)
		assert.Equal(t, want, stringer.TypeString(f.Type), field)
	}

	assert.Equal(t, "<nil>", stringer.TypeString(nil))
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "unknown", TypeKind(99).String())
}
