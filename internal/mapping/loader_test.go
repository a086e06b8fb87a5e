package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
entities:
  - name: Book
    collections:
      - name: tags
        element:
          nature: basic
          columns: tag
      - name: chapters
        kind: list
        order_by: position
        where: "deleted = false"
        element:
          nature: aggregate
          type:
            name: chapter
            go: Chapter
            params: {strict: "true"}
          columns:
            - {name: title, nullable: false}
            - subtitle
            - {formula: "upper(title)"}
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, CurrentVersion, mf.Version)
	assert.Equal(t, "associations", mf.Options.EmptyValues)
	require.Len(t, mf.Entities, 1)

	book := mf.Entities[0]
	assert.Equal(t, "Book", book.Name)
	require.Len(t, book.Collections, 2)

	// Defaults
	tags := book.Collections[0]
	assert.Equal(t, "bag", tags.Kind)
	assert.Equal(t, "select", tags.Element.Fetch)
	require.Len(t, tags.Element.Columns, 1)
	assert.Equal(t, "tag", tags.Element.Columns[0].Name)
	assert.True(t, *tags.Element.Columns[0].Nullable)
	assert.True(t, *tags.Element.Columns[0].Insertable)
	assert.True(t, *tags.Element.Columns[0].Updatable)

	chapters := book.Collections[1]
	assert.Equal(t, "list", chapters.Kind)
	assert.Equal(t, "position", chapters.OrderBy)
	assert.Equal(t, "deleted = false", chapters.Where)
	require.NotNil(t, chapters.Element.Type)
	assert.Equal(t, "chapter", chapters.Element.Type.Name)
	assert.Equal(t, "Chapter", chapters.Element.Type.Go)
	assert.Equal(t, map[string]string{"strict": "true"}, chapters.Element.Type.Params)

	cols := chapters.Element.Columns
	require.Len(t, cols, 3)
	assert.False(t, *cols[0].Nullable)
	assert.Equal(t, "subtitle", cols[1].Name)
	assert.True(t, *cols[1].Nullable)
	assert.Equal(t, "upper(title)", cols[2].Formula)
	assert.Nil(t, cols[2].Nullable)
	assert.False(t, *cols[2].Insertable)
	assert.False(t, *cols[2].Updatable)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("entities: [unclosed"))
	require.Error(t, err)

	_, err = Parse([]byte(`
entities:
  - name: Book
    collections:
      - name: tags
        element:
          columns: [[nested]]
`))
	require.Error(t, err)
}

func TestRelationalValues(t *testing.T) {
	mf, err := Parse([]byte(`
entities:
  - name: Book
    collections:
      - name: chapters
        element:
          nature: aggregate
          columns:
            - {name: title, nullable: false}
            - {formula: "upper(title)"}
`))
	require.NoError(t, err)

	values := mf.Entities[0].Collections[0].Element.Columns.RelationalValues()
	require.Len(t, values, 2)
	assert.Equal(t, "title", values[0].Column)
	assert.False(t, values[0].Nullable)
	assert.True(t, values[0].Insertable)
	assert.True(t, values[1].IsDerived())
	assert.False(t, values[1].Insertable)

	assert.NotNil(t, ColumnArray(nil).RelationalValues())
}

func TestLoadFile(t *testing.T) {
	mf, err := LoadFile(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)
	require.Len(t, mf.Entities, 3)
	assert.Len(t, mf.Entities[0].Collections, 5)

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	mf, err := LoadFile(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(mf, out))

	again, err := LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, mf, again)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "columns: tag\n", "plain columns use the shorthand")
}

func TestParseEmptyValuePolicy(t *testing.T) {
	for _, s := range []string{"", "associations", "allow", "REJECT"} {
		_, err := ParseEmptyValuePolicy(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseEmptyValuePolicy("sometimes")
	assert.Error(t, err)
}
