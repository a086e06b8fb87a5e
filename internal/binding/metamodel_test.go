package binding

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsSpec() (PluralAttributeSpec, ElementSpec) {
	return PluralAttributeSpec{Entity: "Book", Name: "tags", Collection: CollectionSet},
		ElementSpec{
			Nature:           NatureBasic,
			RelationalValues: []RelationalValueBinding{ColumnValue("tag", false)},
			Type:             &TypeDescriptor{ExplicitTypeName: "string"},
		}
}

func TestMetamodel_AddPluralAttribute(t *testing.T) {
	m := NewMetamodel(BuildOptions{})

	attr, elem := tagsSpec()
	tags, err := m.AddPluralAttribute(attr, elem)
	require.NoError(t, err)

	reviews, err := m.AddPluralAttribute(
		PluralAttributeSpec{Entity: "Book", Name: "reviews", Inverse: true, OrderBy: "posted_at desc"},
		ElementSpec{Nature: NatureOneToMany, RelationalValues: []RelationalValueBinding{}, ReferencedEntity: "Review", FetchMode: FetchJoin},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, AttributeID(0), tags.ID())
	assert.Equal(t, AttributeID(1), reviews.ID())
	assert.Equal(t, "Book.tags", tags.Role())
	assert.Equal(t, CollectionSet, tags.CollectionNature())
	assert.Equal(t, CollectionBag, reviews.CollectionNature())
	assert.True(t, reviews.IsInverse())
	assert.Equal(t, "posted_at desc", reviews.OrderBy())
	assert.Equal(t, []*PluralAttributeBinding{tags, reviews}, m.PluralAttributes())

	found, ok := m.Lookup("Book.reviews")
	require.True(t, ok)
	assert.Same(t, reviews, found)

	_, ok = m.Lookup("Book.authors")
	assert.False(t, ok)

	assert.Nil(t, m.PluralAttribute(5))
	assert.Nil(t, m.PluralAttribute(NoAttribute))
}

func TestMetamodel_OwnerIdentity(t *testing.T) {
	m := NewMetamodel(BuildOptions{})

	attr, elem := tagsSpec()
	tags, err := m.AddPluralAttribute(attr, elem)
	require.NoError(t, err)

	element := tags.ElementBinding()
	require.NotNil(t, element)
	assert.Equal(t, tags.ID(), element.Owner())

	for range 3 {
		owner, err := element.PluralAttributeBinding()
		require.NoError(t, err)
		assert.Same(t, tags, owner)
	}
}

func TestMetamodel_UnregisteredOwner(t *testing.T) {
	m := NewMetamodel(BuildOptions{})

	attr, elem := tagsSpec()
	e, err := newElementBinding(m, AttributeID(m.Len()), roleOf(attr.Entity, attr.Name), elem, BuildOptions{})
	require.NoError(t, err)

	_, err = e.PluralAttributeBinding()
	require.ErrorIs(t, err, ErrIllegalState)
	assert.Contains(t, err.Error(), "not registered")
}

func TestMetamodel_ConfigurationErrors(t *testing.T) {
	basic := ElementSpec{Nature: NatureBasic, RelationalValues: []RelationalValueBinding{ColumnValue("v", true)}}

	tests := []struct {
		name  string
		attr  PluralAttributeSpec
		elem  ElementSpec
		field string
	}{
		{"missing entity", PluralAttributeSpec{Name: "tags"}, basic, "entity"},
		{"missing name", PluralAttributeSpec{Entity: "Book"}, basic, "name"},
		{"bad collection", PluralAttributeSpec{Entity: "Book", Name: "x", Collection: CollectionNature(17)}, basic, "collection"},
		{"duplicate role", PluralAttributeSpec{Entity: "Book", Name: "tags"}, basic, "name"},
		{"inverse basic", PluralAttributeSpec{Entity: "Book", Name: "labels", Inverse: true}, basic, "inverse"},
		{"element error carries role", PluralAttributeSpec{Entity: "Book", Name: "notes"}, ElementSpec{Nature: NatureBasic}, "relational_values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetamodel(BuildOptions{})
			attr, elem := tagsSpec()
			_, err := m.AddPluralAttribute(attr, elem)
			require.NoError(t, err)

			p, err := m.AddPluralAttribute(tt.attr, tt.elem)
			assert.Nil(t, p)
			require.ErrorIs(t, err, ErrConfiguration)

			var cfg *ConfigurationError
			require.ErrorAs(t, err, &cfg)
			assert.Equal(t, tt.field, cfg.Field)
			assert.Equal(t, 1, m.Len(), "failed attributes are not registered")
		})
	}
}

func TestMetamodel_ElementErrorRole(t *testing.T) {
	m := NewMetamodel(BuildOptions{})

	_, err := m.AddPluralAttribute(PluralAttributeSpec{Entity: "Book", Name: "notes"}, ElementSpec{Nature: NatureBasic})

	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "Book.notes", cfg.Role)
}

func TestMetamodel_Seal(t *testing.T) {
	m := NewMetamodel(BuildOptions{})
	assert.False(t, m.Sealed())

	attr, elem := tagsSpec()
	_, err := m.AddPluralAttribute(attr, elem)
	require.NoError(t, err)

	m.Seal()
	assert.True(t, m.Sealed())

	_, err = m.AddPluralAttribute(PluralAttributeSpec{Entity: "Book", Name: "labels"}, elem)
	require.ErrorIs(t, err, ErrIllegalState)
	assert.Equal(t, 1, m.Len())
}

func TestMetamodel_EmptyValuePolicy(t *testing.T) {
	elem := ElementSpec{Nature: NatureBasic, RelationalValues: []RelationalValueBinding{}}

	_, err := NewMetamodel(BuildOptions{}).AddPluralAttribute(PluralAttributeSpec{Entity: "Book", Name: "tags"}, elem)
	require.ErrorIs(t, err, ErrConfiguration)

	p, err := NewMetamodel(BuildOptions{EmptyValues: EmptyValuesAllowed}).
		AddPluralAttribute(PluralAttributeSpec{Entity: "Book", Name: "tags"}, elem)
	require.NoError(t, err)
	assert.False(t, p.ElementBinding().IsNullable())
}

func TestMetamodel_ZeroValue(t *testing.T) {
	var m Metamodel

	attr, elem := tagsSpec()
	tags, err := m.AddPluralAttribute(attr, elem)
	require.NoError(t, err)

	_, err = m.AddPluralAttribute(attr, elem)
	require.ErrorIs(t, err, ErrConfiguration)

	found, ok := m.Lookup("Book.tags")
	require.True(t, ok)
	assert.Same(t, tags, found)

	_, err = m.AddPluralAttribute(
		PluralAttributeSpec{Entity: "Book", Name: "chapters"},
		ElementSpec{Nature: NatureAggregate, RelationalValues: []RelationalValueBinding{}},
	)
	require.ErrorIs(t, err, ErrConfiguration, "zero options reject empty aggregates")
}

func TestMetamodel_ConcurrentOwnerReads(t *testing.T) {
	m := NewMetamodel(BuildOptions{})

	for i := range 4 {
		_, err := m.AddPluralAttribute(
			PluralAttributeSpec{Entity: "Book", Name: fmt.Sprintf("labels%d", i)},
			ElementSpec{Nature: NatureBasic, RelationalValues: []RelationalValueBinding{ColumnValue("label", true)}},
		)
		require.NoError(t, err)
	}
	m.Seal()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				for _, p := range m.PluralAttributes() {
					owner, err := p.ElementBinding().PluralAttributeBinding()
					assert.NoError(t, err)
					assert.Same(t, p, owner)
					assert.Equal(t, p.ID(), p.ElementBinding().Owner())
				}
			}
		}()
	}
	wg.Wait()
}
