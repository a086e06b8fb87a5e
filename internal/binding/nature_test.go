package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNature_Flags(t *testing.T) {
	tests := []struct {
		nature      Nature
		association bool
		cascadeable bool
	}{
		{NatureBasic, false, false},
		{NatureAggregate, false, true},
		{NatureOneToMany, true, true},
		{NatureManyToMany, true, true},
		{NatureManyToAny, true, true},
	}

	require.Len(t, tests, len(Natures()), "every nature must be listed")

	for _, tt := range tests {
		t.Run(tt.nature.String(), func(t *testing.T) {
			assert.True(t, tt.nature.IsValid())
			assert.Equal(t, tt.association, tt.nature.IsAssociation())
			assert.Equal(t, tt.cascadeable, tt.nature.IsCascadeable())
		})
	}
}

func TestNature_NullAndUnknown(t *testing.T) {
	for _, n := range []Nature{0, Nature(NatureTotal), -1} {
		assert.False(t, n.IsValid(), "%d", int(n))
		assert.False(t, n.IsAssociation(), "%d", int(n))
		assert.False(t, n.IsCascadeable(), "%d", int(n))
	}

	assert.Equal(t, "Nature(0)", Nature(0).String())
}

func TestNatures(t *testing.T) {
	assert.Equal(t, []Nature{
		NatureBasic, NatureAggregate, NatureOneToMany, NatureManyToMany, NatureManyToAny,
	}, Natures())
}

func TestParseNature(t *testing.T) {
	tests := []struct {
		in   string
		want Nature
	}{
		{"basic", NatureBasic},
		{"AGGREGATE", NatureAggregate},
		{"one-to-many", NatureOneToMany},
		{"ONE_TO_MANY", NatureOneToMany},
		{" many_to_many ", NatureManyToMany},
		{"Many-To-Any", NatureManyToAny},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNature(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseNature("one-to-one")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one-to-one")

	_, err = ParseNature("")
	require.Error(t, err)
}

func TestFetchMode(t *testing.T) {
	m, err := ParseFetchMode("")
	require.NoError(t, err)
	assert.Equal(t, FetchSelect, m)

	m, err = ParseFetchMode("JOIN")
	require.NoError(t, err)
	assert.Equal(t, FetchJoin, m)
	assert.True(t, m.IsEager())

	m, err = ParseFetchMode("subselect")
	require.NoError(t, err)
	assert.Equal(t, FetchSubselect, m)
	assert.False(t, m.IsEager())

	_, err = ParseFetchMode("lazy")
	require.Error(t, err)

	assert.False(t, FetchMode(FetchModeTotal).IsValid())
	assert.Equal(t, "FetchMode(7)", FetchMode(7).String())
}

func TestCollectionNature(t *testing.T) {
	c, err := ParseCollectionNature("ID_BAG")
	require.NoError(t, err)
	assert.Equal(t, CollectionIDBag, c)
	assert.Equal(t, "idbag", c.String())

	c, err = ParseCollectionNature("")
	require.NoError(t, err)
	assert.Equal(t, CollectionBag, c)

	for _, c := range []CollectionNature{CollectionList, CollectionArray, CollectionMap} {
		assert.True(t, c.IsIndexed(), c.String())
	}

	for _, c := range []CollectionNature{CollectionBag, CollectionIDBag, CollectionSet} {
		assert.False(t, c.IsIndexed(), c.String())
	}

	_, err = ParseCollectionNature("vector")
	require.Error(t, err)
	assert.Equal(t, "CollectionNature(9)", CollectionNature(9).String())
}
