package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// tuple builds a cty tuple of strings, the shape list attributes take
// when parsed from JSON.
func tuple(elems ...string) cty.Value {
	vals := make([]cty.Value, len(elems))
	for i, elem := range elems {
		vals[i] = cty.StringVal(elem)
	}
	return cty.TupleVal(vals)
}

// stringsList builds the cty list the accumulating merger emits.
func stringsList(elems ...string) cty.Value {
	if len(elems) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(elems))
	for i, elem := range elems {
		vals[i] = cty.StringVal(elem)
	}
	return cty.ListVal(vals)
}

func TestMergeAccumulating_BasicAdd(t *testing.T) {
	t.Parallel()

	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"attribute_1": cty.StringVal("something")}},
		{Name: "B", Attributes: map[string]cty.Value{"features_add": tuple("2", "3")}},
		{Name: "C", Attributes: map[string]cty.Value{"features": tuple("1")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	require.Contains(t, merged, "features")
	assert.True(t, merged["features"].RawEquals(stringsList("1", "2", "3")))
	assert.Len(t, merged, 1)
}

func TestMergeAccumulating_BasicRemove(t *testing.T) {
	t.Parallel()

	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"attribute_1": cty.StringVal("something")}},
		{Name: "B", Attributes: map[string]cty.Value{"features_remove": tuple("2", "3")}},
		{Name: "C", Attributes: map[string]cty.Value{"features": tuple("1", "2", "3")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	assert.True(t, merged["features"].RawEquals(stringsList("1")))
}

func TestMergeAccumulating_MultipleAttributes(t *testing.T) {
	t.Parallel()

	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"features_add": tuple("2", "3")}},
		{Name: "B", Attributes: map[string]cty.Value{"macros_remove": tuple("B", "C")}},
		{Name: "C", Attributes: map[string]cty.Value{"features": tuple("1")}},
		{Name: "D", Attributes: map[string]cty.Value{"macros": tuple("A", "B", "C")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	assert.True(t, merged["features"].RawEquals(stringsList("1", "2", "3")))
	assert.True(t, merged["macros"].RawEquals(stringsList("A")))
}

func TestMergeAccumulating_FirstBaseInScanWins(t *testing.T) {
	t.Parallel()

	// Two ancestors declare the bare attribute; the one found first in
	// the traversal order provides the base value.
	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"features": tuple("near")}},
		{Name: "B", Attributes: map[string]cty.Value{"features": tuple("far")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	assert.True(t, merged["features"].RawEquals(stringsList("near")))
}

func TestMergeAccumulating_PrefixRemoveEmptiesList(t *testing.T) {
	t.Parallel()

	// A remove entry matches a macro regardless of the value assigned to
	// it, and an attribute that appeared yields an empty list rather
	// than vanishing.
	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"macros_remove": tuple("FEATURE")}},
		{Name: "B", Attributes: map[string]cty.Value{"macros": tuple("FEATURE=1")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	require.Contains(t, merged, "macros")
	assert.True(t, merged["macros"].RawEquals(cty.ListValEmpty(cty.String)))
}

func TestMergeAccumulating_OmitsAttributesWithNoContribution(t *testing.T) {
	t.Parallel()

	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"attribute_1": cty.StringVal("something")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	assert.Empty(t, merged)
}

func TestMergeAccumulating_RemoveOnlyIsOmitted(t *testing.T) {
	t.Parallel()

	// A remove list with no base and no adds contributes nothing.
	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"features_remove": tuple("X")}},
	}

	merged, err := mergeAccumulating(order)
	require.NoError(t, err)

	assert.NotContains(t, merged, "features")
}

func TestElementMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		remove  string
		element string
		want    bool
	}{
		{"exact match", "SOMETHING", "SOMETHING", true},
		{"no match", "SOMETHING", "SOMETHING_ELSE", false},
		{"match with value argument", "SOMETHING", "SOMETHING=5", true},
		{"no match with value argument", "SOMETHING", "SOMETHING_DIFFERENT=5", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, elementMatches(tt.remove, tt.element))
		})
	}
}

func TestRemoveElements(t *testing.T) {
	t.Parallel()

	t.Run("literal entries", func(t *testing.T) {
		t.Parallel()
		got := removeElements([]string{"ONE", "TWO=2", "THREE"}, []string{"ONE", "THREE"})
		assert.Equal(t, []string{"TWO=2"}, got)
	})

	t.Run("prefix entry removes assigned macro", func(t *testing.T) {
		t.Parallel()
		got := removeElements([]string{"ONE", "TWO=2", "THREE"}, []string{"TWO"})
		assert.Equal(t, []string{"ONE", "THREE"}, got)
	})
}
