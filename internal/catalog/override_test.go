package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestMergeOverrides_ChildWins(t *testing.T) {
	t.Parallel()

	// The order list runs from the target to its most distant ancestor;
	// the value nearest the target must win.
	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{"k": cty.StringVal("a")}},
		{Name: "B", Attributes: map[string]cty.Value{"k": cty.StringVal("b"), "only_b": cty.True}},
		{Name: "C", Attributes: map[string]cty.Value{"k": cty.StringVal("c")}},
	}

	merged := mergeOverrides(order)

	require.Contains(t, merged, "k")
	assert.True(t, merged["k"].RawEquals(cty.StringVal("a")))
	assert.True(t, merged["only_b"].RawEquals(cty.True))
}

func TestMergeOverrides_StripsAccumulatingKeys(t *testing.T) {
	t.Parallel()

	order := []*Definition{
		{Name: "A", Attributes: map[string]cty.Value{
			"features":        cty.TupleVal([]cty.Value{cty.StringVal("x")}),
			"features_add":    cty.TupleVal([]cty.Value{cty.StringVal("y")}),
			"features_remove": cty.TupleVal([]cty.Value{cty.StringVal("x")}),
			"macros":          cty.TupleVal([]cty.Value{cty.StringVal("M")}),
			"core":            cty.StringVal("Cortex-M4"),
		}},
	}

	merged := mergeOverrides(order)

	for _, attr := range AccumulatingAttributes {
		assert.NotContains(t, merged, attr)
		assert.NotContains(t, merged, attr+"_add")
		assert.NotContains(t, merged, attr+"_remove")
	}
	assert.Contains(t, merged, "core")
}

func TestResolve_NearestAncestorWins(t *testing.T) {
	t.Parallel()

	// Linear chain A -> B -> C, each defining k with a distinct value.
	c := mustParse(t, `{
		"C": {"k": "from C"},
		"B": {"inherits": ["C"], "k": "from B"},
		"A": {"inherits": ["B"], "k": "from A"}
	}`)

	resolved, err := c.Resolve("A")
	require.NoError(t, err)

	assert.True(t, resolved.Attributes["k"].RawEquals(cty.StringVal("from A")))
}

func TestResolve_DiamondTieBreak(t *testing.T) {
	t.Parallel()

	// Both parents define k at the same distance; the first-declared
	// parent's lineage takes precedence.
	c := mustParse(t, `{
		"C": {"k": "from C"},
		"D": {"k": "from D"},
		"A": {"inherits": ["C", "D"]}
	}`)

	resolved, err := c.Resolve("A")
	require.NoError(t, err)

	assert.True(t, resolved.Attributes["k"].RawEquals(cty.StringVal("from C")))
}
