package catalog

import "github.com/zclconf/go-cty/cty"

// mergeOverrides flattens the overriding attributes of a hierarchy.
//
// The order list starts with the target itself and ends with its most
// distant ancestor, so the fold runs right to left: each definition
// closer to the target overwrites keys already set by a more distant
// one. Accumulating attributes and their modifier keys are stripped from
// the result; they belong to the accumulating merger.
func mergeOverrides(order []*Definition) map[string]cty.Value {
	merged := make(map[string]cty.Value)
	for i := len(order) - 1; i >= 0; i-- {
		for key, val := range order[i].Attributes {
			merged[key] = val
		}
	}

	for _, attr := range AccumulatingAttributes {
		delete(merged, attr)
		delete(merged, attr+addSuffix)
		delete(merged, attr+removeSuffix)
	}

	return merged
}
