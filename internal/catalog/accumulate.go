package catalog

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// mergeAccumulating computes the effective value of every accumulating
// attribute across a hierarchy.
//
// For each attribute X, a single left-to-right scan of the order list
// collects:
//
//   - the base value: the first bare "X" declaration encountered (only
//     one target in a well-formed hierarchy declares the base);
//   - the union of every ancestor's "X_add" contributions;
//   - the union of every ancestor's "X_remove" entries.
//
// The effective value is base plus adds, minus every element matched by a
// remove entry. Attributes with no base and no adds anywhere in the
// hierarchy are omitted entirely; an attribute that did appear but was
// emptied by removals yields an empty list.
func mergeAccumulating(order []*Definition) (map[string]cty.Value, error) {
	merged := make(map[string]cty.Value)

	for _, attr := range AccumulatingAttributes {
		var base, adds, removes []string
		baseSeen := false

		for _, def := range order {
			if val, ok := def.Attributes[attr]; ok && !baseSeen {
				elems, err := stringList(val)
				if err != nil {
					return nil, fmt.Errorf("target %q, attribute %q: %w", def.Name, attr, err)
				}
				base = elems
				baseSeen = true
			}
			if val, ok := def.Attributes[attr+addSuffix]; ok {
				elems, err := stringList(val)
				if err != nil {
					return nil, fmt.Errorf("target %q, attribute %q: %w", def.Name, attr+addSuffix, err)
				}
				adds = append(adds, elems...)
			}
			if val, ok := def.Attributes[attr+removeSuffix]; ok {
				elems, err := stringList(val)
				if err != nil {
					return nil, fmt.Errorf("target %q, attribute %q: %w", def.Name, attr+removeSuffix, err)
				}
				removes = append(removes, elems...)
			}
		}

		if !baseSeen && len(adds) == 0 {
			continue
		}

		elements := unionElements(base, adds)
		elements = removeElements(elements, removes)
		merged[attr] = listValue(elements)
	}

	return merged, nil
}

// unionElements appends the add-list entries to the base value,
// preserving first-occurrence order and skipping duplicates.
func unionElements(base, adds []string) []string {
	seen := make(map[string]bool, len(base)+len(adds))
	out := make([]string, 0, len(base)+len(adds))
	for _, elem := range base {
		if !seen[elem] {
			seen[elem] = true
			out = append(out, elem)
		}
	}
	for _, elem := range adds {
		if !seen[elem] {
			seen[elem] = true
			out = append(out, elem)
		}
	}
	return out
}

// removeElements filters out every element matched by any remove entry.
func removeElements(elements, removes []string) []string {
	if len(removes) == 0 {
		return elements
	}

	kept := elements[:0:0]
	for _, elem := range elements {
		matched := false
		for _, remove := range removes {
			if elementMatches(remove, elem) {
				matched = true
				break
			}
		}
		if !matched {
			kept = append(kept, elem)
		}
	}
	return kept
}

// elementMatches reports whether a remove entry matches a candidate
// element. An entry matches on exact equality, or when the candidate has
// the form "entry=<anything>". The prefix form removes a configuration
// macro regardless of the value assigned to it, e.g. the entry "FEATURE"
// matches the candidate "FEATURE=5".
func elementMatches(remove, element string) bool {
	return element == remove || strings.HasPrefix(element, remove+"=")
}

// listValue builds the cty list for an effective accumulating value.
func listValue(elements []string) cty.Value {
	if len(elements) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(elements))
	for i, elem := range elements {
		vals[i] = cty.StringVal(elem)
	}
	return cty.ListVal(vals)
}
