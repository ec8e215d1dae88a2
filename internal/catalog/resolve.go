package catalog

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Resolved is the flattened attribute set for one target: every
// overriding attribute, every accumulating attribute with its modifiers
// applied, and the target's label set. The structural "inherits" and
// "public" keys and all "_add"/"_remove" modifier keys are absent.
type Resolved struct {
	Attributes map[string]cty.Value
	Labels     []string
}

// Resolve computes the flattened attribute set for the named target.
//
// Every call recomputes the result from scratch; nothing is cached and
// the catalog is never mutated, so concurrent calls are safe.
//
// Returns ErrTargetNotFound when the name is absent from the catalog or
// the target is not public, and a DanglingParentError when the target's
// lineage references an undefined parent.
func (c *Catalog) Resolve(name string) (*Resolved, error) {
	def, ok := c.defs[name]
	if !ok || !def.Public {
		return nil, fmt.Errorf("%q: %w", name, ErrTargetNotFound)
	}

	overrideOrder, err := c.overrideOrder(name)
	if err != nil {
		return nil, err
	}
	accumulateOrder, err := c.accumulateOrder(name)
	if err != nil {
		return nil, err
	}

	attributes := mergeOverrides(overrideOrder)
	accumulated, err := mergeAccumulating(accumulateOrder)
	if err != nil {
		return nil, err
	}

	// The key sets are disjoint: the override merger strips every
	// accumulating attribute name.
	for key, val := range accumulated {
		attributes[key] = val
	}

	return &Resolved{
		Attributes: attributes,
		Labels:     labelSet(overrideOrder, name),
	}, nil
}
