package catalog

// overrideOrder lists all ancestors of a target in overriding inheritance
// order: a depth-first, pre-order traversal starting at the target
// itself. Parents are pushed onto the front of the work queue in reverse
// declared order, so the first-declared parent's entire lineage is
// exhausted before the next sibling's lineage begins.
//
// A target reachable via several paths of a diamond appears once per
// path. The duplicates are intentional: the override merger folds the
// list right to left, which makes repeated identical entries harmless
// while preserving the first-declared-parent tie-break.
func (c *Catalog) overrideOrder(name string) ([]*Definition, error) {
	var order []*Definition

	queue := []*Definition{c.defs[name]}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for i := len(current.Inherits) - 1; i >= 0; i-- {
			parentName := current.Inherits[i]
			parent, ok := c.defs[parentName]
			if !ok {
				return nil, &DanglingParentError{Target: current.Name, Parent: parentName}
			}
			queue = append([]*Definition{parent}, queue...)
		}
	}

	return order, nil
}

// accumulateOrder lists all ancestors of a target in accumulating
// inheritance order: a breadth-first traversal starting at the target
// itself, then its direct parents in declared order, then their parents,
// level by level.
//
// The accumulating merge itself is order-independent, but this shape
// matches the label derivation and keeps the scan's first-match base
// value well defined.
func (c *Catalog) accumulateOrder(name string) ([]*Definition, error) {
	var order []*Definition

	queue := []*Definition{c.defs[name]}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for _, parentName := range current.Inherits {
			parent, ok := c.defs[parentName]
			if !ok {
				return nil, &DanglingParentError{Target: current.Name, Parent: parentName}
			}
			queue = append(queue, parent)
		}
	}

	return order, nil
}
