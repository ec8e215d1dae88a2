package catalog

import "sort"

// labelSet derives a target's labels from its ancestor order list: the
// target's own name plus every name appearing in any ancestor's inherits
// list. Returned sorted so the set has a stable rendering.
func labelSet(order []*Definition, name string) []string {
	set := map[string]struct{}{name: {}}
	for _, def := range order {
		for _, parent := range def.Inherits {
			set[parent] = struct{}{}
		}
	}

	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
