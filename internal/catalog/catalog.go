package catalog

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// AccumulatingAttributes is the fixed set of attribute names whose values
// are list-valued and accumulate across the inheritance hierarchy instead
// of being overridden. For each name X the sibling keys "X_add" and
// "X_remove" act as modifiers and are consumed by the accumulating merger.
var AccumulatingAttributes = []string{
	"extra_labels",
	"macros",
	"device_has",
	"features",
	"components",
}

// Structural keys of a raw target definition. They steer resolution and
// never appear in a resolved attribute set.
const (
	inheritsKey = "inherits"
	publicKey   = "public"

	addSuffix    = "_add"
	removeSuffix = "_remove"
)

// Definition is a single named target definition from the catalog.
type Definition struct {
	// Name is the key of the definition in the enclosing catalog.
	Name string

	// Inherits lists the names of parent targets in declared order.
	Inherits []string

	// Public is the visibility flag. Private targets resolve exactly like
	// absent ones, so catalog contents cannot be probed.
	Public bool

	// Attributes is the raw attribute bag: every key of the definition
	// except the structural "inherits" and "public" keys. Accumulating
	// attributes and their modifier keys are still present here.
	Attributes map[string]cty.Value
}

// Catalog is a full parsed targets.json document. It is immutable after
// parsing; all resolution methods are read-only.
type Catalog struct {
	defs map[string]*Definition
}

// Len returns the number of target definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Names returns the names of all target definitions, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the raw definition for the given target name, along
// with whether it exists. Unlike Resolve, this does not honour the public
// flag; it is intended for tooling that inspects the catalog itself.
func (c *Catalog) Definition(name string) (*Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// isAccumulating reports whether key is an accumulating attribute name or
// one of its "_add"/"_remove" modifier keys.
func isAccumulating(key string) bool {
	for _, attr := range AccumulatingAttributes {
		if key == attr || key == attr+addSuffix || key == attr+removeSuffix {
			return true
		}
	}
	return false
}
