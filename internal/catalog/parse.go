package catalog

import (
	"fmt"
	"os"

	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"
)

// LoadCatalog reads and parses a targets.json file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target catalog: %w", err)
	}
	return ParseCatalog(src, path)
}

// ParseCatalog parses the raw contents of a targets.json document into a
// Catalog. The filename is used for error reporting only.
//
// The document must be a JSON object mapping target names to definition
// objects. Each definition's "inherits" key must be a list of strings and
// its "public" key a boolean; every other key lands in the definition's
// attribute bag unchanged. Catalogs whose inheritance graph contains a
// cycle are rejected. References to undefined parents are NOT rejected
// here; they surface as a DanglingParentError when the broken lineage is
// resolved.
func ParseCatalog(src []byte, filename string) (*Catalog, error) {
	file, diags := hcljson.Parse(src, filename)
	if diags.HasErrors() {
		return nil, &MalformedCatalogError{Filename: filename, Err: diags}
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &MalformedCatalogError{Filename: filename, Err: diags}
	}

	defs := make(map[string]*Definition, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, &MalformedCatalogError{Filename: filename, Err: diags}
		}

		def, err := newDefinition(name, val)
		if err != nil {
			return nil, &MalformedCatalogError{Filename: filename, Err: err}
		}
		defs[name] = def
	}

	c := &Catalog{defs: defs}
	if err := c.detectCycles(); err != nil {
		return nil, &MalformedCatalogError{Filename: filename, Err: err}
	}

	return c, nil
}

// newDefinition converts one raw target value into a typed Definition,
// splitting the structural keys out of the attribute bag.
func newDefinition(name string, val cty.Value) (*Definition, error) {
	if !val.Type().IsObjectType() {
		return nil, fmt.Errorf("target %q: definition must be an object, got %s", name, val.Type().FriendlyName())
	}

	def := &Definition{
		Name:       name,
		Public:     true,
		Attributes: make(map[string]cty.Value),
	}

	for key, v := range val.AsValueMap() {
		switch key {
		case inheritsKey:
			parents, err := stringList(v)
			if err != nil {
				return nil, fmt.Errorf("target %q: %q must be a list of target names: %w", name, inheritsKey, err)
			}
			def.Inherits = parents
		case publicKey:
			if v.Type() != cty.Bool {
				return nil, fmt.Errorf("target %q: %q must be a boolean, got %s", name, publicKey, v.Type().FriendlyName())
			}
			def.Public = v.True()
		default:
			if isAccumulating(key) {
				if _, err := stringList(v); err != nil {
					return nil, fmt.Errorf("target %q: accumulating attribute %q must be a list of strings: %w", name, key, err)
				}
			}
			def.Attributes[key] = v
		}
	}

	return def, nil
}

// stringList converts a cty list or tuple of strings into a Go slice.
func stringList(val cty.Value) ([]string, error) {
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("expected a list, got %s", ty.FriendlyName())
	}

	elems := val.AsValueSlice()
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("expected a string element, got %s", elem.Type().FriendlyName())
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}

// detectCycles checks the inheritance graph for cycles using a classic
// depth-first search with three node sets:
//
//	permanent: fully visited and known not to be part of a cycle.
//	temporary: currently on the recursion stack.
//	unvisited: everything else.
//
// Parents that are not defined in the catalog are skipped here; dangling
// references are a resolution-time concern.
func (c *Catalog) detectCycles() error {
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(def *Definition) error
	visit = func(def *Definition) error {
		if permanent[def.Name] {
			return nil
		}
		if temporary[def.Name] {
			return &InheritanceCycleError{Target: def.Name}
		}

		temporary[def.Name] = true

		for _, parent := range def.Inherits {
			parentDef, ok := c.defs[parent]
			if !ok {
				continue
			}
			if err := visit(parentDef); err != nil {
				return err
			}
		}

		delete(temporary, def.Name)
		permanent[def.Name] = true

		return nil
	}

	for _, def := range c.defs {
		if !permanent[def.Name] {
			if err := visit(def); err != nil {
				return err
			}
		}
	}

	return nil
}
