package catalog

import (
	"errors"
	"fmt"
)

// ErrTargetNotFound is returned by Resolve when the requested target name
// is not present in the catalog. A target whose definition sets
// "public": false produces the same error, deliberately: callers must not
// be able to distinguish a private target from a missing one.
var ErrTargetNotFound = errors.New("target not found in catalog")

// MalformedCatalogError indicates the raw input could not be parsed into
// a valid catalog: invalid JSON, a document that is not an object of
// objects, or structural keys of the wrong type.
type MalformedCatalogError struct {
	Filename string
	Err      error
}

// Error implements the error interface.
func (e *MalformedCatalogError) Error() string {
	return fmt.Sprintf("malformed target catalog %s: %s", e.Filename, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *MalformedCatalogError) Unwrap() error {
	return e.Err
}

// DanglingParentError indicates a definition's "inherits" list names a
// parent that does not exist in the catalog. It is reported at resolution
// time, when the broken lineage is actually walked, so a catalog with an
// unrelated dangling reference still resolves every intact target.
type DanglingParentError struct {
	Target string
	Parent string
}

// Error implements the error interface.
func (e *DanglingParentError) Error() string {
	return fmt.Sprintf("target %q inherits from %q, which is not defined in the catalog", e.Target, e.Parent)
}

// InheritanceCycleError indicates the inheritance graph contains a cycle.
// Cyclic catalogs are rejected at parse time; walking one would never
// terminate.
type InheritanceCycleError struct {
	Target string
}

// Error implements the error interface.
func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf("inheritance cycle detected involving target %q", e.Target)
}
