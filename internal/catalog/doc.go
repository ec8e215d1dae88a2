// Package catalog implements the target attribute inheritance resolver.
//
// A catalog is the parsed contents of a targets.json document: a mapping
// of target name to target definition. A definition may inherit from any
// number of parent definitions. Resolving a target flattens its entire
// ancestor hierarchy into a single attribute set using two distinct merge
// strategies:
//
//   - overriding attributes follow depth-first inheritance: the value
//     nearest the target wins, and on diamond ties the lineage of the
//     first-declared parent wins;
//   - accumulating attributes (a fixed set of list-valued names) are
//     combined set-wise across the whole hierarchy, honouring their
//     "_add" and "_remove" modifier keys.
//
// Resolution also derives the target's labels: the set of the target's
// own name plus every transitively inherited ancestor name. Labels drive
// conditional build rule selection downstream.
//
// Resolution is a pure function of the catalog and the target name. A
// Catalog is immutable after parsing, so concurrent resolutions are safe
// without locking.
package catalog
