// Package key interns the names of HTML attributes and CSS properties.
//
// A Key[T] is an immutable, type-tagged identifier. Keys are created through
// Attribute and Property, which memoize by (kind, name, T): asking twice
// returns the same pointer. The registry lives for the whole process; the key
// space is the finite set of HTML and CSS names.
//
// An Entry[T] pairs a key with the Codec that turns a typed value into the
// string the DOM expects. Entries are declared once as package variables in
// the attr and css packages and shared freely:
//
//	var Cols = key.NewAttr("cols", key.Stringer[attr.Count])
package key
