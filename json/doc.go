// Package json implements the document value tree and the query engine
// over it.
//
// # Value Model
//
// Value is a closed tagged union over seven kinds: Null, Boolean, Integer,
// Double, String, Array and Object. Trees are acyclic, built through
// constructors, and treated as immutable afterwards. Objects keep their
// members sorted by key in ascending byte order, so wildcard traversal,
// recursive descent, serialization and Keys all observe one deterministic
// order with no separate sorting step.
//
// # Extraction
//
// Extract and ExtractAll run path expressions (package pathexpr) against a
// value. Matching is depth-first: index legs auto-wrap non-arrays as
// one-element arrays, key legs apply to objects only, and the double
// wildcard matches the current node and every descendant. Structural
// mismatches are "no match", never an error, and every match is returned
// as a deep copy.
//
// # Unquote
//
// UnquoteString decodes backslash-escaped text under a fixed 4-hex-digit
// unicode-escape dialect. Value.Unquote applies it to String values and
// returns the canonical text form for everything else.
//
// # Concurrency
//
// All operations are pure over their inputs: no mutation, no locking, no
// background work. Values and expressions may be shared freely across
// goroutines as long as they are not mutated during a call.
package json
