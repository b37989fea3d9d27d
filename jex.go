// Package jex provides path-based querying, text decoding, and binary
// packing for JSON-like document trees.
//
// A document is an immutable json.Value: a closed tagged union of Null,
// Boolean, Integer, Double, String, Array, and Object, with objects kept in
// ascending key order so enumeration is deterministic. Queries are
// pathexpr.PathExpression values: programmatic leg lists (keys, indexes,
// wildcards, recursive descent) consumed read-only by the extraction
// engine.
//
// # Core Features
//
//   - Depth-first extraction with auto-wrapped indexing, wildcard fan-out,
//     and recursive descent, aggregating matches across expressions
//   - MySQL-style unquote decoding of backslash-escaped text
//   - Canonical and strict-JSON text forms for every value
//   - Type-tagged binary codec plus a compressed, checksummed blob envelope
//     (None, Zstd, S2, LZ4)
//   - JSON text decoding delegated to tidwall/gjson behind the decode
//     package
//
// # Basic Usage
//
// Querying a parsed document:
//
//	import (
//	    "github.com/meloir/jex"
//	    "github.com/meloir/jex/pathexpr"
//	)
//
//	doc, _ := jex.ParseJSON(`{"a": {"b": [6, 18]}}`)
//
//	expr := pathexpr.MustNew(pathexpr.Key("a"), pathexpr.Key("b"), pathexpr.Index(1))
//	v, ok := jex.Extract(doc, expr)
//	if ok {
//	    fmt.Println(v) // 18
//	}
//
// Packing a document for storage:
//
//	data, _ := jex.Pack(doc, blob.WithCompression(format.CompressionS2))
//	doc, _ = jex.Unpack(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the json,
// pathexpr, decode, and blob packages, simplifying the most common use
// cases. For advanced usage and fine-grained control, use those packages
// directly.
package jex

import (
	"github.com/meloir/jex/blob"
	"github.com/meloir/jex/decode"
	"github.com/meloir/jex/json"
	"github.com/meloir/jex/pathexpr"
)

// Extract runs the path expressions against v and aggregates their matches.
//
// The second result is false when nothing matched. When exactly one
// expression is supplied and it produces exactly one match, that value is
// returned unwrapped; otherwise the matches are returned as an Array in
// combined order. Structural mismatches are never errors.
//
// Parameters:
//   - v: document to query
//   - exprs: path expressions, evaluated in order
//
// Returns:
//   - json.Value: the match, or an Array of matches
//   - bool: whether anything matched
func Extract(v json.Value, exprs ...pathexpr.PathExpression) (json.Value, bool) {
	return v.Extract(exprs...)
}

// ExtractAll returns the ordered concatenation of every match of every
// expression, duplicates preserved, each match a deep copy.
func ExtractAll(v json.Value, exprs ...pathexpr.PathExpression) []json.Value {
	return v.ExtractAll(exprs...)
}

// Unquote decodes v's text under the backslash-escape dialect: String
// values decode their stored text, every other kind returns its canonical
// text form unchanged.
func Unquote(v json.Value) (string, error) {
	return v.Unquote()
}

// UnquoteString decodes backslash-escaped text. See json.UnquoteString for
// the exact dialect.
func UnquoteString(s string) (string, error) {
	return json.UnquoteString(s)
}

// ParseJSON parses a JSON document into a value tree. Malformed input fails
// with errs.ErrInvalidJSON.
func ParseJSON(text string) (json.Value, error) {
	return decode.JSON(text)
}

// ParseJSONBytes is ParseJSON for a byte-slice input.
func ParseJSONBytes(data []byte) (json.Value, error) {
	return decode.JSONBytes(data)
}

// Pack encodes v and frames it as a blob for storage or transport.
//
// Available options:
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithoutChecksum()
func Pack(v json.Value, opts ...blob.Option) ([]byte, error) {
	return blob.Pack(v, opts...)
}

// Unpack parses a packed blob and decodes the document inside.
func Unpack(data []byte) (json.Value, error) {
	return blob.Unpack(data)
}
