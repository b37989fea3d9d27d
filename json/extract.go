package json

import "github.com/meloir/jex/pathexpr"

// Extract runs the path expressions against the value, in order, and
// aggregates their matches.
//
// The second result is false when no expression matched anything. When
// exactly one expression was supplied and it produced exactly one match,
// that value is returned unwrapped; in every other case the matches are
// returned as an Array in combined order. The unwrap rule applies uniformly
// whether the single match came from a literal path or from a wildcard that
// happened to match once.
//
// Extract never fails: structural mismatches (wrong node kind for a leg,
// missing key, out-of-range index) are simply "no match". Results are deep
// copies and share no storage with the subject value.
//
// Example:
//
//	v, _ := decode.JSON(`{"a": {"b": [1, 2]}}`)
//	expr := pathexpr.MustNew(pathexpr.Key("a"), pathexpr.Key("b"), pathexpr.Index(1))
//	got, ok := v.Extract(expr) // Integer(2), true
func (v Value) Extract(exprs ...pathexpr.PathExpression) (Value, bool) {
	matches := v.ExtractAll(exprs...)
	if len(matches) == 0 {
		return Value{}, false
	}

	if len(exprs) == 1 && len(matches) == 1 {
		return matches[0], true
	}

	return Value{kind: KindArray, arr: matches}, true
}

// ExtractAll returns the ordered concatenation of every match of every
// expression, duplicates preserved. An empty expression list yields nil.
// Each match is a deep copy of the matched subtree.
func (v Value) ExtractAll(exprs ...pathexpr.PathExpression) []Value {
	var matches []Value
	for _, expr := range exprs {
		matches = v.appendMatches(matches, expr)
	}

	return matches
}

// appendMatches is the depth-first matcher. Each call either consumes the
// first leg of expr or descends to a strictly smaller subtree, so it
// terminates on any finite tree.
func (v Value) appendMatches(dst []Value, expr pathexpr.PathExpression) []Value {
	if expr.IsEmpty() {
		return append(dst, v.Clone())
	}

	leg, rest := expr.PopOneLeg()
	switch leg.Type() {
	case pathexpr.LegIndex:
		if v.kind != KindArray {
			// Auto-wrap: a non-array is addressable as a one-element array,
			// so index 0 and the any-index wildcard reach the value itself.
			if leg.IsWildcard() || leg.Index() == 0 {
				return v.appendMatches(dst, rest)
			}

			return dst
		}
		if leg.IsWildcard() {
			for _, elem := range v.arr {
				dst = elem.appendMatches(dst, rest)
			}
		} else if i := leg.Index(); i < len(v.arr) {
			dst = v.arr[i].appendMatches(dst, rest)
		}
	case pathexpr.LegKey:
		if v.kind != KindObject {
			return dst
		}
		if leg.IsWildcard() {
			for _, m := range v.obj {
				dst = m.Value.appendMatches(dst, rest)
			}
		} else if i, ok := findMember(v.obj, leg.Key()); ok {
			dst = v.obj[i].Value.appendMatches(dst, rest)
		}
	case pathexpr.LegDoubleWildcard:
		// Stop here: match with the leg consumed.
		dst = v.appendMatches(dst, rest)

		// Descend: match every child against the full expression, array
		// elements in order, object values in ascending key order.
		switch v.kind {
		case KindArray:
			for _, elem := range v.arr {
				dst = elem.appendMatches(dst, expr)
			}
		case KindObject:
			for _, m := range v.obj {
				dst = m.Value.appendMatches(dst, expr)
			}
		}
	}

	return dst
}
