// Package pathexpr models path expressions over document value trees.
//
// A path expression is an ordered, immutable list of legs. Each leg is one
// navigation step: an object key access (literal or any-key wildcard), an
// array index access (literal or any-index wildcard), or a recursive-descent
// double wildcard that matches the current node and every descendant.
//
// Expressions are built once, through New or an external parser, and then
// consumed read-only, possibly many times against many values. Consuming a
// leg with PopOneLeg yields a shortened view sharing the backing leg list;
// the original expression is never mutated, so views can be fanned out
// across recursive branches safely.
package pathexpr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/meloir/jex/errs"
)

// LegType identifies the navigation step a Leg performs.
type LegType uint8

const (
	LegKey            LegType = iota + 1 // object key access
	LegIndex                             // array index access
	LegDoubleWildcard                    // recursive descent
)

func (t LegType) String() string {
	switch t {
	case LegKey:
		return "key"
	case LegIndex:
		return "index"
	case LegDoubleWildcard:
		return "doubleWildcard"
	default:
		return "unknown"
	}
}

// Flag is the informational wildcard-presence summary carried by an
// expression. It is derived at construction, propagated unchanged through
// views, and never consulted for matching correctness.
type Flag uint8

const (
	// FlagContainsWildcard is set when any leg carries an any-key or
	// any-index wildcard.
	FlagContainsWildcard Flag = 0x01
	// FlagContainsDoubleWildcard is set when any leg is a recursive-descent
	// double wildcard.
	FlagContainsDoubleWildcard Flag = 0x02
)

// Has reports whether every bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Leg is a single navigation step. The zero Leg is invalid and rejected by
// New.
type Leg struct {
	key      string
	index    int
	typ      LegType
	wildcard bool
}

// Key returns a leg accessing the object member named key.
func Key(key string) Leg {
	return Leg{typ: LegKey, key: key}
}

// AnyKey returns a leg matching every object member at one level.
func AnyKey() Leg {
	return Leg{typ: LegKey, wildcard: true}
}

// Index returns a leg accessing the array element at index. Negative
// indexes are rejected by New.
func Index(index int) Leg {
	return Leg{typ: LegIndex, index: index}
}

// AnyIndex returns a leg matching every array element at one level.
func AnyIndex() Leg {
	return Leg{typ: LegIndex, wildcard: true}
}

// DoubleWildcard returns a recursive-descent leg matching the current node
// and all descendants at any depth.
func DoubleWildcard() Leg {
	return Leg{typ: LegDoubleWildcard}
}

// Type returns the leg's navigation type.
func (l Leg) Type() LegType {
	return l.typ
}

// Key returns the literal key of a key leg. It is empty for wildcard key
// legs and for other leg types.
func (l Leg) Key() string {
	return l.key
}

// Index returns the literal index of an index leg. It is zero for wildcard
// index legs and for other leg types.
func (l Leg) Index() int {
	return l.index
}

// IsWildcard reports whether the leg is an any-key or any-index wildcard.
func (l Leg) IsWildcard() bool {
	return l.wildcard
}

func (l Leg) String() string {
	switch l.typ {
	case LegKey:
		if l.wildcard {
			return ".*"
		}
		return "." + l.key
	case LegIndex:
		if l.wildcard {
			return "[*]"
		}
		return "[" + strconv.Itoa(l.index) + "]"
	case LegDoubleWildcard:
		return "**"
	default:
		return "<invalid>"
	}
}

func (l Leg) validate() error {
	switch l.typ {
	case LegKey, LegDoubleWildcard:
		return nil
	case LegIndex:
		if !l.wildcard && l.index < 0 {
			return fmt.Errorf("%w: negative index %d", errs.ErrInvalidPathLeg, l.index)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown leg type %d", errs.ErrInvalidPathLeg, l.typ)
	}
}

// flagsOf derives the informational flag summary from a leg list.
func flagsOf(legs []Leg) Flag {
	var flags Flag
	for _, leg := range legs {
		if leg.wildcard {
			flags |= FlagContainsWildcard
		}
		if leg.typ == LegDoubleWildcard {
			flags |= FlagContainsDoubleWildcard
		}
	}

	return flags
}

// PathExpression is an immutable ordered list of legs plus its flag
// summary. The zero PathExpression has no legs and matches the subject
// value itself.
type PathExpression struct {
	legs  []Leg
	flags Flag
}

// New builds a PathExpression from legs, validating each leg and deriving
// the flag summary. The leg slice is copied; the caller may reuse it.
func New(legs ...Leg) (PathExpression, error) {
	for i, leg := range legs {
		if err := leg.validate(); err != nil {
			return PathExpression{}, fmt.Errorf("leg %d: %w", i, err)
		}
	}

	return PathExpression{
		legs:  slices.Clone(legs),
		flags: flagsOf(legs),
	}, nil
}

// MustNew is like New but panics on an invalid leg. It simplifies
// expressions built from literals.
func MustNew(legs ...Leg) PathExpression {
	expr, err := New(legs...)
	if err != nil {
		panic(err)
	}

	return expr
}

// NewWithFlags builds a PathExpression carrying a caller-supplied flag
// summary verbatim, for expressions arriving from an external parser that
// computed its own flags. The legs are still validated; the flags are not
// checked against them.
func NewWithFlags(flags Flag, legs ...Leg) (PathExpression, error) {
	expr, err := New(legs...)
	if err != nil {
		return PathExpression{}, err
	}
	expr.flags = flags

	return expr, nil
}

// Len returns the number of remaining legs.
func (p PathExpression) Len() int {
	return len(p.legs)
}

// IsEmpty reports whether no legs remain.
func (p PathExpression) IsEmpty() bool {
	return len(p.legs) == 0
}

// Flags returns the informational flag summary. Views created by PopOneLeg
// carry the originating expression's flags unchanged.
func (p PathExpression) Flags() Flag {
	return p.flags
}

// Leg returns the leg at position i. It panics if i is out of range.
func (p PathExpression) Leg(i int) Leg {
	return p.legs[i]
}

// Legs returns a copy of the remaining legs.
func (p PathExpression) Legs() []Leg {
	return slices.Clone(p.legs)
}

// PopOneLeg returns the first leg and a shortened view of the expression
// without it. The view shares the backing leg storage and carries the same
// flags; p itself is unchanged. Popping an empty expression returns the
// zero Leg and p.
func (p PathExpression) PopOneLeg() (Leg, PathExpression) {
	if len(p.legs) == 0 {
		return Leg{}, p
	}

	return p.legs[0], PathExpression{legs: p.legs[1:], flags: p.flags}
}

// String renders the expression in a dollar-rooted textual form such as
// "$.store[0]**.price". The rendering is informational; this package never
// parses it back.
func (p PathExpression) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, leg := range p.legs {
		sb.WriteString(leg.String())
	}

	return sb.String()
}
