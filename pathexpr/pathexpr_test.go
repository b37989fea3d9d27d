package pathexpr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meloir/jex/errs"
)

func TestNew_DerivesFlags(t *testing.T) {
	tests := []struct {
		name string
		legs []Leg
		want Flag
	}{
		{"no legs", nil, 0},
		{"literal only", []Leg{Key("a"), Index(0)}, 0},
		{"any key", []Leg{AnyKey()}, FlagContainsWildcard},
		{"any index", []Leg{Key("a"), AnyIndex()}, FlagContainsWildcard},
		{"double wildcard", []Leg{DoubleWildcard(), Key("c")}, FlagContainsDoubleWildcard},
		{"both", []Leg{DoubleWildcard(), AnyKey()}, FlagContainsWildcard | FlagContainsDoubleWildcard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := New(tt.legs...)
			require.NoError(t, err)
			require.Equal(t, tt.want, expr.Flags())
			require.Equal(t, len(tt.legs), expr.Len())
		})
	}
}

func TestNew_RejectsNegativeIndex(t *testing.T) {
	_, err := New(Key("a"), Index(-1))
	require.ErrorIs(t, err, errs.ErrInvalidPathLeg)
}

func TestNew_RejectsZeroLeg(t *testing.T) {
	_, err := New(Leg{})
	require.ErrorIs(t, err, errs.ErrInvalidPathLeg)
}

func TestNew_CopiesLegSlice(t *testing.T) {
	legs := []Leg{Key("a"), Key("b")}
	expr, err := New(legs...)
	require.NoError(t, err)

	legs[0] = Key("mutated")
	require.Equal(t, "a", expr.Leg(0).Key())
}

func TestMustNew_PanicsOnInvalidLeg(t *testing.T) {
	require.Panics(t, func() {
		MustNew(Index(-5))
	})
}

func TestNewWithFlags_PreservedVerbatim(t *testing.T) {
	// Flags arriving from an external parser are carried as-is, even when
	// they disagree with what the legs would derive.
	expr, err := NewWithFlags(FlagContainsDoubleWildcard, Key("a"))
	require.NoError(t, err)
	require.Equal(t, FlagContainsDoubleWildcard, expr.Flags())

	_, view := expr.PopOneLeg()
	require.Equal(t, FlagContainsDoubleWildcard, view.Flags())
}

func TestPathExpression_PopOneLeg(t *testing.T) {
	expr := MustNew(Key("a"), Index(3), DoubleWildcard())

	leg, rest := expr.PopOneLeg()
	require.Equal(t, LegKey, leg.Type())
	require.Equal(t, "a", leg.Key())
	require.Equal(t, 2, rest.Len())

	// The original is untouched.
	require.Equal(t, 3, expr.Len())
	require.Equal(t, "a", expr.Leg(0).Key())

	leg, rest = rest.PopOneLeg()
	require.Equal(t, LegIndex, leg.Type())
	require.Equal(t, 3, leg.Index())

	leg, rest = rest.PopOneLeg()
	require.Equal(t, LegDoubleWildcard, leg.Type())
	require.True(t, rest.IsEmpty())
}

func TestPathExpression_PopOneLeg_SharesStorage(t *testing.T) {
	expr := MustNew(Key("a"), Key("b"), Key("c"))

	_, view := expr.PopOneLeg()
	require.Equal(t, 2, view.Len())
	require.Same(t, &expr.legs[1], &view.legs[0])
}

func TestPathExpression_PopOneLeg_Empty(t *testing.T) {
	var expr PathExpression

	leg, rest := expr.PopOneLeg()
	require.Equal(t, LegType(0), leg.Type())
	require.True(t, rest.IsEmpty())
}

func TestPathExpression_PopOneLeg_PreservesFlags(t *testing.T) {
	expr := MustNew(DoubleWildcard(), Key("c"))
	want := expr.Flags()

	_, view := expr.PopOneLeg()
	// The view no longer contains a double wildcard leg, but the summary is
	// informational and travels unchanged.
	require.Equal(t, want, view.Flags())
}

func TestPathExpression_Legs_ReturnsCopy(t *testing.T) {
	expr := MustNew(Key("a"), Key("b"))

	legs := expr.Legs()
	legs[0] = Key("mutated")
	require.Equal(t, "a", expr.Leg(0).Key())
}

func TestPathExpression_String(t *testing.T) {
	tests := []struct {
		name string
		expr PathExpression
		want string
	}{
		{"empty", PathExpression{}, "$"},
		{"key chain", MustNew(Key("store"), Key("book")), "$.store.book"},
		{"index", MustNew(Key("a"), Index(2)), "$.a[2]"},
		{"wildcards", MustNew(AnyKey(), AnyIndex()), "$.*[*]"},
		{"double wildcard", MustNew(DoubleWildcard(), Key("c")), "$**.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestLeg_String(t *testing.T) {
	require.Equal(t, ".name", Key("name").String())
	require.Equal(t, ".*", AnyKey().String())
	require.Equal(t, "[7]", Index(7).String())
	require.Equal(t, "[*]", AnyIndex().String())
	require.Equal(t, "**", DoubleWildcard().String())
}

func TestLegType_String(t *testing.T) {
	require.Equal(t, "key", LegKey.String())
	require.Equal(t, "index", LegIndex.String())
	require.Equal(t, "doubleWildcard", LegDoubleWildcard.String())
	require.Equal(t, "unknown", LegType(99).String())
}
