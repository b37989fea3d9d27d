package decode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meloir/jex/errs"
	"github.com/meloir/jex/json"
)

func TestJSON_Scalars(t *testing.T) {
	tests := []struct {
		name string
		text string
		want json.Value
	}{
		{"null", `null`, json.Null()},
		{"true", `true`, json.Boolean(true)},
		{"false", `false`, json.Boolean(false)},
		{"integer", `2017`, json.Integer(2017)},
		{"negative integer", `-5`, json.Integer(-5)},
		{"negative zero literal", `-0`, json.Integer(0)},
		{"max int64", `9223372036854775807`, json.Integer(math.MaxInt64)},
		{"beyond int64 becomes double", `9223372036854775808`, json.Double(9.223372036854776e18)},
		{"fraction", `20.08`, json.Double(20.08)},
		{"exponent", `1e3`, json.Double(1000)},
		{"integer-valued fraction stays double", `2.0`, json.Double(2)},
		{"string", `"a1"`, json.String("a1")},
		{"empty string", `""`, json.String("")},
		{"escaped string arrives decoded", `"a\nb"`, json.String("a\nb")},
		{"unicode escape arrives decoded", `"\u597d"`, json.String("好")},
		{"multibyte passthrough", `"好"`, json.String("好")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := JSON(tt.text)
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want), "decoded %s, want %s", got, tt.want)
		})
	}
}

func TestJSON_Containers(t *testing.T) {
	got, err := JSON(`{"c": null, "a": {"b": [1, 2.5, "x", true]}}`)
	require.NoError(t, err)

	want := json.Object(
		json.Member{Key: "a", Value: json.Object(
			json.Member{Key: "b", Value: json.Array(
				json.Integer(1), json.Double(2.5), json.String("x"), json.Boolean(true),
			)},
		)},
		json.Member{Key: "c", Value: json.Null()},
	)
	require.True(t, got.Equal(want), "decoded %s, want %s", got, want)
}

func TestJSON_EmptyContainers(t *testing.T) {
	got, err := JSON(` [] `)
	require.NoError(t, err)
	require.Equal(t, json.KindArray, got.Kind())
	require.Zero(t, got.Len())

	got, err = JSON(` {} `)
	require.NoError(t, err)
	require.Equal(t, json.KindObject, got.Kind())
	require.Zero(t, got.Len())
}

func TestJSON_ObjectKeyOrder(t *testing.T) {
	got, err := JSON(`{"b": 1, "a": 2, "c": 3}`)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got.Keys())
}

func TestJSON_DuplicateKeysLastWins(t *testing.T) {
	got, err := JSON(`{"k": 1, "k": 2}`)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())

	v, ok := got.Member("k")
	require.True(t, ok)
	require.True(t, v.Equal(json.Integer(2)))
}

func TestJSON_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		`{"a":}`,
		"tru",
		"[1,]",
		`"unterminated`,
		"nul",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			_, err := JSON(text)
			require.ErrorIs(t, err, errs.ErrInvalidJSON)
		})
	}
}

func TestJSONBytes(t *testing.T) {
	got, err := JSONBytes([]byte(`{"a": "a1"}`))
	require.NoError(t, err)
	require.True(t, got.Equal(json.Object(json.Member{Key: "a", Value: json.String("a1")})))

	_, err = JSONBytes([]byte(`{"a":`))
	require.ErrorIs(t, err, errs.ErrInvalidJSON)
	_, err = JSONBytes(nil)
	require.ErrorIs(t, err, errs.ErrInvalidJSON)
}
