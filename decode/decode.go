// Package decode turns JSON text into value trees.
//
// It is the external-decoder collaborator of the engine: the json package
// never parses JSON text itself, it consumes trees built here (or
// programmatically). Parsing and validation are delegated to tidwall/gjson;
// this package only maps gjson results onto json.Value.
//
// Strings arrive fully unescaped per RFC 8259. Number tokens that are plain
// integer literals within int64 range become Integer values; every other
// number becomes Double. Duplicate object keys resolve last-one-wins.
package decode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/meloir/jex/errs"
	"github.com/meloir/jex/json"
)

// JSON parses one JSON document into a value tree. Malformed input fails
// with errs.ErrInvalidJSON.
func JSON(text string) (json.Value, error) {
	if !gjson.Valid(text) {
		return json.Value{}, fmt.Errorf("%w: %s", errs.ErrInvalidJSON, snippet(text))
	}

	return fromResult(gjson.Parse(text)), nil
}

// JSONBytes is JSON for a byte-slice input.
func JSONBytes(data []byte) (json.Value, error) {
	if !gjson.ValidBytes(data) {
		return json.Value{}, fmt.Errorf("%w: %s", errs.ErrInvalidJSON, snippet(string(data)))
	}

	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(result gjson.Result) json.Value {
	switch {
	case result.Type == gjson.Null:
		return json.Null()
	case result.Type == gjson.False:
		return json.Boolean(false)
	case result.Type == gjson.True:
		return json.Boolean(true)
	case result.Type == gjson.Number:
		return numberValue(result)
	case result.Type == gjson.String:
		return json.String(result.Str)
	case result.IsArray():
		var elems []json.Value
		result.ForEach(func(_, elem gjson.Result) bool {
			elems = append(elems, fromResult(elem))
			return true
		})

		return json.Array(elems...)
	case result.IsObject():
		var members []json.Member
		result.ForEach(func(key, value gjson.Result) bool {
			members = append(members, json.Member{Key: key.Str, Value: fromResult(value)})
			return true
		})

		return json.Object(members...)
	default:
		return json.Null()
	}
}

// numberValue keeps plain integer tokens exact and sends everything else
// through float64. A token with a fraction, an exponent, or a magnitude
// beyond int64 becomes a Double.
func numberValue(result gjson.Result) json.Value {
	raw := result.Raw
	if !strings.ContainsAny(raw, ".eE") {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return json.Integer(n)
		}
	}

	return json.Double(result.Num)
}

// snippet trims input text down to an error-message-sized excerpt.
func snippet(text string) string {
	const max = 32

	text = strings.TrimSpace(text)
	if text == "" {
		return "empty input"
	}
	if len(text) > max {
		return text[:max] + "..."
	}

	return text
}
