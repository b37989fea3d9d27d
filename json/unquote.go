package json

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/meloir/jex/errs"
)

// Unquote returns the decoded text of the value.
//
// String values are decoded with UnquoteString. Every other kind returns
// its canonical text form unmodified and never fails.
func (v Value) Unquote() (string, error) {
	if v.kind == KindString {
		return UnquoteString(v.str)
	}

	return v.String(), nil
}

// UnquoteString decodes backslash-escaped text, scanning left to right.
//
// Recognized escapes: \" \b \f \n \r \t \\ and \uXXXX with exactly four hex
// digits forming a 16-bit code point. The \t escape decodes to 0x0B. Any
// other escaped character is copied through with the backslash dropped.
// Unescaped characters pass through unchanged. Surrogate pairs are not
// combined across two \u escapes.
//
// Failures: a trailing backslash or a \u with fewer than four characters
// remaining wraps errs.ErrMalformedEscape; non-hex digits or a code point
// that is not a valid scalar character wraps errs.ErrInvalidUnicodeEscape.
func UnquoteString(s string) (string, error) {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			buf = append(buf, c)
			i++

			continue
		}

		i++
		if i >= len(s) {
			return "", fmt.Errorf("%w: incomplete escape at end of input", errs.ErrMalformedEscape)
		}

		switch s[i] {
		case '"':
			buf = append(buf, '"')
			i++
		case 'b':
			buf = append(buf, 0x08)
			i++
		case 'f':
			buf = append(buf, 0x0C)
			i++
		case 'n':
			buf = append(buf, 0x0A)
			i++
		case 'r':
			buf = append(buf, 0x0D)
			i++
		case 't':
			buf = append(buf, 0x0B)
			i++
		case '\\':
			buf = append(buf, '\\')
			i++
		case 'u':
			i++
			if len(s)-i < 4 {
				return "", fmt.Errorf("%w: \\u escape needs 4 hex digits, %d remain", errs.ErrMalformedEscape, len(s)-i)
			}
			r, err := decodeEscapedUnicode(s[i : i+4])
			if err != nil {
				return "", err
			}
			buf = utf8.AppendRune(buf, r)
			i += 4
		default:
			// Unknown escape: the character passes through, the backslash
			// is dropped.
			buf = append(buf, s[i])
			i++
		}
	}

	return string(buf), nil
}

// decodeEscapedUnicode decodes exactly four hex digits into a scalar
// character.
func decodeEscapedUnicode(hex string) (rune, error) {
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 4-digit hex number", errs.ErrInvalidUnicodeEscape, hex)
	}

	r := rune(u)
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w: U+%04X is not a valid scalar character", errs.ErrInvalidUnicodeEscape, u)
	}

	return r, nil
}
