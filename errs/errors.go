// Package errs defines the sentinel errors shared across jex packages.
//
// Callers match them with errors.Is; failure sites wrap them with
// fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

// Escape decoder errors.
var (
	// ErrMalformedEscape indicates a truncated escape sequence: a trailing
	// backslash, or a \u escape with fewer than 4 characters remaining.
	ErrMalformedEscape = errors.New("malformed escape sequence")

	// ErrInvalidUnicodeEscape indicates a \u escape whose 4 characters are not
	// hex digits, or whose decoded value is not a valid scalar character.
	ErrInvalidUnicodeEscape = errors.New("invalid unicode escape")
)

// Path expression errors.
var (
	// ErrInvalidPathLeg indicates a leg that violates the path expression
	// model, such as a negative literal index.
	ErrInvalidPathLeg = errors.New("invalid path expression leg")
)

// Binary codec errors.
var (
	ErrInvalidTypeCode       = errors.New("invalid value type code")
	ErrTruncatedPayload      = errors.New("truncated payload")
	ErrTrailingBytes         = errors.New("unexpected trailing bytes")
	ErrInvalidObjectKeyOrder = errors.New("object keys not in ascending order")
	ErrMaxDepthExceeded      = errors.New("maximum nesting depth exceeded")
	ErrInvalidBooleanByte    = errors.New("invalid boolean payload byte")
)

// Blob envelope errors.
var (
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrDocumentTooLarge   = errors.New("document too large for blob format")
)

// Decoder adapter errors.
var (
	// ErrInvalidJSON indicates the input text is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON document")
)
