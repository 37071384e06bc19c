package jsonh

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failures a Reader and the tree builder can
// report. Hex-escape and base-digit failures carry messages specific
// to the offending text instead of a sentinel.
var (
	// ErrExpectedColon is reported when a property name is not followed
	// by ":".
	ErrExpectedColon = errors.New("expected ':' after property name")

	// ErrExpectedEndOfElements is reported by the tree builder when
	// ReaderOptions.ParseSingleElement is set and trailing, non-comment
	// content follows the root element.
	ErrExpectedEndOfElements = errors.New("expected end of elements")

	// ErrNestedBracelessObject is reported when a braceless object
	// would occur inside a container or a property value, which the
	// grammar never permits.
	ErrNestedBracelessObject = errors.New("nested braceless object")

	// ErrExceededMaxDepth is reported when pushing a container would
	// exceed ReaderOptions.MaxDepth.
	ErrExceededMaxDepth = errors.New("exceeded max depth")

	// ErrEmptyQuotelessString is reported when a quoteless string scan
	// produces no text at all.
	ErrEmptyQuotelessString = errors.New("empty quoteless string")

	// ErrVerbatimWithoutString is reported when a verbatim "@" prefix
	// (v2) is not immediately followed by string content.
	ErrVerbatimWithoutString = errors.New("expected string to immediately follow verbatim symbol")

	// ErrUnterminatedString is reported when a quoted string runs off
	// the end of the input before its closing quote(s).
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrUnterminatedComment is reported when a block comment runs off
	// the end of the input before its closing delimiter.
	ErrUnterminatedComment = errors.New("unterminated block comment")

	// ErrUnexpectedEndOfInput is reported when the input ends where a
	// token was required. With ReaderOptions.IncompleteInputs set, an
	// input that lacks only closing "}"/"]" brackets is not reported;
	// one that ends where a value is required still is.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrEmptyNumber is reported when a numeric literal has no
	// mantissa digits at all (for example a bare base prefix).
	ErrEmptyNumber = errors.New("empty number")

	// ErrLeadingSeparator is reported when a numeric literal's digit
	// separator "_" opens a mantissa or exponent run.
	ErrLeadingSeparator = errors.New("leading digit separator")

	// ErrTrailingSeparator is reported when a numeric literal's digit
	// separator "_" closes a mantissa or exponent run.
	ErrTrailingSeparator = errors.New("trailing digit separator")

	// ErrDuplicateDecimalPoint is reported when a numeric literal's
	// mantissa or exponent contains more than one ".".
	ErrDuplicateDecimalPoint = errors.New("duplicate decimal point")
)

// A SyntaxError describes a lexical or structural failure at a specific
// byte offset of the input. It is the concrete type returned by Reader
// for all lexical and structural failures, which ast.ParseElement
// passes through unchanged; the tree builder's own failures (such as
// ErrExpectedEndOfElements) are returned without this wrapper. At most
// one failure terminates a token stream.
type SyntaxError struct {
	// Offset is the byte position of the reader when the failure was
	// detected.
	Offset int
	// Message describes the failure.
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsonh: %s (offset %d)", e.Message, e.Offset)
}

// Unwrap supports errors.Is/errors.As against the sentinel this error
// was constructed from, if any.
func (e *SyntaxError) Unwrap() error { return e.err }

func newSyntaxError(offset int, err error) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: err.Error(), err: err}
}
