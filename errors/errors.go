// Package errors defines a diagnostic error type (kind, span, detail,
// context), plus helpers for wrapping and annotating error chains with
// github.com/juju/errors. No other package of this module imports it: the
// parser reports parser.ParseError and the analyzer its own analyzer.Error.
package errors

import (
	"fmt"

	juju "github.com/juju/errors"
)

// Span is a byte-offset range in the source text.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a Span from start/end byte offsets.
func NewSpan(start, end int) Span { return Span{Start: start, End: end} }

// PointSpan builds a single-byte Span at pos.
func PointSpan(pos int) Span { return Span{Start: pos, End: pos + 1} }

// EmptySpan builds a zero-length Span at pos.
func EmptySpan(pos int) Span { return Span{Start: pos, End: pos} }

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Len reports the span's length in bytes.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.Start >= s.End }

// Kind identifies the category of a diagnostic.
type Kind int

const (
	// Lexer errors.
	UnexpectedCharacter Kind = iota
	UnterminatedString
	UnterminatedBlockComment
	InvalidEscapeSequence
	InvalidNumber
	InvalidHexLiteral
	InvalidBytesLiteral

	// Parser errors.
	UnexpectedToken
	UnexpectedEOF
	ExpectedExpression
	ExpectedIdentifier
	ExpectedKeyword
	InvalidSyntax
	UnsupportedFeature

	// Analyzer errors.
	UndefinedColumn
	UndefinedTable
	UndefinedFunction
	AmbiguousColumn
	TypeMismatch
	InvalidArgumentCount
	DuplicateColumn
	DuplicateAlias
	InvalidGroupBy
	InvalidOrderBy
	InvalidAggregateUsage
	InvalidWindowFunction

	// General.
	Internal
)

var kindNames = [...]string{
	UnexpectedCharacter:      "unexpected character",
	UnterminatedString:       "unterminated string literal",
	UnterminatedBlockComment: "unterminated block comment",
	InvalidEscapeSequence:    "invalid escape sequence",
	InvalidNumber:            "invalid number",
	InvalidHexLiteral:        "invalid hexadecimal literal",
	InvalidBytesLiteral:      "invalid bytes literal",
	UnexpectedToken:          "unexpected token",
	UnexpectedEOF:            "unexpected end of input",
	ExpectedExpression:       "expected expression",
	ExpectedIdentifier:       "expected identifier",
	ExpectedKeyword:          "expected keyword",
	InvalidSyntax:            "invalid syntax",
	UnsupportedFeature:       "unsupported feature",
	UndefinedColumn:          "undefined column",
	UndefinedTable:           "undefined table",
	UndefinedFunction:        "undefined function",
	AmbiguousColumn:          "ambiguous column reference",
	TypeMismatch:             "type mismatch",
	InvalidArgumentCount:     "invalid argument count",
	DuplicateColumn:          "duplicate column",
	DuplicateAlias:           "duplicate alias",
	InvalidGroupBy:           "invalid GROUP BY",
	InvalidOrderBy:           "invalid ORDER BY",
	InvalidAggregateUsage:    "invalid aggregate usage",
	InvalidWindowFunction:    "invalid window function",
	Internal:                 "internal error",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown error"
}

// Error is a diagnostic with a kind, an optional source span, and optional
// structured detail (the specific identifier, expected/found pair, etc).
type Error struct {
	Kind    Kind
	Span    *Span
	Detail  string
	Context string
}

// New builds an Error with no span or detail.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// WithSpan builds an Error anchored to a source span.
func WithSpan(kind Kind, span Span) *Error {
	return &Error{Kind: kind, Span: &span}
}

// WithDetail attaches free-form detail text (e.g. the offending identifier).
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// WithContext attaches a human-readable context message, mirroring the
// juju/errors Annotatef convention for layered diagnostics.
func (e *Error) WithContext(context string) *Error {
	e.Context = context
	return e
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Detail)
	}
	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}
	if e.Span != nil {
		msg = fmt.Sprintf("%s at position %d", msg, e.Span.Start)
	}
	return msg
}

// Convenience constructors mirroring the original implementation's
// Error::unexpected_char / unexpected_token / etc helpers.

// UnexpectedChar reports a lexer error for an unexpected rune at pos.
func UnexpectedChar(c rune, pos int) *Error {
	span := PointSpan(pos)
	return &Error{Kind: UnexpectedCharacter, Span: &span, Detail: string(c)}
}

// UnexpectedTok reports a parser error for a token mismatch.
func UnexpectedTok(expected, found string, span Span) *Error {
	return &Error{Kind: UnexpectedToken, Span: &span, Detail: fmt.Sprintf("expected %s, found %s", expected, found)}
}

// UnexpectedEOFAt reports reaching end of input where a token was expected.
func UnexpectedEOFAt(pos int) *Error {
	span := PointSpan(pos)
	return &Error{Kind: UnexpectedEOF, Span: &span}
}

// ExpectedExpressionAt reports a missing expression at span.
func ExpectedExpressionAt(span Span) *Error {
	return &Error{Kind: ExpectedExpression, Span: &span}
}

// ExpectedIdentifierAt reports a missing identifier at span.
func ExpectedIdentifierAt(span Span) *Error {
	return &Error{Kind: ExpectedIdentifier, Span: &span}
}

// ExpectedKeywordAt reports a missing keyword at span.
func ExpectedKeywordAt(keyword string, span Span) *Error {
	return &Error{Kind: ExpectedKeyword, Span: &span, Detail: keyword}
}

// InvalidSyntaxAt reports a free-form syntax error at span.
func InvalidSyntaxAt(msg string, span Span) *Error {
	return &Error{Kind: InvalidSyntax, Span: &span, Detail: msg}
}

// UnsupportedAt reports use of an unsupported feature at span.
func UnsupportedAt(feature string, span Span) *Error {
	return &Error{Kind: UnsupportedFeature, Span: &span, Detail: feature}
}

// UnterminatedStringAt reports an unterminated string literal.
func UnterminatedStringAt(span Span) *Error {
	return &Error{Kind: UnterminatedString, Span: &span}
}

// UnterminatedCommentAt reports an unterminated block comment.
func UnterminatedCommentAt(span Span) *Error {
	return &Error{Kind: UnterminatedBlockComment, Span: &span}
}

// InvalidEscapeAt reports an invalid escape sequence.
func InvalidEscapeAt(seq string, span Span) *Error {
	return &Error{Kind: InvalidEscapeSequence, Span: &span, Detail: seq}
}

// InvalidNumberAt reports a malformed numeric literal.
func InvalidNumberAt(num string, span Span) *Error {
	return &Error{Kind: InvalidNumber, Span: &span, Detail: num}
}

// Undefined builds an analyzer error for an unresolved name (column, table,
// or function, selected by kind).
func Undefined(kind Kind, name string) *Error {
	return &Error{Kind: kind, Detail: name}
}

// Ambiguous builds an ambiguous-column-reference analyzer error.
func Ambiguous(name string) *Error {
	return &Error{Kind: AmbiguousColumn, Detail: name}
}

// Mismatch builds a type-mismatch analyzer error.
func Mismatch(expected, found string) *Error {
	return &Error{Kind: TypeMismatch, Detail: fmt.Sprintf("expected %s, found %s", expected, found)}
}

// BadArgCount builds an invalid-argument-count analyzer error.
func BadArgCount(function string, expected, found int) *Error {
	return &Error{Kind: InvalidArgumentCount, Detail: fmt.Sprintf("function '%s' expects %d arguments, found %d", function, expected, found)}
}

// Wrap annotates err with context, preserving the juju/errors cause chain
// so callers can still Trace/Cause through lexer -> parser -> analyzer
// boundaries.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return juju.Annotate(err, context)
}

// Trace records the call site without changing the error's message,
// using the juju/errors.Trace convention for propagation.
func Trace(err error) error {
	return juju.Trace(err)
}

// Cause unwraps to the root error in a Wrap/Trace chain.
func Cause(err error) error {
	return juju.Cause(err)
}
