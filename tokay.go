/*
Package tokay is a grammar-interpretation engine: it matches a formal grammar
directly against an input buffer and produces a value, not just a syntax tree.

Consists of subpackages:
  - grammar: defines the static rule table walked by the matching engine;
  - value: the tagged value variant captured, returned, and manipulated by semantic actions;
  - builtin: registry of native reduction functions available to actions;
  - parser: the matching engine itself (ordered choice, quantifiers, lookahead,
    left-recursion seed growing) and the capture/action evaluator;
  - source: input buffer with offset to line/column mapping used for diagnostics.

Typical usage is:

1. Build a grammar table, either programmatically or through an external
grammar front-end (the engine treats the front-end as a collaborator,
it only consumes the finished table).

2. Optionally register additional native functions for semantic actions.

3. Create a parser for the grammar and feed it input buffers; each call
returns the produced value and the consumed length, or a failure with
a positional diagnostic chain.
*/
package tokay

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar: definition errors, detected at load
	SyntaxErrors  = 101 // used by parser: fatal diagnostics raised while matching
	BuiltinErrors = 201 // used by builtin: native function misuse
	ParserErrors  = 301 // used by parser: configuration and resource limit errors
)

// Error is the error type used by tokay subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Source positions implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name != "" {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		} else {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
