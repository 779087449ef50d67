package parser

import (
	"fmt"

	"github.com/nivpgir/tokay"
	"github.com/nivpgir/tokay/grammar"
)

// Fatal diagnostics raised while matching (SyntaxErrors class),
// carried by Err.Code:
const (
	NoMatchError = iota + tokay.SyntaxErrors
	FailDirectiveError
	ExpectError
	RaiseError
)

// Configuration and resource limit errors (ParserErrors class):
const (
	UnknownRuleError = iota + tokay.ParserErrors
	UnknownBuiltinError
	BadCaptureError
	DepthLimitError
	MemoLimitError
	BadActionError
)

// Diag is one entry of a failure's diagnostic chain.
type Diag struct {
	Pos       int
	Line, Col int
	Message   string
}

// Err is the failure result of a parse: the byte offset where matching
// stopped and the chain of diagnostics collected while unwinding. A
// fatal diagnostic bypasses all pending alternatives, so an Err never
// reflects a recoverable state.
type Err struct {
	Code  int
	Pos   int
	Diags []Diag
}

func (e *Err) Error() string {
	d := e.Diags[0]
	return fmt.Sprintf("%s at line %d col %d", d.Message, d.Line, d.Col)
}

func (pc *parseContext) diag(pos int, msg string) Diag {
	p := pc.src.MakePos(pos)
	return Diag{Pos: pos, Line: p.Line(), Col: p.Col(), Message: msg}
}

func (pc *parseContext) fatal(code, pos int, msg string) *Err {
	return &Err{Code: code, Pos: pos, Diags: []Diag{pc.diag(pos, msg)}}
}

func (pc *parseContext) noMatchError(rule string) *Err {
	return pc.fatal(NoMatchError, pc.failPos, fmt.Sprintf("input does not match rule %q", rule))
}

func unknownRuleError(name string) *tokay.Error {
	return tokay.FormatError(UnknownRuleError, "unknown start rule %q", name)
}

func unknownBuiltinError(rule, name string) *tokay.Error {
	return tokay.FormatError(UnknownBuiltinError, "rule %q calls unknown builtin %q", rule, name)
}

func badCaptureRefError(rule string, n int) *tokay.Error {
	return tokay.FormatError(BadCaptureError, "rule %q references capture $%d, captures are 1-based", rule, n)
}

func badCaptureError(pos tokay.SourcePos, n, size int) *tokay.Error {
	return tokay.FormatErrorPos(pos, BadCaptureError, "capture $%d out of range, frame holds %d values", n, size)
}

func depthLimitError(pos tokay.SourcePos, limit int) *tokay.Error {
	return tokay.FormatErrorPos(pos, DepthLimitError, "recursion depth limit of %d exceeded", limit)
}

func memoLimitError(pos tokay.SourcePos, limit int) *tokay.Error {
	return tokay.FormatErrorPos(pos, MemoLimitError, "memo table limit of %d entries exceeded", limit)
}

func unknownExprError(x grammar.Expr) *tokay.Error {
	return tokay.FormatError(BadActionError, "unsupported action expression %s", x)
}
