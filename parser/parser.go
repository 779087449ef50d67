// Package parser implements the matching engine: a recursive-descent
// interpreter of the grammar table with ordered-choice backtracking,
// quantifiers, lookahead, memoization, and left-recursion seed growing,
// plus the capture frame and action evaluation producing the result value.
package parser

import (
	"github.com/nivpgir/tokay/builtin"
	"github.com/nivpgir/tokay/grammar"
	"github.com/nivpgir/tokay/source"
	"github.com/nivpgir/tokay/value"
)

// Default resource bounds; both are overridable per parser.
const (
	DefaultMaxDepth = 4096
	DefaultMaxMemo  = 1 << 20
)

// Parser matches inputs against one grammar. It is immutable after New
// and safe for concurrent use; every Parse call owns its entire mutable
// state (cursor, memo table, capture frames) exclusively and discards it
// on return.
type Parser struct {
	grammar  *grammar.Grammar
	builtins *builtin.Registry
	maxDepth int
	maxMemo  int
}

type Option func(*Parser)

// MaxDepth bounds rule nesting; exceeding it aborts the parse with a
// DepthLimitError instead of growing the stack without bound.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// MaxMemo bounds the number of memo table entries of one parse.
func MaxMemo(n int) Option {
	return func(p *Parser) {
		p.maxMemo = n
	}
}

// WithBuiltins replaces the default builtin registry, typically one
// extended with host-supplied functions.
func WithBuiltins(r *builtin.Registry) Option {
	return func(p *Parser) {
		p.builtins = r
	}
}

// New validates the grammar (undefined rule references, unknown native
// function names and malformed capture references in actions) and
// creates a parser for it. Definition errors are reported here, once,
// never as parse-time failures.
func New(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	p := &Parser{
		grammar:  g,
		builtins: builtin.New(),
		maxDepth: DefaultMaxDepth,
		maxMemo:  DefaultMaxMemo,
	}
	for _, opt := range opts {
		opt(p)
	}

	e := g.Validate()
	if e != nil {
		return nil, e
	}

	e = p.checkActions()
	if e != nil {
		return nil, e
	}

	return p, nil
}

func (p *Parser) checkActions() error {
	for _, name := range p.grammar.Names() {
		r, _ := p.grammar.Rule(name)
		for _, a := range r.Alts {
			e := p.checkAlternative(name, a)
			if e != nil {
				return e
			}
		}
	}
	return nil
}

func (p *Parser) checkAlternative(rule string, a grammar.Alternative) error {
	if a.Action != nil {
		e := p.checkExpr(rule, a.Action)
		if e != nil {
			return e
		}
	}

	for _, el := range a.Elems {
		if e := p.checkElement(rule, el); e != nil {
			return e
		}
	}
	return nil
}

func (p *Parser) checkElement(rule string, el grammar.Element) error {
	switch el := el.(type) {
	case grammar.Group:
		for _, a := range el.Alts {
			if e := p.checkAlternative(rule, a); e != nil {
				return e
			}
		}
	case grammar.Quantified:
		return p.checkElement(rule, el.Inner)
	case grammar.Look:
		return p.checkElement(rule, el.Inner)
	case grammar.Expect:
		return p.checkElement(rule, el.Inner)
	}
	return nil
}

func (p *Parser) checkExpr(rule string, x grammar.Expr) error {
	switch x := x.(type) {
	case grammar.Arg:
		if int(x) < 1 {
			return badCaptureRefError(rule, int(x))
		}
	case grammar.Call:
		if _, f := p.builtins.Lookup(x.Name); !f {
			return unknownBuiltinError(rule, x.Name)
		}
		for _, a := range x.Args {
			if e := p.checkExpr(rule, a); e != nil {
				return e
			}
		}
	case grammar.Pair:
		e := p.checkExpr(rule, x.Key)
		if e == nil {
			e = p.checkExpr(rule, x.Val)
		}
		return e
	}
	return nil
}

// Result of a successful parse: the value produced by the start rule and
// the number of input bytes it consumed. Consuming less than the whole
// buffer is not an error; callers that require full consumption end the
// start rule with an Eof element.
type Result struct {
	Value    value.Value
	Consumed int
}

// Parse matches input against the start rule. It returns the produced
// value on success; a *parser.Err with a positional diagnostic chain when
// matching failed or a fatal diagnostic was raised; a *tokay.Error for
// configuration and resource limit errors.
func (p *Parser) Parse(startRule string, input []byte) (*Result, error) {
	return p.ParseSource(startRule, source.New("", input))
}

// ParseSource is Parse for a named source; the name appears in
// diagnostics.
func (p *Parser) ParseSource(startRule string, src *source.Source) (*Result, error) {
	if _, f := p.grammar.Rule(startRule); !f {
		return nil, unknownRuleError(startRule)
	}

	pc := newParseContext(p, src)
	m, ok, e := pc.matchRule(startRule, 0)
	if e != nil {
		return nil, e
	}
	if !ok {
		return nil, pc.noMatchError(startRule)
	}

	// The result must outlive the per-parse capture frames and memo
	// table, which may still alias it.
	return &Result{Value: value.Clone(m.val), Consumed: m.end}, nil
}
