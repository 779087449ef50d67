// Package grammar defines the static rule table walked by the matching
// engine: named rules, each an ordered list of alternatives made of
// elements and an optional trailing action expression. The table is
// read-only after construction; rules reference each other by name only.
package grammar

import (
	"strconv"
	"strings"
)

type Grammar struct {
	rules []*Rule
	index map[string]int
}

func New() *Grammar {
	return &Grammar{index: make(map[string]int)}
}

// Add appends a rule. Rule names are unique and every rule carries at
// least one alternative; violations are definition errors.
func (g *Grammar) Add(name string, alts ...Alternative) error {
	if _, f := g.index[name]; f {
		return duplicateRuleError(name)
	}
	if len(alts) == 0 {
		return emptyRuleError(name)
	}

	g.index[name] = len(g.rules)
	g.rules = append(g.rules, &Rule{name, alts})
	return nil
}

func (g *Grammar) Rule(name string) (*Rule, bool) {
	i, f := g.index[name]
	if !f {
		return nil, false
	}
	return g.rules[i], true
}

// Names returns the rule names in declaration order.
func (g *Grammar) Names() []string {
	names := make([]string, len(g.rules))
	for i, r := range g.rules {
		names[i] = r.Name
	}
	return names
}

// Validate checks that every rule reference, recursively through groups,
// quantifiers, lookaheads, and expects, resolves to a defined rule.
// It fails fast with the first undefined reference; an undefined rule is
// never reported as a parse-time failure.
func (g *Grammar) Validate() error {
	for _, r := range g.rules {
		for _, a := range r.Alts {
			for _, el := range a.Elems {
				if e := g.checkElement(r.Name, el); e != nil {
					return e
				}
			}
		}
	}
	return nil
}

func (g *Grammar) checkElement(rule string, el Element) error {
	switch el := el.(type) {
	case Ref:
		if _, f := g.index[string(el)]; !f {
			return undefinedRuleError(rule, string(el))
		}
	case Group:
		for _, a := range el.Alts {
			for _, inner := range a.Elems {
				if e := g.checkElement(rule, inner); e != nil {
					return e
				}
			}
		}
	case Quantified:
		return g.checkElement(rule, el.Inner)
	case Look:
		return g.checkElement(rule, el.Inner)
	case Expect:
		return g.checkElement(rule, el.Inner)
	}
	return nil
}

type Rule struct {
	Name string
	Alts []Alternative
}

// Alternative is an ordered element sequence plus an optional trailing
// action; a nil Action means the alternative's value defaults to the
// value of its last captured element.
type Alternative struct {
	Elems  []Element
	Action Expr
}

// Alt builds an alternative without an action.
func Alt(elems ...Element) Alternative {
	return Alternative{Elems: elems}
}

// Do attaches a trailing action expression to the alternative.
func (a Alternative) Do(action Expr) Alternative {
	a.Action = action
	return a
}

type Quantifier int

const (
	ZeroOrOne Quantifier = iota
	ZeroOrMore
)

// Element is the sealed variant of things an alternative can match:
// Lit, Class, Ref, Eof, Group, Quantified, Look, Fail, and Expect.
type Element interface {
	element()
	String() string
}

// Lit matches an exact string verbatim.
type Lit string

// Class matches a single byte from a character set, or from its
// complement when Negate is set.
type Class struct {
	Chars  string
	Negate bool
}

// Ref invokes another rule by name.
type Ref string

// Eof matches only at the end of input, consuming nothing.
type Eof struct{}

// Group is a parenthesized sub-grammar, itself an ordered choice.
type Group struct {
	Alts []Alternative
}

// Quantified repeats Inner: ZeroOrOne captures the inner value or void,
// ZeroOrMore captures the accumulated sequence of iteration values.
type Quantified struct {
	Inner Element
	Q     Quantifier
}

// Look is a zero-width lookahead: it never advances the cursor and is
// never captured. Negate inverts the polarity.
type Look struct {
	Inner  Element
	Negate bool
}

// Fail raises an unconditional fatal diagnostic when reached.
type Fail struct {
	Message string
}

// Expect requires Inner to match; otherwise a fatal diagnostic is raised,
// with Message or a default "expecting ..." text when Message is empty.
type Expect struct {
	Inner   Element
	Message string
}

func (Lit) element()        {}
func (Class) element()      {}
func (Ref) element()        {}
func (Eof) element()        {}
func (Group) element()      {}
func (Quantified) element() {}
func (Look) element()       {}
func (Fail) element()       {}
func (Expect) element()     {}

func (l Lit) String() string {
	return "'" + string(l) + "'"
}

func (c Class) String() string {
	if c.Negate {
		return "[^" + c.Chars + "]"
	}
	return "[" + c.Chars + "]"
}

func (r Ref) String() string {
	return string(r)
}

func (Eof) String() string {
	return "end of input"
}

func (g Group) String() string {
	var b strings.Builder
	b.WriteString("( ")
	for i, a := range g.Alts {
		if i > 0 {
			b.WriteString(" | ")
		}
		for j, el := range a.Elems {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(el.String())
		}
	}
	b.WriteString(" )")
	return b.String()
}

func (q Quantified) String() string {
	if q.Q == ZeroOrOne {
		return q.Inner.String() + "?"
	}
	return q.Inner.String() + "*"
}

func (l Look) String() string {
	if l.Negate {
		return "!" + l.Inner.String()
	}
	return "&" + l.Inner.String()
}

func (f Fail) String() string {
	return "error(" + strconv.Quote(f.Message) + ")"
}

func (e Expect) String() string {
	return "expect " + e.Inner.String()
}
