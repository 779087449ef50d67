package grammar

import (
	"strconv"
	"strings"
)

// Expr is the sealed variant of action expressions evaluated over a
// capture frame when an alternative completes: positional captures,
// literals, key => value pairs, and calls of native functions.
type Expr interface {
	expr()
	String() string
}

// Arg is a 1-based positional capture reference ($1, $2, ...).
type Arg int

// Str is a string literal inside an action expression.
type Str string

// Int is an integer literal inside an action expression.
type Int int64

// Call invokes a native function from the builtin registry.
type Call struct {
	Name string
	Args []Expr
}

// Pair is the binary infix form key => value; it evaluates to a
// single-entry dict consumed by dict_update.
type Pair struct {
	Key, Val Expr
}

func (Arg) expr()  {}
func (Str) expr()  {}
func (Int) expr()  {}
func (Call) expr() {}
func (Pair) expr() {}

func (a Arg) String() string {
	return "$" + strconv.Itoa(int(a))
}

func (s Str) String() string {
	return strconv.Quote(string(s))
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (p Pair) String() string {
	return p.Key.String() + " => " + p.Val.String()
}
