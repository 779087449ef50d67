// Package value defines the tagged value variant produced by the parser:
// everything captured by matching, returned by rules, and manipulated by
// semantic actions is a Value. The variant is closed so native functions
// can switch exhaustively over the small fixed set of shapes.
package value

import (
	"strconv"
	"strings"
)

type Type int

const (
	VoidType Type = iota
	BoolType
	IntType
	StrType
	ListType
	DictType
	NativeType
)

func (t Type) String() string {
	switch t {
	case VoidType:
		return "void"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case StrType:
		return "str"
	case ListType:
		return "list"
	case DictType:
		return "dict"
	case NativeType:
		return "native"
	}
	return "unknown"
}

// Value is implemented by Void, Bool, Int, Str, *List, *Dict, and Native.
// String returns the display form, Repr a source-like form.
type Value interface {
	Type() Type
	String() string
	Repr() string
}

// Void is the absence marker: the capture of an unmatched optional element
// and the result of a rule producing nothing.
type Void struct{}

func (Void) Type() Type     { return VoidType }
func (Void) String() string { return "" }
func (Void) Repr() string   { return "void" }

type Bool bool

func (b Bool) Type() Type { return BoolType }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Repr() string { return b.String() }

type Int int64

func (i Int) Type() Type     { return IntType }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Repr() string   { return i.String() }

type Str string

func (s Str) Type() Type     { return StrType }
func (s Str) String() string { return string(s) }
func (s Str) Repr() string   { return strconv.Quote(string(s)) }

// List is an ordered sequence of values. A list is exclusively owned by the
// capture frame that created it; Push extends it in place.
type List struct {
	items []Value
}

func NewList(items ...Value) *List {
	return &List{items: items}
}

func (l *List) Type() Type { return ListType }

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) At(i int) Value {
	return l.items[i]
}

func (l *List) Push(v Value) {
	l.items = append(l.items, v)
}

func (l *List) Items() []Value {
	return l.items
}

func (l *List) String() string { return l.Repr() }

func (l *List) Repr() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range l.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.Repr())
	}
	b.WriteByte(']')
	return b.String()
}

// Dict is a mapping from string keys to values preserving insertion order.
// Setting a key that is already present overwrites its value in place and
// keeps the original position (last write wins).
type Dict struct {
	keys []string
	vals map[string]Value
}

func NewDict() *Dict {
	return &Dict{vals: make(map[string]Value)}
}

// NewPair creates a single-entry dict, the representation of a key => value
// pair built by actions and consumed by dict_update.
func NewPair(key string, val Value) *Dict {
	d := NewDict()
	d.Set(key, val)
	return d
}

func (d *Dict) Type() Type { return DictType }

func (d *Dict) Len() int {
	return len(d.keys)
}

func (d *Dict) Get(key string) (Value, bool) {
	v, f := d.vals[key]
	return v, f
}

func (d *Dict) Set(key string, val Value) {
	if _, f := d.vals[key]; !f {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Keys returns the keys in insertion order; the slice is shared, not a copy.
func (d *Dict) Keys() []string {
	return d.keys
}

func (d *Dict) String() string { return d.Repr() }

func (d *Dict) Repr() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(" => ")
		b.WriteString(d.vals[k].Repr())
	}
	b.WriteByte(')')
	return b.String()
}

// Native is an opaque reference to a native function registered with the
// builtin registry. The engine never inspects Impl, it only carries it.
type Native struct {
	Name string
	Impl any
}

func (n Native) Type() Type     { return NativeType }
func (n Native) String() string { return n.Repr() }
func (n Native) Repr() string   { return "<native " + n.Name + ">" }

// Clone returns a deep copy of v. The parser clones the final result so it
// outlives the capture frames and memo table of the parse that produced it.
func Clone(v Value) Value {
	switch v := v.(type) {
	case *List:
		items := make([]Value, len(v.items))
		for i, it := range v.items {
			items[i] = Clone(it)
		}
		return NewList(items...)
	case *Dict:
		d := NewDict()
		for _, k := range v.keys {
			d.Set(k, Clone(v.vals[k]))
		}
		return d
	default:
		return v
	}
}

// Equal reports deep equality; dicts are equal only if their key order matches.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case *List:
		b := b.(*List)
		if len(a.items) != len(b.items) {
			return false
		}
		for i, it := range a.items {
			if !Equal(it, b.items[i]) {
				return false
			}
		}
		return true
	case *Dict:
		b := b.(*Dict)
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			if k != b.keys[i] || !Equal(a.vals[k], b.vals[k]) {
				return false
			}
		}
		return true
	case Native:
		return a.Name == b.(Native).Name
	default:
		return a == b
	}
}
