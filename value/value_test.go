package value

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestDictInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", Int(1))
	d.Set("a", Int(2))
	d.Set("c", Int(3))

	qt.Assert(t, qt.DeepEquals(d.Keys(), []string{"b", "a", "c"}))
	qt.Assert(t, qt.Equals(d.Len(), 3))
}

func TestDictLastWriteWinsKeepsPosition(t *testing.T) {
	d := NewDict()
	d.Set("a", Int(1))
	d.Set("b", Int(2))
	d.Set("a", Int(3))

	qt.Assert(t, qt.DeepEquals(d.Keys(), []string{"a", "b"}))
	v, f := d.Get("a")
	qt.Assert(t, qt.IsTrue(f))
	qt.Assert(t, qt.Equals(v, Value(Int(3))))
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewList(Int(1))
	d := NewPair("l", inner)
	l := NewList(Str("x"), d)

	c := Clone(l).(*List)
	qt.Assert(t, qt.IsTrue(Equal(l, c)))

	inner.Push(Int(2))
	d.Set("extra", Void{})
	l.Push(Bool(true))

	qt.Assert(t, qt.Equals(c.Len(), 2))
	cd := c.At(1).(*Dict)
	qt.Assert(t, qt.DeepEquals(cd.Keys(), []string{"l"}))
	cl, _ := cd.Get("l")
	qt.Assert(t, qt.Equals(cl.(*List).Len(), 1))
}

func TestEqual(t *testing.T) {
	samples := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", Int(3), Int(3), true},
		{"int vs str", Int(3), Str("3"), false},
		{"void", Void{}, Void{}, true},
		{"bools", Bool(true), Bool(false), false},
		{"lists", NewList(Int(1), Str("a")), NewList(Int(1), Str("a")), true},
		{"list lengths", NewList(Int(1)), NewList(Int(1), Int(2)), false},
		{"nested", NewList(NewPair("k", Int(1))), NewList(NewPair("k", Int(1))), true},
		{"dict values", NewPair("k", Int(1)), NewPair("k", Int(2)), false},
		{"nil and value", nil, Int(1), false},
		{"both nil", nil, nil, true},
	}
	for _, s := range samples {
		qt.Assert(t, qt.Equals(Equal(s.a, s.b), s.want), qt.Commentf("sample %q", s.name))
	}

	ab := NewDict()
	ab.Set("a", Int(1))
	ab.Set("b", Int(2))
	ba := NewDict()
	ba.Set("b", Int(2))
	ba.Set("a", Int(1))
	qt.Assert(t, qt.IsFalse(Equal(ab, ba)), qt.Commentf("key order is significant"))
}

func TestRepr(t *testing.T) {
	samples := []struct {
		v    Value
		want string
	}{
		{Void{}, "void"},
		{Bool(true), "true"},
		{Int(-7), "-7"},
		{Str(`a"b`), `"a\"b"`},
		{NewList(Int(1), Str("x")), `[1, "x"]`},
		{NewPair("k", NewList()), `("k" => [])`},
		{Native{Name: "f"}, "<native f>"},
	}
	for _, s := range samples {
		qt.Assert(t, qt.Equals(s.v.Repr(), s.want))
	}

	qt.Assert(t, qt.Equals(Void{}.String(), ""))
	qt.Assert(t, qt.Equals(Str("plain").String(), "plain"))
}

func TestTypeNames(t *testing.T) {
	samples := []struct {
		v    Value
		want string
	}{
		{Void{}, "void"},
		{Bool(false), "bool"},
		{Int(0), "int"},
		{Str(""), "str"},
		{NewList(), "list"},
		{NewDict(), "dict"},
		{Native{}, "native"},
	}
	for _, s := range samples {
		qt.Assert(t, qt.Equals(s.v.Type().String(), s.want))
	}
}
