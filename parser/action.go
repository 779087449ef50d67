package parser

import (
	"github.com/nivpgir/tokay/builtin"
	"github.com/nivpgir/tokay/grammar"
	"github.com/nivpgir/tokay/value"
)

// frame is the capture frame of one alternative attempt: the values of
// its matched elements, 1-indexed by position. It implements
// builtin.Context for native functions called from the trailing action.
type frame struct {
	vals []value.Value
	pos  int
}

func (f *frame) Pos() int {
	return f.pos
}

func (f *frame) Arg(n int) (value.Value, bool) {
	if n < 1 || n > len(f.vals) {
		return nil, false
	}
	return f.vals[n-1], true
}

var _ builtin.Context = (*frame)(nil)

func (pc *parseContext) evalAction(x grammar.Expr, fr *frame) (value.Value, error) {
	switch x := x.(type) {
	case grammar.Arg:
		v, f := fr.Arg(int(x))
		if !f {
			return nil, badCaptureError(pc.src.MakePos(fr.pos), int(x), len(fr.vals))
		}
		return v, nil

	case grammar.Str:
		return value.Str(x), nil

	case grammar.Int:
		return value.Int(x), nil

	case grammar.Pair:
		key, e := pc.evalAction(x.Key, fr)
		if e != nil {
			return nil, e
		}
		val, e := pc.evalAction(x.Val, fr)
		if e != nil {
			return nil, e
		}
		return value.NewPair(key.String(), val), nil

	case grammar.Call:
		// name resolution was checked at New
		fn, _ := pc.parser.builtins.Lookup(x.Name)
		args := make([]value.Value, len(x.Args))
		for i, a := range x.Args {
			v, e := pc.evalAction(a, fr)
			if e != nil {
				return nil, e
			}
			args[i] = v
		}
		return fn(fr, args)
	}

	return nil, unknownExprError(x)
}

// liftActionError turns an error escaping an action into the failure the
// caller sees: an explicit raise from the error builtin becomes a fatal
// diagnostic at its recorded position, everything else (native function
// misuse, capture range errors) passes through and aborts the parse as is.
func (pc *parseContext) liftActionError(e error) error {
	if r, f := e.(*builtin.Raise); f {
		return pc.fatal(RaiseError, r.Pos, r.Message)
	}
	return e
}
