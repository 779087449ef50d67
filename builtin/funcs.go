package builtin

import (
	"strings"

	"github.com/nivpgir/tokay/value"
)

// strJoin concatenates a sequence of values with a separator. A non-list
// second argument is stringified alone; void elements contribute nothing.
func strJoin(c Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgCountError("str_join", 2, len(args))
	}

	sep := args[0].String()
	l, ok := args[1].(*value.List)
	if !ok {
		return value.Str(args[1].String()), nil
	}

	parts := make([]string, 0, l.Len())
	for _, it := range l.Items() {
		if it.Type() == value.VoidType {
			continue
		}
		parts = append(parts, it.String())
	}
	return value.Str(strings.Join(parts, sep)), nil
}

// listPush appends item to the list and returns the owning list. A void
// first argument starts a fresh list; any other non-list value seeds a
// fresh list, which is what lets a left-recursive fold like
// list_push($1, $3) accumulate from a single-item base case.
func listPush(c Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgCountError("list_push", 2, len(args))
	}

	item := args[1]
	switch l := args[0].(type) {
	case *value.List:
		l.Push(item)
		return l, nil
	case value.Void:
		return value.NewList(item), nil
	default:
		return value.NewList(args[0], item), nil
	}
}

// dictUpdate inserts every entry of pair into dict in place and returns
// the dict; a repeated key overwrites (last write wins). A void first
// argument starts a fresh dict. Since a pair is itself a single-entry
// dict, a left-recursive fold like dict_update($1, $3) grows naturally
// from a pair base case.
func dictUpdate(c Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgCountError("dict_update", 2, len(args))
	}

	pair, ok := args[1].(*value.Dict)
	if !ok {
		return nil, wrongArgTypeError("dict_update", 2, value.DictType, args[1].Type())
	}

	var d *value.Dict
	switch v := args[0].(type) {
	case *value.Dict:
		d = v
	case value.Void:
		d = value.NewDict()
	default:
		return nil, wrongArgTypeError("dict_update", 1, value.DictType, args[0].Type())
	}

	for _, k := range pair.Keys() {
		v, _ := pair.Get(k)
		d.Set(k, v)
	}
	return d, nil
}

// accept overrides the alternative's default result: no arguments yield
// void, one argument passes through, several collect into a list.
func accept(c Context, args []value.Value) (value.Value, error) {
	switch len(args) {
	case 0:
		return value.Void{}, nil
	case 1:
		return args[0], nil
	default:
		return value.NewList(args...), nil
	}
}

// raise aborts the parse with a fatal diagnostic at the current position;
// it never returns a value.
func raise(c Context, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgCountError("error", 1, len(args))
	}
	return nil, &Raise{Pos: c.Pos(), Message: args[0].String()}
}
