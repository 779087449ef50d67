// Package builtin defines the registry of native reduction functions
// available to semantic actions: the fixed set the engine ships with
// (str_join, list_push, dict_update, accept, error) and a registration
// point for host-supplied functions.
package builtin

import (
	"sort"

	"github.com/nivpgir/tokay/value"
)

// Context is the view of the running parse handed to a native function:
// the current input offset and read access to the capture frame of the
// alternative whose action is being evaluated.
type Context interface {
	// Pos returns the current byte offset in the input.
	Pos() int
	// Arg returns the 1-based positional capture $n, or false when the
	// frame has no such position.
	Arg(n int) (value.Value, bool)
}

// Func is a native function callable from action expressions.
type Func func(c Context, args []value.Value) (value.Value, error)

// Registry maps names to native functions. A registry is populated before
// parser construction and read-only afterwards.
type Registry struct {
	funcs map[string]Func
}

// New creates a registry pre-populated with the fixed builtin set.
func New() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.funcs["str_join"] = strJoin
	r.funcs["list_push"] = listPush
	r.funcs["dict_update"] = dictUpdate
	r.funcs["accept"] = accept
	r.funcs["error"] = raise
	return r
}

// Register adds a host-supplied function; registering a taken name is an error.
func (r *Registry) Register(name string, f Func) error {
	if _, taken := r.funcs[name]; taken {
		return redefinedError(name)
	}
	r.funcs[name] = f
	return nil
}

func (r *Registry) Lookup(name string) (Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
