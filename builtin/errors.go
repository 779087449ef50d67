package builtin

import (
	"github.com/nivpgir/tokay"
	"github.com/nivpgir/tokay/value"
)

const (
	WrongArgCountError = iota + tokay.BuiltinErrors
	WrongArgTypeError
	RedefinedError
)

func wrongArgCountError(name string, expected, got int) *tokay.Error {
	return tokay.FormatError(WrongArgCountError, "wrong number of arguments for %s: expecting %d, got %d", name, expected, got)
}

func wrongArgTypeError(name string, arg int, expected, got value.Type) *tokay.Error {
	return tokay.FormatError(WrongArgTypeError, "wrong type of argument #%d for %s: expecting %s, got %s", arg, name, expected, got)
}

func redefinedError(name string) *tokay.Error {
	return tokay.FormatError(RedefinedError, "builtin %q is already registered", name)
}

// Raise is the error produced by the error builtin: an explicit fatal
// diagnostic raised from a semantic action. The parser turns it into a
// failure with a positional diagnostic chain.
type Raise struct {
	Pos     int
	Message string
}

func (r *Raise) Error() string {
	return r.Message
}
