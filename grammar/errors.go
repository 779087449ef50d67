package grammar

import (
	"github.com/nivpgir/tokay"
)

const (
	UndefinedRuleError = iota + tokay.GrammarErrors
	DuplicateRuleError
	EmptyRuleError
)

func undefinedRuleError(rule, ref string) *tokay.Error {
	return tokay.FormatError(UndefinedRuleError, "rule %q references undefined rule %q", rule, ref)
}

func duplicateRuleError(name string) *tokay.Error {
	return tokay.FormatError(DuplicateRuleError, "rule %q is already defined", name)
}

func emptyRuleError(name string) *tokay.Error {
	return tokay.FormatError(EmptyRuleError, "rule %q has no alternatives", name)
}
