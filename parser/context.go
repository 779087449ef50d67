package parser

import (
	"bytes"
	"strings"

	"github.com/nivpgir/tokay/grammar"
	"github.com/nivpgir/tokay/source"
	"github.com/nivpgir/tokay/value"
)

const (
	memoInProgress = iota
	memoSettled
	memoFailed
)

type memoKey struct {
	rule string
	pos  int
}

type memoEntry struct {
	state int
	val   value.Value
	end   int

	// left-recursion bookkeeping: recursed is set when the rule re-enters
	// itself at the same position, seeded when a seed result is available
	// for such re-entries, involved when the invocation sits inside the
	// cycle of another rule's recursion.
	recursed bool
	seeded   bool
	involved bool
}

// parseContext is the mutable state of one parse invocation: the cursor,
// the memo table, and the recursion depth. It is exclusively owned by one
// Parse call and discarded on return.
type activeRule struct {
	key memoKey
	ent *memoEntry
}

type parseContext struct {
	parser *Parser
	src    *source.Source
	memo   map[memoKey]*memoEntry
	stack  []activeRule
	depth  int

	// furthest offset where a terminal failed to match, for the
	// top-level no-match diagnostic
	failPos int
}

func newParseContext(p *Parser, src *source.Source) *parseContext {
	return &parseContext{
		parser: p,
		src:    src,
		memo:   make(map[memoKey]*memoEntry),
	}
}

type matchResult struct {
	val value.Value
	end int
}

// matchRule matches the named rule at pos, memoizing the outcome per
// (rule, position). Left recursion is handled Warth-style: a re-entry at
// the same position answers with the current seed instead of recursing,
// and after the first successful pass the alternatives are re-run with
// the previous result as the new seed until the end position stops
// advancing (guaranteed to terminate, consumed length is monotone and
// bounded by the input). Re-entry through intermediate rules marks those
// rules involved in the cycle; their outcomes hold only for the seed
// they were computed against, so they are discarded instead of settled
// and every growth pass re-evaluates them.
func (pc *parseContext) matchRule(name string, pos int) (matchResult, bool, error) {
	k := memoKey{name, pos}
	ent, f := pc.memo[k]
	if f {
		switch ent.state {
		case memoSettled:
			return matchResult{ent.val, ent.end}, true, nil
		case memoFailed:
			return matchResult{}, false, nil
		default:
			pc.markInvolved(k)
			ent.recursed = true
			if ent.seeded {
				return matchResult{ent.val, ent.end}, true, nil
			}
			return matchResult{}, false, nil
		}
	}

	if len(pc.memo) >= pc.parser.maxMemo {
		return matchResult{}, false, memoLimitError(pc.src.MakePos(pos), pc.parser.maxMemo)
	}
	pc.depth++
	defer func() { pc.depth-- }()
	if pc.depth > pc.parser.maxDepth {
		return matchResult{}, false, depthLimitError(pc.src.MakePos(pos), pc.parser.maxDepth)
	}

	rule, _ := pc.parser.grammar.Rule(name)
	ent = &memoEntry{state: memoInProgress}
	pc.memo[k] = ent
	pc.stack = append(pc.stack, activeRule{k, ent})
	defer func() { pc.stack = pc.stack[:len(pc.stack)-1] }()

	m, ok, e := pc.matchAlts(rule.Alts, pos)
	if e != nil {
		delete(pc.memo, k)
		return matchResult{}, false, e
	}

	for ok && ent.recursed {
		ent.seeded = true
		ent.val = m.val
		ent.end = m.end

		grown, grownOk, e := pc.matchAlts(rule.Alts, pos)
		if e != nil {
			delete(pc.memo, k)
			return matchResult{}, false, e
		}
		if !grownOk || grown.end <= m.end {
			break
		}
		m = grown
	}

	if ent.involved {
		delete(pc.memo, k)
	} else if ok {
		ent.state = memoSettled
		ent.val = m.val
		ent.end = m.end
	} else {
		ent.state = memoFailed
	}
	return m, ok, nil
}

// markInvolved flags every in-progress rule invocation between the
// re-entered head and the current call as a member of its recursion
// cycle. Positions only move forward, so a re-entry at the head's
// position can reach it only through invocations at that same position.
func (pc *parseContext) markInvolved(head memoKey) {
	for i := len(pc.stack) - 1; i >= 0 && pc.stack[i].key != head; i-- {
		pc.stack[i].ent.involved = true
	}
}

// matchAlts tries alternatives in declared order; the first full match
// wins regardless of whether a later alternative would consume more.
// Each attempt owns a fresh capture frame, discarded on backtrack and
// reduced by the trailing action (or the last-element default) on
// success. Fatal diagnostics abort immediately, bypassing the remaining
// alternatives.
func (pc *parseContext) matchAlts(alts []grammar.Alternative, pos int) (matchResult, bool, error) {
	for _, alt := range alts {
		fr := &frame{pos: pos}
		cur := pos
		failed := false

		for _, el := range alt.Elems {
			v, end, captured, ok, e := pc.matchOne(el, cur)
			if e != nil {
				return matchResult{}, false, e
			}
			if !ok {
				failed = true
				break
			}

			cur = end
			fr.pos = end
			if captured {
				fr.vals = append(fr.vals, v)
			}
		}
		if failed {
			continue
		}

		var res value.Value = value.Void{}
		if alt.Action != nil {
			v, e := pc.evalAction(alt.Action, fr)
			if e != nil {
				return matchResult{}, false, pc.liftActionError(e)
			}
			res = v
		} else if n := len(fr.vals); n > 0 {
			res = fr.vals[n-1]
		}

		return matchResult{res, cur}, true, nil
	}

	return matchResult{}, false, nil
}

// matchOne matches a single element at pos. captured reports whether the
// value takes a position in the enclosing capture frame (lookaheads do
// not). ok=false is a soft failure driving backtracking; a non-nil error
// is a fatal diagnostic or limit error and aborts the whole parse.
func (pc *parseContext) matchOne(el grammar.Element, pos int) (v value.Value, end int, captured, ok bool, err error) {
	switch el := el.(type) {
	case grammar.Lit:
		if !bytes.HasPrefix(pc.src.Content()[pos:], []byte(el)) {
			pc.softFail(pos)
			return nil, 0, false, false, nil
		}
		return value.Str(el), pos + len(el), true, true, nil

	case grammar.Class:
		b, inRange := pc.src.At(pos)
		if !inRange || (strings.IndexByte(el.Chars, b) >= 0) == el.Negate {
			pc.softFail(pos)
			return nil, 0, false, false, nil
		}
		return value.Str([]byte{b}), pos + 1, true, true, nil

	case grammar.Ref:
		m, ok, e := pc.matchRule(string(el), pos)
		if e != nil || !ok {
			return nil, 0, false, false, e
		}
		// The frame must own its captures exclusively: the memoized value
		// stays untouched when a fold action later extends this one in
		// place.
		return value.Clone(m.val), m.end, true, true, nil

	case grammar.Eof:
		if pos < pc.src.Len() {
			pc.softFail(pos)
			return nil, 0, false, false, nil
		}
		return value.Void{}, pos, true, true, nil

	case grammar.Group:
		m, ok, e := pc.matchAlts(el.Alts, pos)
		if e != nil || !ok {
			return nil, 0, false, false, e
		}
		return m.val, m.end, true, true, nil

	case grammar.Quantified:
		if el.Q == grammar.ZeroOrOne {
			v, end, _, ok, e := pc.matchOne(el.Inner, pos)
			if e != nil {
				return nil, 0, false, false, e
			}
			if !ok {
				// zero occurrences: the absence marker, no advance
				return value.Void{}, pos, true, true, nil
			}
			return v, end, true, true, nil
		}
		return pc.matchRepeat(el.Inner, pos)

	case grammar.Look:
		_, _, _, ok, e := pc.matchOne(el.Inner, pos)
		if e != nil {
			return nil, 0, false, false, e
		}
		if ok == el.Negate {
			pc.softFail(pos)
			return nil, 0, false, false, nil
		}
		return nil, pos, false, true, nil

	case grammar.Fail:
		return nil, 0, false, false, pc.fatal(FailDirectiveError, pos, el.Message)

	case grammar.Expect:
		v, end, captured, ok, e := pc.matchOne(el.Inner, pos)
		if e != nil {
			if fe, isFatal := e.(*Err); isFatal && el.Message != "" {
				fe.Diags = append([]Diag{pc.diag(pos, el.Message)}, fe.Diags...)
			}
			return nil, 0, false, false, e
		}
		if !ok {
			msg := el.Message
			if msg == "" {
				msg = "expected " + el.Inner.String()
			}
			return nil, 0, false, false, pc.fatal(ExpectError, pos, msg)
		}
		return v, end, captured, true, nil
	}

	return nil, 0, false, false, nil
}

// matchRepeat implements zero-or-more: iteration values accumulate into a
// list; the first soft failure stops the repetition without failing it,
// with the cursor restored to just before the failed attempt. An inner
// alternative's trailing action therefore runs once per iteration, a
// fold, not once over the collected sequence. A zero-width success also
// stops the loop, otherwise a nullable inner element would repeat forever.
func (pc *parseContext) matchRepeat(inner grammar.Element, pos int) (value.Value, int, bool, bool, error) {
	items := value.NewList()
	cur := pos

	for {
		v, end, captured, ok, e := pc.matchOne(inner, cur)
		if e != nil {
			return nil, 0, false, false, e
		}
		if !ok {
			break
		}
		if captured {
			items.Push(v)
		}
		if end == cur {
			break
		}
		cur = end
	}

	return items, cur, true, true, nil
}

func (pc *parseContext) softFail(pos int) {
	if pos > pc.failPos {
		pc.failPos = pos
	}
}
