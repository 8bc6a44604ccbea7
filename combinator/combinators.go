package combinator

import (
	"fmt"

	"github.com/lab156/cnlcombinator/token"
)

// Many parses p zero or more times, greedily. It terminates on the first
// recoverable failure of p or on end-of-input (end-of-input inside the
// body is treated as an ordinary terminator, since Cursor.Next reports it
// as a RecoverableError); a fatal failure from p propagates immediately.
// The result is a list of accumulators, possibly empty.
func Many(p Parser) Parser {
	return Parser{
		Desc: "many(" + p.Desc + ")",
		Process: func(c Cursor) (Cursor, error) {
			results := []any{}
			cur := c
			for {
				c1, err := p.Process(cur)
				if err != nil {
					if IsRecoverable(err) {
						break
					}
					return c1, err
				}
				results = append(results, c1.Acc)
				cur = c1
			}
			return Update(results, cur), nil
		},
	}
}

// AtLeast requires at least n successes of p; the accumulator is a list in
// encounter order.
func AtLeast(p Parser, n int) Parser {
	if n < 1 {
		return Many(p)
	}
	tail := AtLeast(p, n-1)
	return Parser{
		Desc: fmt.Sprintf("at_least(%d)", n),
		Process: func(c Cursor) (Cursor, error) {
			c1, err := Then(p, tail).Process(c)
			if err != nil {
				return c1, err
			}
			pair := c1.Acc.(Pair)
			rest := pair.Second.([]any)
			return Update(prepend(pair.First, rest), c1), nil
		},
	}
}

// Plus requires at least one success of p. Equivalent to AtLeast(p, 1).
func Plus(p Parser) Parser {
	return AtLeast(p, 1).WithDesc("plus(" + p.Desc + ")")
}

// Possibly parses p zero or one times; the accumulator is always a list of
// length 0 or 1, never a nullable scalar, which simplifies downstream
// Treat calls.
func Possibly(p Parser) Parser {
	return Parser{
		Desc: "possibly(" + p.Desc + ")",
		Process: func(c Cursor) (Cursor, error) {
			c1, err := p.Process(c)
			if err != nil {
				if IsRecoverable(err) {
					return Update([]any{}, c), nil
				}
				return c1, err
			}
			return Update([]any{c1.Acc}, c1), nil
		},
	}
}

// SeparatedNonemptyList parses `item (sep item)*`; the accumulator is the
// list of item results, separators discarded.
func SeparatedNonemptyList(item, sep Parser) Parser {
	tail := Treat(Then(sep, item), func(acc any) any {
		return acc.(Pair).Second
	})
	return Parser{
		Desc: "separated_nonempty_list",
		Process: func(c Cursor) (Cursor, error) {
			c1, err := Then(item, Many(tail)).Process(c)
			if err != nil {
				return c1, err
			}
			pair := c1.Acc.(Pair)
			rest := pair.Second.([]any)
			return Update(prepend(pair.First, rest), c1), nil
		},
	}
}

// SeparatedList parses `item (sep item)*`, or succeeds with the empty list
// if the first item fails.
func SeparatedList(item, sep Parser) Parser {
	return Or(SeparatedNonemptyList(item, sep), Nil()).WithDesc("sep_list")
}

// IfTest runs p; if pred(p.Acc) is false, signals a recoverable failure.
// The position p already advanced to is discarded by the caller: IfTest
// must only ever be composed inside a backtrackable scope (Or, Many,
// Possibly, SeparatedList, First, GenFirst), which is what rolls the
// position back.
func IfTest(p Parser, pred func(any) bool) Parser {
	return Parser{
		Desc: "if_test(" + p.Desc + ")",
		Process: func(c Cursor) (Cursor, error) {
			c1, err := p.Process(c)
			if err != nil {
				return c1, err
			}
			if !pred(c1.Acc) {
				return c, NewRecoverableError("if_test: predicate rejected token")
			}
			return c1, nil
		},
	}
}

// IfValue parses if the next token's raw value equals v.
func IfValue(p Parser, v string) Parser {
	return IfTest(p, func(acc any) bool {
		tok, ok := acc.(token.Token)
		return ok && tok.Value == v
	}).WithDesc("if_value(" + v + ")")
}

// IfType parses if the next token's type is a member of ts.
func IfType(p Parser, ts []token.Type) Parser {
	set := make(map[token.Type]bool, len(ts))
	for _, t := range ts {
		set[t] = true
	}
	return IfTest(p, func(acc any) bool {
		tok, ok := acc.(token.Token)
		return ok && set[tok.Type]
	}).WithDesc("if_type")
}

// All sequentially parses an arbitrary-arity list of parsers and returns
// the ordered list of sub-accumulators.
func All(prs []Parser) Parser {
	return Parser{
		Desc: "all",
		Process: func(c Cursor) (Cursor, error) {
			results := make([]any, 0, len(prs))
			cur := c
			for _, pr := range prs {
				c1, err := pr.Process(cur)
				if err != nil {
					return c1, err
				}
				results = append(results, c1.Acc)
				cur = c1
			}
			return Update(results, cur), nil
		},
	}
}

// First parses the first parser in prs that does not fail recoverably. A
// fatal failure from any alternative propagates immediately, bypassing the
// remaining alternatives.
func First(prs []Parser) Parser {
	return Parser{
		Desc: "first",
		Process: func(c Cursor) (Cursor, error) {
			return firstFrom(prs, c)
		},
	}
}

func firstFrom(prs []Parser, c Cursor) (Cursor, error) {
	if len(prs) == 0 {
		return c, NewRecoverableError("first: no alternative matched")
	}
	c1, err := prs[0].Process(c)
	if err == nil {
		return c1, nil
	}
	if !IsRecoverable(err) {
		return c1, err
	}
	return firstFrom(prs[1:], c)
}

func prepend(x any, xs []any) []any {
	out := make([]any, 0, len(xs)+1)
	out = append(out, x)
	out = append(out, xs...)
	return out
}
