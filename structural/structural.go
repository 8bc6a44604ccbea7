/*
Package structural implements delimiter-balanced matching and the
separated-list/until combinators that sit above the lexical layer:
parenthesized/bracketed/braced groups, comma/and/or lists, and the
balanced-condition run used by statement bodies and type annotations.
*/
package structural

import (
	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/lexrule"
	"github.com/lab156/cnlcombinator/synonym"
	"github.com/lab156/cnlcombinator/token"
)

// Delimit consumes left, then inner, then right; the accumulator is the
// flat list [left] ++ inner_list ++ [right].
func Delimit(left, inner, right combinator.Parser) combinator.Parser {
	seq := combinator.Then(combinator.Then(left, inner), right)
	return combinator.Treat(seq, func(acc any) any {
		outer := acc.(combinator.Pair)
		mid := outer.First.(combinator.Pair)
		leftTok := mid.First
		innerList, _ := mid.Second.([]any)
		rightTok := outer.Second
		out := make([]any, 0, len(innerList)+2)
		out = append(out, leftTok)
		out = append(out, innerList...)
		out = append(out, rightTok)
		return out
	}).WithDesc("delimit")
}

// DelimitStrip is Delimit, but the accumulator is the inner result alone,
// with the delimiters discarded.
func DelimitStrip(left, inner, right combinator.Parser) combinator.Parser {
	seq := combinator.Then(combinator.Then(left, inner), right)
	return combinator.Treat(seq, func(acc any) any {
		outer := acc.(combinator.Pair)
		mid := outer.First.(combinator.Pair)
		return mid.Second
	}).WithDesc("delimit_strip")
}

func value(sup combinator.Support, v string) combinator.Parser {
	return lexrule.NextValue(sup, v)
}

// Paren wraps inner in `(` `)`, accumulator is inner alone.
func Paren(sup combinator.Support, inner combinator.Parser) combinator.Parser {
	return DelimitStrip(value(sup, "("), inner, value(sup, ")")).WithDesc("paren")
}

// Bracket wraps inner in `[` `]`, accumulator is inner alone.
func Bracket(sup combinator.Support, inner combinator.Parser) combinator.Parser {
	return DelimitStrip(value(sup, "["), inner, value(sup, "]")).WithDesc("bracket")
}

// Brace wraps inner in `{` `}`, accumulator is inner alone.
func Brace(sup combinator.Support, inner combinator.Parser) combinator.Parser {
	return DelimitStrip(value(sup, "{"), inner, value(sup, "}")).WithDesc("brace")
}

var delimiterValues = map[string]bool{
	"(": true, ")": true, "[": true, "]": true, "{": true, "}": true,
}

func isDelimiter(v string) bool {
	return delimiterValues[v]
}

// CommaNonemptyList parses a comma-separated nonempty list of item.
func CommaNonemptyList(sup combinator.Support, item combinator.Parser) combinator.Parser {
	return combinator.SeparatedNonemptyList(item, value(sup, ",")).WithDesc("comma_nonempty_list")
}

// CommaList parses a comma-separated list of item, possibly empty.
func CommaList(sup combinator.Support, item combinator.Parser) combinator.Parser {
	return combinator.SeparatedList(item, value(sup, ",")).WithDesc("comma_list")
}

// AndCommaNonemptyList parses a nonempty list separated by either commas
// or the word "and" — e.g. "a, b and c". A comma directly followed by
// "and" is two separators, not one. Resolves the distilled source's
// undefined `and_comma_nonempty_list` as a synonym for this parser.
func AndCommaNonemptyList(sup combinator.Support, reg *synonym.Registry, item combinator.Parser) combinator.Parser {
	sep := combinator.Or(value(sup, ","), lexrule.NextWord(sup, reg, "and"))
	return combinator.SeparatedNonemptyList(item, sep).WithDesc("andcomma_nonempty_list")
}

// OrNonemptyList parses a nonempty list separated by the word "or".
func OrNonemptyList(sup combinator.Support, reg *synonym.Registry, item combinator.Parser) combinator.Parser {
	sep := lexrule.NextWord(sup, reg, "or")
	return combinator.SeparatedNonemptyList(item, sep).WithDesc("or_nonempty_list")
}

// BalancedCondition parses a maximal run of tokens, possibly empty,
// balanced with respect to (){}[], where every token at the outermost
// nesting level satisfies pred and is not itself a delimiter. Lazily
// enumerates, via GenFirst, the two productions available at each step: a
// non-delimiter run satisfying pred, or a balanced bracketed/braced/
// parenthesized subsequence whose inner tokens are unrestricted. The
// per-step chunks are concatenated one level deep into a single list; a
// group nested inside another group stays a nested list.
func BalancedCondition(sup combinator.Support, pred func(token.Token) bool) combinator.Parser {
	var self func() combinator.Parser
	self = func() combinator.Parser {
		return combinator.GenFirst(func() combinator.Generator {
			step := 0
			return combinator.FromFunc(func() (combinator.Parser, bool) {
				switch step {
				case 0:
					step++
					return nonDelimiterRun(sup, pred), true
				case 1:
					step++
					return balancedSubsequence(sup, self), true
				default:
					return combinator.Parser{}, false
				}
			})
		})
	}
	return combinator.Treat(combinator.Many(self()), flatten).WithDesc("balanced_condition")
}

// flatten concatenates a list of []any chunks into a single flat []any,
// passing through any element that is not itself a chunk unchanged.
func flatten(acc any) any {
	chunks := acc.([]any)
	out := make([]any, 0, len(chunks))
	for _, c := range chunks {
		if inner, ok := c.([]any); ok {
			out = append(out, inner...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func nonDelimiterRun(sup combinator.Support, pred func(token.Token) bool) combinator.Parser {
	tok := combinator.IfTest(combinator.NextToken(sup), func(acc any) bool {
		t := acc.(token.Token)
		return !isDelimiter(t.Value) && pred(t)
	})
	return combinator.Plus(tok).WithDesc("balanced_run")
}

// balancedSubsequence matches a single (), [] or {} group whose interior
// is unrestricted: any run of non-delimiter tokens interleaved with
// arbitrarily nested balanced groups of any of the three bracket kinds.
func balancedSubsequence(sup combinator.Support, _ func() combinator.Parser) combinator.Parser {
	var content func() combinator.Parser
	content = func() combinator.Parser {
		plainTok := combinator.IfTest(combinator.NextToken(sup), func(acc any) bool {
			return !isDelimiter(acc.(token.Token).Value)
		})
		nested := combinator.GenFirst(func() combinator.Generator {
			step := 0
			return combinator.FromFunc(func() (combinator.Parser, bool) {
				step++
				switch step {
				case 1:
					return plainTok, true
				case 2:
					return oneGroup(sup, content), true
				default:
					return combinator.Parser{}, false
				}
			})
		})
		return combinator.Many(nested)
	}
	return oneGroup(sup, content).WithDesc("balanced_subsequence")
}

func oneGroup(sup combinator.Support, content func() combinator.Parser) combinator.Parser {
	paren := Delimit(value(sup, "("), content(), value(sup, ")"))
	bracket := Delimit(value(sup, "["), content(), value(sup, "]"))
	brace := Delimit(value(sup, "{"), content(), value(sup, "}"))
	return combinator.First([]combinator.Parser{paren, bracket, brace})
}

// BraceSemi parses a brace-delimited, semicolon-separated nonempty list of
// item. Each element is whatever item matches; BraceSemi itself does not
// keep a semicolon out of an element.
func BraceSemi(sup combinator.Support, item combinator.Parser) combinator.Parser {
	list := combinator.SeparatedNonemptyList(item, value(sup, ";"))
	return Brace(sup, list).WithDesc("brace_semi")
}

// Until consumes tokens with body until stop succeeds (without consuming
// stop's match), accumulating body's results into a list.
func Until(sup combinator.Support, body, stop combinator.Parser) combinator.Parser {
	return combinator.Parser{
		Desc: "until",
		Process: func(c combinator.Cursor) (combinator.Cursor, error) {
			results := []any{}
			cur := c
			for {
				if _, err := stop.Process(cur); err == nil {
					return combinator.Update(results, cur), nil
				}
				next, err := body.Process(cur)
				if err != nil {
					if combinator.IsRecoverable(err) {
						return combinator.Update(results, cur), nil
					}
					return next, err
				}
				results = append(results, next.Acc)
				cur = next
			}
		},
	}
}
