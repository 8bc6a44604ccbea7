package combinator

import (
	"testing"

	"github.com/lab156/cnlcombinator/token"
)

func val(t token.Token) string { return t.Value }

func nextValue(v string) Parser {
	return IfValue(NextToken(testSupport{}), v)
}

// S1: stream [WORD:let, VAR:x, WORD:be, WORD:real]; parser
// next_word("let") + var() + next_word("be") + next_any_word; expected
// success, accumulator shape (((let,x),be),real), final pos=4.
func TestSequenceShapeS1(t *testing.T) {
	s := []token.Token{
		{Type: token.WORD, Value: "let"},
		{Type: token.VAR, Value: "x"},
		{Type: token.WORD, Value: "be"},
		{Type: token.WORD, Value: "real"},
	}
	p := Then(Then(Then(nextValue("let"), NextToken(testSupport{})), nextValue("be")), NextToken(testSupport{}))
	c, err := p.Process(Init(s))
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if c.Pos != 4 {
		t.Fatalf("expected pos 4, got %d", c.Pos)
	}
	outer := c.Acc.(Pair)
	if val(outer.Second.(token.Token)) != "real" {
		t.Fatalf("expected outer.Second == real")
	}
	mid := outer.First.(Pair)
	if val(mid.Second.(token.Token)) != "be" {
		t.Fatalf("expected mid.Second == be")
	}
	inner := mid.First.(Pair)
	if val(inner.First.(token.Token)) != "let" || val(inner.Second.(token.Token)) != "x" {
		t.Fatalf("unexpected innermost pair: %+v", inner)
	}
}

func TestOrPrefersFirstOnDoubleSuccess(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: "a"}}
	a := Treat(NextToken(testSupport{}), func(any) any { return "A" })
	b := Treat(NextToken(testSupport{}), func(any) any { return "B" })
	c, err := Or(a, b).Process(Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if c.Acc != "A" {
		t.Fatalf("Or must prefer the first alternative, got %v", c.Acc)
	}
}

func TestOrFallsBackOnRecoverableFailure(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: "b"}}
	a := nextValue("a")
	b := nextValue("b")
	c, err := Or(a, b).Process(Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if val(c.Acc.(token.Token)) != "b" {
		t.Fatalf("expected fallback to match 'b'")
	}
}

func TestOrDoesNotCatchFatal(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: "x"}}
	a := NoCatch(nextValue("a"), "expected a")
	b := nextValue("x")
	_, err := Or(a, b).Process(Init(s))
	if !IsFatal(err) {
		t.Fatalf("expected fatal error to bypass alternative, got %v", err)
	}
}

func TestComposeReplacesAccumulator(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: "a"}, {Type: token.WORD, Value: "b"}}
	p := Compose(NextToken(testSupport{}), NextToken(testSupport{}))
	c, err := p.Process(Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if val(c.Acc.(token.Token)) != "b" {
		t.Fatalf("expected compose to keep only b's result, got %v", c.Acc)
	}
}

func TestTreat(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: "a"}}
	p := Treat(NextToken(testSupport{}), func(acc any) any {
		return val(acc.(token.Token)) + "!"
	})
	c, err := p.Process(Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if c.Acc != "a!" {
		t.Fatalf("unexpected treat result: %v", c.Acc)
	}
}

func TestIdentityAndNil(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: "a"}}
	c0 := Update("seed", Init(s))
	c1, err := Identity().Process(c0)
	if err != nil || c1.Acc != "seed" {
		t.Fatalf("identity must preserve accumulator")
	}
	c2, err := Nil().Process(c0)
	if err != nil {
		t.Fatal(err)
	}
	if lst, ok := c2.Acc.([]any); !ok || len(lst) != 0 {
		t.Fatalf("nil must replace accumulator with empty list, got %v", c2.Acc)
	}
}

// Invariant 4: associativity of sequence (up to pairing shape): final pos
// and flattened token sequence agree between ((A+B)+C) and (A+(B+C)).
func TestSequenceAssociativity(t *testing.T) {
	s := []token.Token{
		{Type: token.WORD, Value: "a"},
		{Type: token.WORD, Value: "b"},
		{Type: token.WORD, Value: "c"},
	}
	a, b, cc := NextToken(testSupport{}), NextToken(testSupport{}), NextToken(testSupport{})
	left := Then(Then(a, b), cc)
	right := Then(a, Then(b, cc))

	cl, errl := left.Process(Init(s))
	cr, errr := right.Process(Init(s))
	if errl != nil || errr != nil {
		t.Fatalf("unexpected errors: %v %v", errl, errr)
	}
	if cl.Pos != cr.Pos {
		t.Fatalf("positions differ: %d vs %d", cl.Pos, cr.Pos)
	}
	if flatten(cl.Acc) != flatten(cr.Acc) {
		t.Fatalf("flattened sequences differ: %q vs %q", flatten(cl.Acc), flatten(cr.Acc))
	}
	if flatten(cl.Acc) != "abc" {
		t.Fatalf("expected flattened sequence \"abc\", got %q", flatten(cl.Acc))
	}
}

func flatten(acc any) string {
	switch v := acc.(type) {
	case Pair:
		return flatten(v.First) + flatten(v.Second)
	case token.Token:
		return v.Value
	default:
		return ""
	}
}
