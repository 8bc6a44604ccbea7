package combinator

import (
	"reflect"
	"testing"

	"github.com/lab156/cnlcombinator/token"
)

type testSupport struct{}

func (testSupport) TokenLength(t token.Token) int { return len(t.Value) }
func (testSupport) Singularize(w string) string {
	if len(w) > 1 && w[len(w)-1] == 's' {
		return w[:len(w)-1]
	}
	return w
}

func toks(vs ...string) []token.Token {
	out := make([]token.Token, len(vs))
	pos := 0
	for i, v := range vs {
		out[i] = token.Token{Type: token.WORD, Value: v, Lexpos: pos}
		pos += len(v) + 1
	}
	return out
}

func TestInitZeroed(t *testing.T) {
	s := toks("a", "b")
	c := Init(s)
	if c.Pos != 0 || c.Acc != nil || c.Start != 0 || c.Stop != 0 {
		t.Fatalf("unexpected initial cursor: %+v", c)
	}
	if !reflect.DeepEqual(c.Stream, s) {
		t.Fatalf("stream mismatch")
	}
}

func TestNextAdvancesAndSpans(t *testing.T) {
	s := toks("let", "x")
	c := Init(s)
	c1, err := Next(c, testSupport{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c1.Pos != 1 {
		t.Fatalf("expected pos 1, got %d", c1.Pos)
	}
	tok := c1.Acc.(token.Token)
	if tok.Value != "let" {
		t.Fatalf("expected 'let', got %q", tok.Value)
	}
	if c1.Start != 0 || c1.Stop != 3 {
		t.Fatalf("unexpected span %d..%d", c1.Start, c1.Stop)
	}
}

func TestNextEndOfInput(t *testing.T) {
	c := Init(nil)
	_, err := Next(c, testSupport{})
	if err != ErrEndOfInput {
		t.Fatalf("expected ErrEndOfInput, got %v", err)
	}
	if !IsRecoverable(err) {
		t.Fatalf("ErrEndOfInput must be recoverable")
	}
}

// Invariant 1: P(c) never mutates c.Stream.
func TestStreamImmutability(t *testing.T) {
	s := toks("a", "b", "c")
	c := Init(s)
	orig := append([]token.Token{}, s...)
	_, _ = Next(c, testSupport{})
	if !reflect.DeepEqual(s, orig) {
		t.Fatalf("stream was mutated")
	}
}

// Invariant 2: on success, pos_in <= pos_out <= len(stream).
func TestMonotonePosition(t *testing.T) {
	s := toks("a", "b")
	c := Init(s)
	c1, err := Next(c, testSupport{})
	if err != nil {
		t.Fatal(err)
	}
	if !(c.Pos <= c1.Pos && c1.Pos <= len(s)) {
		t.Fatalf("position not monotone: %d -> %d", c.Pos, c1.Pos)
	}
}

func TestUpdatePreservesSpan(t *testing.T) {
	s := toks("a")
	c := Init(s)
	c1, _ := Next(c, testSupport{})
	c2 := Update("replaced", c1)
	if c2.Start != c1.Start || c2.Stop != c1.Stop {
		t.Fatalf("Update must preserve span")
	}
	if c2.Acc != "replaced" {
		t.Fatalf("Update must replace accumulator")
	}
}
