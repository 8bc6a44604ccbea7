package combinator

import (
	"testing"

	"github.com/lab156/cnlcombinator/token"
)

func TestGenFirstTriesInOrder(t *testing.T) {
	s := wtoks("c")
	gen := FromSlice([]Parser{nextValue("a"), nextValue("b"), nextValue("c")})
	c, err := GenFirst(gen).Process(Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if val(c.Acc.(token.Token)) != "c" {
		t.Fatalf("expected to land on 'c', got %v", c.Acc)
	}
}

func TestGenFirstExhausted(t *testing.T) {
	s := wtoks("z")
	gen := FromSlice([]Parser{nextValue("a"), nextValue("b")})
	_, err := GenFirst(gen).Process(Init(s))
	if err == nil || !IsRecoverable(err) {
		t.Fatalf("expected recoverable exhaustion error, got %v", err)
	}
}

func TestGenFirstPropagatesFatal(t *testing.T) {
	s := wtoks("x")
	gen := FromSlice([]Parser{NoCatch(nextValue("a"), "boom"), nextValue("x")})
	_, err := GenFirst(gen).Process(Init(s))
	if !IsFatal(err) {
		t.Fatalf("expected fatal error to bypass remaining alternatives, got %v", err)
	}
}

// GenFirst must build a fresh generator per Process call, so the same
// Parser value can be reused across cursors (e.g. nested inside Many)
// without exhausting state from a previous application.
func TestGenFirstFreshGeneratorPerApplication(t *testing.T) {
	p := GenFirst(FromSlice([]Parser{nextValue("a")}))
	_, err1 := p.Process(Init(wtoks("a")))
	_, err2 := p.Process(Init(wtoks("a")))
	if err1 != nil || err2 != nil {
		t.Fatalf("expected both applications to succeed independently: %v %v", err1, err2)
	}
}

func TestGenFirstFromFunc(t *testing.T) {
	alts := []Parser{nextValue("a"), nextValue("b")}
	gen := func() Generator {
		i := 0
		return FromFunc(func() (Parser, bool) {
			if i >= len(alts) {
				return Parser{}, false
			}
			pr := alts[i]
			i++
			return pr, true
		})
	}
	c, err := GenFirst(gen).Process(Init(wtoks("b")))
	if err != nil {
		t.Fatal(err)
	}
	if val(c.Acc.(token.Token)) != "b" {
		t.Fatalf("expected to match 'b'")
	}
}
