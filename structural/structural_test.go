package structural

import (
	"testing"

	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/synonym"
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

func varTok(v string) token.Token { return token.Token{Type: token.VAR, Value: v} }
func wordTok(v string) token.Token { return token.Token{Type: token.WORD, Value: v} }

func varParser() combinator.Parser {
	return combinator.IfType(combinator.NextToken(testSupport{}), []token.Type{token.VAR})
}

// S4: stream [LPAREN, VAR:x, COMMA, VAR:y, RPAREN] with
// paren(comma_nonempty_list(var())); accumulator is [VAR:x, VAR:y], parens stripped.
func TestParenCommaListScenarioS4(t *testing.T) {
	s := []token.Token{
		{Type: token.WORD, Value: "("},
		varTok("x"),
		{Type: token.WORD, Value: ","},
		varTok("y"),
		{Type: token.WORD, Value: ")"},
	}
	p := Paren(testSupport{}, CommaNonemptyList(testSupport{}, varParser()))
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	lst := c.Acc.([]any)
	if len(lst) != 2 {
		t.Fatalf("expected 2 items, got %d", len(lst))
	}
	if lst[0].(token.Token).Value != "x" || lst[1].(token.Token).Value != "y" {
		t.Fatalf("unexpected list contents: %v", lst)
	}
	if c.Pos != 5 {
		t.Fatalf("expected pos 5, got %d", c.Pos)
	}
}

// S5: stream [LBRACE, WORD:a, SEMI, WORD:b, SEMI, WORD:c, RBRACE] with
// brace_semi(); accumulator is three single-token balanced groups.
func TestBraceSemiScenarioS5(t *testing.T) {
	s := []token.Token{
		{Type: token.WORD, Value: "{"},
		wordTok("a"),
		{Type: token.WORD, Value: ";"},
		wordTok("b"),
		{Type: token.WORD, Value: ";"},
		wordTok("c"),
		{Type: token.WORD, Value: "}"},
	}
	item := combinator.IfTest(combinator.NextToken(testSupport{}), func(acc any) bool {
		return !isDelimiter(acc.(token.Token).Value) && acc.(token.Token).Value != ";"
	})
	p := BraceSemi(testSupport{}, item)
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	lst := c.Acc.([]any)
	if len(lst) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(lst))
	}
}

// Invariant 10: balanced_condition applied to a delimiter-balanced run
// consumes exactly that run; applied to a stream with an unmatched
// delimiter, it stops at the unmatched token without consuming it.
func TestBalancedConditionConsumesExactRun(t *testing.T) {
	s := []token.Token{
		wordTok("a"),
		{Type: token.WORD, Value: "("},
		wordTok("b"),
		{Type: token.WORD, Value: ")"},
		wordTok("c"),
	}
	pred := func(tok token.Token) bool { return true }
	p := BalancedCondition(testSupport{}, pred)
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if c.Pos != len(s) {
		t.Fatalf("expected to consume the entire balanced run, got pos %d out of %d", c.Pos, len(s))
	}
}

// An empty balanced run is a zero-or-more match (mirrors the distilled
// source's gen_first(...).many()), not a one-or-more match: it must
// succeed without consuming input when no token at all qualifies.
func TestBalancedConditionMatchesEmptyRun(t *testing.T) {
	s := []token.Token{{Type: token.WORD, Value: ")"}}
	pred := func(tok token.Token) bool { return true }
	p := BalancedCondition(testSupport{}, pred)
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatalf("expected empty balanced run to succeed, got: %v", err)
	}
	if c.Pos != 0 {
		t.Fatalf("expected a zero-width match, got pos %d", c.Pos)
	}
	lst, ok := c.Acc.([]any)
	if !ok || len(lst) != 0 {
		t.Fatalf("expected an empty flat accumulator, got %v", c.Acc)
	}
}

// The per-step chunks (non-delimiter runs and whole bracketed groups) are
// flattened into one flat token list, not a list of chunks.
func TestBalancedConditionFlattensChunks(t *testing.T) {
	s := []token.Token{
		wordTok("a"),
		{Type: token.WORD, Value: "("},
		wordTok("b"),
		{Type: token.WORD, Value: ")"},
		wordTok("c"),
	}
	pred := func(tok token.Token) bool { return true }
	p := BalancedCondition(testSupport{}, pred)
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	lst, ok := c.Acc.([]any)
	if !ok {
		t.Fatalf("expected a flat []any accumulator, got %T", c.Acc)
	}
	for i, el := range lst {
		if _, ok := el.(token.Token); !ok {
			t.Fatalf("expected element %d to be a token.Token, got %T (accumulator not flat)", i, el)
		}
	}
	if len(lst) != len(s) {
		t.Fatalf("expected %d flattened tokens, got %d: %v", len(s), len(lst), lst)
	}
}

func TestBalancedConditionStopsAtUnmatchedDelimiter(t *testing.T) {
	s := []token.Token{
		wordTok("a"),
		{Type: token.WORD, Value: ")"},
	}
	pred := func(tok token.Token) bool { return true }
	p := BalancedCondition(testSupport{}, pred)
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if c.Pos != 1 {
		t.Fatalf("expected to stop at the unmatched delimiter, got pos %d", c.Pos)
	}
}

func TestAndCommaNonemptyList(t *testing.T) {
	reg := synonym.New()
	s := []token.Token{
		wordTok("a"), {Type: token.WORD, Value: ","},
		wordTok("b"), wordTok("and"), wordTok("c"),
	}
	item := combinator.IfTest(combinator.NextToken(testSupport{}), func(acc any) bool {
		v := acc.(token.Token).Value
		return v != "," && v != "and"
	})
	p := AndCommaNonemptyList(testSupport{}, reg, item)
	c, err := p.Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Acc.([]any)) != 3 {
		t.Fatalf("expected 3 items, got %v", c.Acc)
	}
}

func TestUntilStopsBeforeMarker(t *testing.T) {
	s := []token.Token{wordTok("a"), wordTok("b"), wordTok("stop"), wordTok("c")}
	body := combinator.NextToken(testSupport{})
	stop := lexruleNextValue("stop")
	c, err := Until(testSupport{}, body, stop).Process(combinator.Init(s))
	if err != nil {
		t.Fatal(err)
	}
	if c.Pos != 2 {
		t.Fatalf("expected pos 2 (stopping before 'stop'), got %d", c.Pos)
	}
	if len(c.Acc.([]any)) != 2 {
		t.Fatalf("expected 2 accumulated results, got %v", c.Acc)
	}
}

func lexruleNextValue(v string) combinator.Parser {
	return value(testSupport{}, v)
}
