/*
Package lex is a small, swappable lexmachine-based tokenizer that feeds the
combinator/grammar layers. It is a demonstration lexer — real callers are
free to write their own token source, since nothing above combinator.Support
depends on lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lex

import (
	"fmt"
	"io"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/lab156/cnlcombinator/token"
)

var punctuation = []string{"(", ")", "[", "]", "{", "}", ",", ";", ":", "."}

// Lexer tokenizes a rune stream into the WORD/VAR/INTEGER tokens the
// combinator/grammar layers expect. Punctuation is represented as
// WORD-typed tokens carrying the punctuation character as their value,
// matching the convention the grammar and structural packages assume.
type Lexer struct {
	scanner *lexmachine.Scanner
}

func tokenAction(typ token.Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token.Token{Type: typ, Value: string(m.Bytes), Lexpos: m.TC}, nil
	}
}

func wordAction() lexmachine.Action {
	return tokenAction(token.WORD)
}

func buildLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`[0-9]+`), tokenAction(token.INTEGER))
	// two-or-more letter identifiers are WORDs; maximal munch makes this
	// win over the single-letter VAR rule below whenever it can.
	lx.Add([]byte(`[A-Za-z][A-Za-z0-9]+`), tokenAction(token.WORD))
	lx.Add([]byte(`[A-Za-z]`), tokenAction(token.VAR))
	for _, p := range punctuation {
		lx.Add([]byte("\\"+strings.Join(strings.Split(p, ""), "\\")), wordAction())
	}
	lx.Add([]byte(`( |\t|\n|\r)+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil
	})
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
}

// New builds a Lexer over the full contents of r.
func New(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lx, err := buildLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner(data)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner}, nil
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	tok, err, eof := l.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			l.scanner.TC = ui.FailTC
			tok, err, eof = l.scanner.Next()
			continue
		}
		return token.Token{}, fmt.Errorf("lex: %w", err)
	}
	if eof {
		return token.Token{}, io.EOF
	}
	return tok.(token.Token), nil
}

// All drains the lexer into a slice, for callers that want the whole
// token stream up front (combinator.Init takes a slice).
func All(l *Lexer) ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}

// TokenLength implements combinator.Support: the token's textual length.
func (l *Lexer) TokenLength(t token.Token) int { return len(t.Value) }

// Singularize implements combinator.Support with a minimal heuristic
// suffix strip — enough for the demo grammar's plural nouns, not a real
// morphological analyzer.
func (l *Lexer) Singularize(w string) string {
	lower := strings.ToLower(w)
	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 3:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "es") && len(lower) > 2:
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 1:
		return lower[:len(lower)-1]
	}
	return lower
}
