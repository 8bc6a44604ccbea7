/*
Package token defines the lexeme record shared by the combinator kernel and
every layer built on top of it.

The lexer that produces these tokens is an external collaborator (see
package `lex` for a minimal, swappable implementation): this package only
fixes the shape both sides agree on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import "fmt"

// Type is a tag from a closed set of lexeme categories.
type Type string

// The closed set of token types the combinator layer understands.
const (
	WORD                    Type = "WORD"
	VAR                     Type = "VAR"
	INTEGER                 Type = "INTEGER"
	ATOMIC_IDENTIFIER       Type = "ATOMIC_IDENTIFIER"
	HIERARCHICAL_IDENTIFIER Type = "HIERARCHICAL_IDENTIFIER"
	META                    Type = "META"
)

// Token is an immutable lexeme: a type tag, a textual value, and a source
// offset. Tokens may be shallow-cloned for coercion (see Clone); a clone is
// independent, so backtracking never observes a mutation made by a
// discarded alternative.
type Token struct {
	Type   Type
	Value  string
	Lexpos int
}

// Clone returns an independent copy of t.
func (t Token) Clone() Token {
	return Token{Type: t.Type, Value: t.Value, Lexpos: t.Lexpos}
}

// String is a debug Stringer for tokens.
func (t Token) String() string {
	return fmt.Sprintf("%s:%q@%d", t.Type, t.Value, t.Lexpos)
}

// Span is a source-character range, denoting a start position and the
// position just behind the end.
type Span struct {
	Start int
	Stop  int
}

// Len returns the length of the span.
func (s Span) Len() int {
	return s.Stop - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s.Start, s.Stop)
}
