/*
Package wordshape coerces variable- and integer-shaped tokens into the
canonical WORD/ATOMIC_IDENTIFIER shapes the grammar layer matches against.
*/
package wordshape

import (
	"strings"
	"unicode/utf8"

	"github.com/lab156/cnlcombinator/synonym"
	"github.com/lab156/cnlcombinator/token"
)

// CanWordify reports whether tok may be treated as a word: either it
// already is one, or it is a VAR holding a single alphabetic character —
// accepting mathematical idioms like "let A be".
func CanWordify(tok token.Token) bool {
	if tok.Type == token.WORD {
		return true
	}
	if tok.Type == token.VAR {
		r, size := utf8.DecodeRuneInString(tok.Value)
		return size == len(tok.Value) && isAlpha(r)
	}
	return false
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Wordify coerces tok into a WORD-typed token whose value is the
// lowercased, synonym-canonicalized form of tok.Value — matching a word
// parser's accumulator to the class representative rather than the raw
// surface form. Lexpos is unchanged. Returns tok itself, unmodified, when
// it is already in this shape. Idempotent: Wordify(Wordify(t,reg),reg) ==
// Wordify(t,reg).
func Wordify(tok token.Token, reg *synonym.Registry) token.Token {
	value := reg.Canonical(strings.ToLower(tok.Value))
	if tok.Type == token.WORD && tok.Value == value {
		return tok
	}
	w := tok.Clone()
	w.Type = token.WORD
	w.Value = value
	return w
}

// Atomic coerces an INTEGER or WORD token into an ATOMIC_IDENTIFIER token,
// and passes an already-ATOMIC_IDENTIFIER token through unchanged. Every
// branch returns the coerced token directly — the distilled source's
// inconsistent bare-result return on the pass-through branch is unified
// here (see the Open Question this resolves).
func Atomic(tok token.Token) (token.Token, bool) {
	switch tok.Type {
	case token.ATOMIC_IDENTIFIER:
		return tok.Clone(), true
	case token.INTEGER, token.WORD:
		a := tok.Clone()
		a.Type = token.ATOMIC_IDENTIFIER
		return a, true
	default:
		return token.Token{}, false
	}
}
