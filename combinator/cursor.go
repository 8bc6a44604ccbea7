/*
Package combinator implements the parser-combinator kernel: an immutable
token-stream cursor and the composable Parser abstraction built on top of
it, together with the commit-point machinery that turns a recoverable
failure into a fatal, user-visible diagnostic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combinator

import "github.com/lab156/cnlcombinator/token"

// Support supplies the two lexer-owned operations the combinator layer
// needs but does not implement itself: the character length of a token
// (used to compute a cursor's span) and word singularization (used by the
// synonym/wordshape layers). Keeping this as an injected interface, rather
// than importing a concrete lexer package, is what lets the kernel stay
// fully testable without a real lexer wired in.
type Support interface {
	TokenLength(token.Token) int
	Singularize(word string) string
}

// Cursor is an immutable position into a token stream, paired with an
// accumulator and a source span. Stream is shared and never mutated or
// reallocated; two cursors sharing a Stream may be held simultaneously —
// this is the backtracking substrate. Advancing a Cursor never mutates it;
// every operation returns a new value.
type Cursor struct {
	Stream []token.Token
	Pos    int
	Acc    any
	Start  int
	Stop   int
}

// Init produces the initial cursor over stream: Pos=0, a nil accumulator,
// and a zero span.
func Init(stream []token.Token) Cursor {
	return Cursor{Stream: stream}
}

// Next advances the cursor by one token. It fails with ErrEndOfInput if the
// cursor is already at the end of the stream. On success, Acc is the
// just-consumed token, and the span covers exactly that token.
func Next(c Cursor, sup Support) (Cursor, error) {
	if c.Pos >= len(c.Stream) {
		return c, ErrEndOfInput
	}
	tok := c.Stream[c.Pos]
	start := tok.Lexpos
	return Cursor{
		Stream: c.Stream,
		Pos:    c.Pos + 1,
		Acc:    tok,
		Start:  start,
		Stop:   start + sup.TokenLength(tok),
	}, nil
}

// Update returns a cursor identical to c except that the accumulator is
// replaced by acc; the span is preserved. This is the sole way a combinator
// rewrites the payload without consuming input.
func Update(acc any, c Cursor) Cursor {
	return Cursor{
		Stream: c.Stream,
		Pos:    c.Pos,
		Acc:    acc,
		Start:  c.Start,
		Stop:   c.Stop,
	}
}

// Span returns the source range covered by the cursor's last consumed
// region.
func (c Cursor) Span() token.Span {
	return token.Span{Start: c.Start, Stop: c.Stop}
}

// Pair is the accumulator shape produced by Then (sequence): an ordered
// pair of the two sub-results. It exists so call sites destructure a named
// shape instead of an untyped 2-element slice.
type Pair struct {
	First  any
	Second any
}
