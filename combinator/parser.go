package combinator

// Parser is a pure transformation from Cursor to Cursor that may fail. It
// carries a human-readable description used for diagnostics, and an
// optional error message attached by commit points. Parsers are values:
// building one never mutates anything, and a Parser may be applied to many
// cursors.
type Parser struct {
	Process func(Cursor) (Cursor, error)
	Desc    string
	ErrMsg  string
}

// WithDesc returns a copy of p with its description replaced; useful for
// grammar authors who want a readable name in diagnostics without
// repeating the combinator that built it.
func (p Parser) WithDesc(desc string) Parser {
	p.Desc = desc
	return p
}

// NextToken is the primitive parser: it consumes exactly one token from the
// stream, or fails with ErrEndOfInput.
func NextToken(sup Support) Parser {
	return Parser{
		Desc: "next_token",
		Process: func(c Cursor) (Cursor, error) {
			return Next(c, sup)
		},
	}
}

// Then runs a, then b on a's output cursor. The result accumulator is the
// ordered Pair (a.Acc, b.Acc). It fails if either fails; the failure of b
// propagates with a already consumed — backtracking at this boundary is
// the caller's responsibility via Or or a commit point.
func Then(a, b Parser) Parser {
	return Parser{
		Desc: a.Desc + "+" + b.Desc,
		Process: func(c Cursor) (Cursor, error) {
			c1, err := a.Process(c)
			if err != nil {
				return c, err
			}
			c2, err := b.Process(c1)
			if err != nil {
				return c1, err
			}
			return Update(Pair{First: c1.Acc, Second: c2.Acc}, c2), nil
		},
	}
}

// Or runs a; on a recoverable failure it runs b on the original cursor.
// Non-recoverable (fatal) failures bypass b. Ordered: a is preferred, so
// for parsers a, b that both succeed on c, Or(a, b).Process(c) ==
// a.Process(c).
func Or(a, b Parser) Parser {
	return Parser{
		Desc: "(" + a.Desc + " | " + b.Desc + ")",
		Process: func(c Cursor) (Cursor, error) {
			c1, err := a.Process(c)
			if err == nil {
				return c1, nil
			}
			if !IsRecoverable(err) {
				return c1, err
			}
			return b.Process(c)
		},
	}
}

// Compose feeds a's output cursor into b; unlike Then, the accumulator is
// replaced by b's, not paired with a's.
func Compose(a, b Parser) Parser {
	return Parser{
		Desc: a.Desc + " ∘ " + b.Desc,
		Process: func(c Cursor) (Cursor, error) {
			c1, err := a.Process(c)
			if err != nil {
				return c1, err
			}
			return b.Process(c1)
		},
	}
}

// Treat runs p, then replaces the accumulator with f(p.Acc). The span is
// preserved.
func Treat(p Parser, f func(any) any) Parser {
	return Parser{
		Desc: p.Desc,
		Process: func(c Cursor) (Cursor, error) {
			c1, err := p.Process(c)
			if err != nil {
				return c1, err
			}
			return Update(f(c1.Acc), c1), nil
		},
	}
}

// Identity consumes nothing and preserves the accumulator.
func Identity() Parser {
	return Parser{
		Desc: "identity",
		Process: func(c Cursor) (Cursor, error) {
			return c, nil
		},
	}
}

// Nil consumes nothing and replaces the accumulator with an empty list.
func Nil() Parser {
	return Treat(Identity(), func(any) any { return []any{} })
}
