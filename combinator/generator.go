package combinator

// Generator is a lazy, stateful enumeration of parsers, standing in for the
// distilled spec's Python generator function. A Generator is consumed by
// exactly one GenFirst call and then discarded.
type Generator interface {
	// Next returns the next parser to try and true, or an undefined Parser
	// and false once the generator is exhausted.
	Next() (Parser, bool)
}

// GeneratorFunc builds a fresh Generator. GenFirst calls it once per
// Process invocation, so a single Parser value built from GenFirst can be
// applied to many cursors (e.g. inside Many) without a generator leaking
// state between applications.
type GeneratorFunc func() Generator

// GenFirst left-biased-alternates over a lazy enumeration of parsers,
// produced on demand by newGen. It stops on the first success or when the
// generator is exhausted; a fatal failure from any attempted alternative
// propagates immediately. Generator state is released on success or
// exhaustion simply by going out of scope.
func GenFirst(newGen GeneratorFunc) Parser {
	return Parser{
		Desc: "gen_first",
		Process: func(c Cursor) (Cursor, error) {
			gen := newGen()
			for {
				pr, ok := gen.Next()
				if !ok {
					return c, NewRecoverableError("gen_first: exhausted")
				}
				c1, err := pr.Process(c)
				if err == nil {
					return c1, nil
				}
				if !IsRecoverable(err) {
					return c1, err
				}
			}
		},
	}
}

// sliceGenerator adapts a plain slice of parsers (known ahead of time) to
// the Generator interface, for callers that have a finite but
// not-yet-fully-built list of alternatives and want GenFirst's
// one-at-a-time evaluation instead of First's eager slice.
type sliceGenerator struct {
	prs []Parser
	i   int
}

func (g *sliceGenerator) Next() (Parser, bool) {
	if g.i >= len(g.prs) {
		return Parser{}, false
	}
	pr := g.prs[g.i]
	g.i++
	return pr, true
}

// FromSlice wraps a fixed slice of parsers as a GeneratorFunc.
func FromSlice(prs []Parser) GeneratorFunc {
	return func() Generator {
		return &sliceGenerator{prs: prs}
	}
}

// funcGenerator adapts a plain Go function (called until it signals
// exhaustion) to the Generator interface.
type funcGenerator struct {
	next func() (Parser, bool)
}

func (g *funcGenerator) Next() (Parser, bool) {
	return g.next()
}

// FromFunc wraps a next-function as a Generator, for generators whose
// members are produced incrementally rather than precomputed into a slice
// (e.g. balanced_condition's bracket-variant expansion).
func FromFunc(next func() (Parser, bool)) Generator {
	return &funcGenerator{next: next}
}
