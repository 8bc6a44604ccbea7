package grammar

import (
	"strings"

	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/synonym"
	"github.com/lab156/cnlcombinator/token"
	"github.com/lab156/cnlcombinator/wordshape"
)

// Atomic matches an atomic identifier: an INTEGER or WORD token coerced to
// ATOMIC_IDENTIFIER (WORDs are synonymized first), or a pre-existing
// ATOMIC_IDENTIFIER passed through. Atomic identifiers may not be a single
// letter — those are VAR tokens, handled by Var.
func Atomic(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	return combinator.Parser{
		Desc: "atomic",
		Process: func(c combinator.Cursor) (combinator.Cursor, error) {
			c1, err := combinator.Next(c, sup)
			if err != nil {
				return c1, err
			}
			tok := c1.Acc.(token.Token)
			if tok.Type == token.WORD {
				tok = tok.Clone()
				tok.Value = reg.Canonical(strings.ToLower(sup.Singularize(tok.Value)))
			}
			coerced, ok := wordshape.Atomic(tok)
			if !ok {
				return c1, combinator.NewRecoverableError("atomic: token is not coercible")
			}
			return combinator.Update(coerced, c1), nil
		},
	}
}

// Var matches a VAR-typed token.
func Var(sup combinator.Support) combinator.Parser {
	return combinator.IfType(combinator.NextToken(sup), []token.Type{token.VAR}).WithDesc("var")
}

// VarOrAtomic matches either a variable or an atomic identifier.
func VarOrAtomic(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	return combinator.Or(Var(sup), Atomic(sup, reg)).WithDesc("var_or_atomic")
}

// VarOrAtomics matches one or more variables/atomic identifiers.
func VarOrAtomics(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	return combinator.Plus(VarOrAtomic(sup, reg)).WithDesc("var_or_atomics")
}

// HierarchicalIdentifier matches a HIERARCHICAL_IDENTIFIER-typed token —
// always case-sensitive, unlike wordlike atomic identifiers.
func HierarchicalIdentifier(sup combinator.Support) combinator.Parser {
	return combinator.IfType(combinator.NextToken(sup), []token.Type{token.HIERARCHICAL_IDENTIFIER}).WithDesc("hierarchical_identifier")
}

// Identifier matches an atomic or hierarchical identifier.
func Identifier(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	return combinator.Or(Atomic(sup, reg), HierarchicalIdentifier(sup)).WithDesc("identifier")
}
