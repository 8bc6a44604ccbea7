package grammar

import (
	"strconv"

	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/lexrule"
	"github.com/lab156/cnlcombinator/structural"
	"github.com/lab156/cnlcombinator/synonym"
	"github.com/lab156/cnlcombinator/token"
	"github.com/lab156/cnlcombinator/wordlist"
)

func notStructuralBoundary(tok token.Token) bool {
	switch tok.Value {
	case "end", "with", ":=", ";", ".", ",", "|", ":":
		return false
	}
	return true
}

// PostColonBalanced matches a balanced-condition run that stops before
// any of the sort-annotation boundary tokens ("end", "with", ":=", etc).
func PostColonBalanced(sup combinator.Support) combinator.Parser {
	return structural.BalancedCondition(sup, notStructuralBoundary).WithDesc("post_colon_balanced")
}

// OptColonType matches an optional `: <balanced>` type annotation,
// flattened to the inner balanced-run result (or an empty list if absent).
func OptColonType(sup combinator.Support) combinator.Parser {
	inner := combinator.Treat(
		combinator.Then(lexrule.NextValue(sup, ":"), PostColonBalanced(sup)),
		func(acc any) any { return acc.(combinator.Pair).Second },
	)
	return combinator.Treat(combinator.Possibly(inner), func(acc any) any {
		lst := acc.([]any)
		if len(lst) == 0 {
			return []any{}
		}
		return lst[0]
	}).WithDesc("opt_colon_type")
}

var metaCounter int

// MetaTok synthesizes a fresh META token, used to stand in for an absent
// sort annotation so downstream code always sees a token rather than a nil.
func MetaTok() token.Token {
	metaCounter++
	return token.Token{Type: token.META, Value: strconv.Itoa(metaCounter)}
}

// OptColonTypeMeta is OptColonType, but an absent annotation is replaced
// with a synthesized META token instead of an empty list.
func OptColonTypeMeta(sup combinator.Support) combinator.Parser {
	return combinator.Treat(OptColonType(sup), func(acc any) any {
		if lst, ok := acc.([]any); ok && len(lst) == 0 {
			return MetaTok()
		}
		return acc
	}).WithDesc("opt_colon_type_meta")
}

// AnnotatedVar matches `( var : type )`, type annotation optional.
func AnnotatedVar(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	inner := combinator.Then(Var(sup), OptColonType(sup))
	return structural.Paren(sup, inner).WithDesc("annotated_var")
}

// AnnotatedVars matches `( var+ : type )`, the type annotation defaulting
// to a META token when absent.
func AnnotatedVars(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	inner := combinator.Then(combinator.Plus(Var(sup)), OptColonTypeMeta(sup))
	return structural.Paren(sup, inner).WithDesc("annotated_vars")
}

// LetAnnotationPrefix matches "let x, y be [a] [fixed]".
func LetAnnotationPrefix(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	l := Lit(sup, reg)
	p := combinator.Then(lexrule.NextWord(sup, reg, "let"), structural.CommaNonemptyList(sup, Var(sup)))
	p = combinator.Then(p, lexrule.NextWord(sup, reg, "be"))
	p = combinator.Then(p, combinator.Possibly(l["a"]))
	p = combinator.Then(p, combinator.Possibly(lexrule.NextWord(sup, reg, "fixed")))
	return p.WithDesc("let_annotation_prefix")
}

// LetAnnotation matches either "fix/let <annotated sort vars>,..." or a
// let-annotation-prefix followed by a balanced sort description.
func LetAnnotation(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	fixForm := combinator.Then(
		lexrule.FirstWord(sup, reg, []string{"fix", "let"}),
		structural.CommaNonemptyList(sup, AnnotatedVars(sup, reg)),
	)
	prefixForm := combinator.Then(LetAnnotationPrefix(sup, reg), PostColonBalanced(sup))
	return combinator.Or(fixForm, prefixForm).WithDesc("let_annotation")
}

// Balanced matches an unrestricted balanced-condition run (predicate
// always true), used where the grammar accepts arbitrary bracket-balanced
// prose.
func Balanced(sup combinator.Support) combinator.Parser {
	return structural.BalancedCondition(sup, func(token.Token) bool { return true }).WithDesc("balanced")
}

// Assumption matches "let's assume [that] <balanced> ." or a
// let-annotation followed by ".".
func Assumption(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	l := Lit(sup, reg)
	assumptionPrefix := combinator.Then(combinator.Then(l["lets"], l["assume"]), combinator.Possibly(lexrule.NextWord(sup, reg, "that")))
	withBalanced := combinator.Then(combinator.Then(assumptionPrefix, Balanced(sup)), lexrule.NextValue(sup, "."))
	withLet := combinator.Then(LetAnnotation(sup, reg), lexrule.NextValue(sup, "."))
	return combinator.Or(withBalanced, withLet).WithDesc("assumption")
}

// AxiomPreamble matches "axiom <atomic> .".
func AxiomPreamble(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	l := Lit(sup, reg)
	return combinator.Then(combinator.Then(l["axiom"], Atomic(sup, reg)), lexrule.NextValue(sup, ".")).WithDesc("axiom_preamble")
}

// MoreoverStatement matches "moreover <balanced> .".
func MoreoverStatement(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	return combinator.Then(combinator.Then(lexrule.NextWord(sup, reg, "moreover"), Balanced(sup)), lexrule.NextValue(sup, ".")).WithDesc("moreover_statement")
}

// Axiom matches zero-or-more assumptions (with an optional trailing
// "then"), a balanced body, a terminating ".", and zero-or-more moreover
// statements.
func Axiom(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	l := Lit(sup, reg)
	possiblyAssumption := combinator.Then(combinator.Many(Assumption(sup, reg)), combinator.Possibly(l["then"]))
	p := combinator.Then(possiblyAssumption, Balanced(sup))
	p = combinator.Then(p, lexrule.NextValue(sup, "."))
	p = combinator.Then(p, combinator.Many(MoreoverStatement(sup, reg)))
	return p.WithDesc("axiom")
}

// RefItem matches a cross-reference item: an optional location keyword
// followed by an atomic identifier, in an and/comma-separated list.
func RefItem(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	item := combinator.Then(combinator.Possibly(LitLocation(sup, reg)), Atomic(sup, reg))
	return structural.AndCommaNonemptyList(sup, reg, item).WithDesc("ref_item")
}

// ByRef matches an optional "(by <ref_item>)" cross-reference clause.
func ByRef(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	inner := combinator.Then(lexrule.NextWord(sup, reg, "by"), RefItem(sup, reg))
	return combinator.Possibly(structural.Paren(sup, inner)).WithDesc("by_ref")
}

func wordListParser(sup combinator.Support, reg *synonym.Registry, words []string) combinator.Parser {
	prs := make([]combinator.Parser, len(words))
	for i, w := range words {
		prs[i] = lexrule.NextPhrase(sup, reg, splitWords(w))
	}
	return combinator.First(prs)
}

func splitWords(s string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
	}
	return out
}

// PhraseListTransition matches any transition phrase (from wordlist.Transition),
// with an optional trailing "that", consuming but discarding the match.
func PhraseListTransition(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	p := combinator.Then(wordListParser(sup, reg, wordlist.Transition), combinator.Possibly(lexrule.NextWord(sup, reg, "that")))
	return combinator.Compose(p, combinator.Nil()).WithDesc("phrase_list_transition")
}

// PhraseListFiller matches an optional "we", a filler verb, and an
// optional trailing "that", consuming but discarding the match.
func PhraseListFiller(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	p := combinator.Then(combinator.Possibly(lexrule.NextWord(sup, reg, "we")), wordListParser(sup, reg, wordlist.Filler))
	p = combinator.Then(p, combinator.Possibly(lexrule.NextWord(sup, reg, "that")))
	return combinator.Compose(p, combinator.Nil()).WithDesc("phrase_list_filler")
}

// PhraseListProofStatement matches one of a handful of canned proof
// connective phrases, consuming but discarding the match.
func PhraseListProofStatement(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	opts := combinator.First([]combinator.Parser{
		lexrule.NextPhrase(sup, reg, []string{"we", "proceed", "as", "follows"}),
		combinator.Then(combinator.Then(combinator.Then(
			lexrule.NextWord(sup, reg, "the"),
			lexrule.FirstWord(sup, reg, []string{"result", "lemma", "theorem", "proposition", "corollary"})),
			combinator.Possibly(lexrule.NextWord(sup, reg, "now"))),
			lexrule.NextWord(sup, reg, "follows")),
		lexrule.NextPhrase(sup, reg, []string{"the", "other", "cases", "are", "similar"}),
		combinator.Then(lexrule.NextPhrase(sup, reg, []string{"the", "proof", "is"}),
			lexrule.FirstWord(sup, reg, []string{"obvious", "trivial", "easy", "routine"})),
	})
	return combinator.Compose(opts, combinator.Nil()).WithDesc("phrase_list_proof_statement")
}
