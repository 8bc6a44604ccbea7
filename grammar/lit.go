/*
Package grammar assembles the demonstrative phrase table and the small
production set (assumption, axiom, let-annotation, instruction,
moreover-statement) built entirely from lexrule and structural. It is not
a complete controlled-natural-language grammar — only enough to exercise
the combinator contracts end to end.
*/
package grammar

import (
	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/lexrule"
	"github.com/lab156/cnlcombinator/synonym"
)

// Lit builds the phrase table: parsers for small, canned word/phrase
// variants keyed by a mnemonic name, mirroring the distilled spec's `lit`
// dictionary. Built fresh per (sup, reg) pair since parsers close over
// them rather than reaching for ambient global state.
func Lit(sup combinator.Support, reg *synonym.Registry) map[string]combinator.Parser {
	fw := func(words ...string) combinator.Parser { return lexrule.FirstWord(sup, reg, words) }
	fp := func(phrases ...[]string) combinator.Parser { return lexrule.FirstPhrase(sup, reg, phrases) }
	np := func(words ...string) combinator.Parser { return lexrule.NextPhrase(sup, reg, words) }
	nw := func(w string) combinator.Parser { return lexrule.NextWord(sup, reg, w) }

	isPhrase := fp([]string{"is"}, []string{"are"}, []string{"be"}, []string{"to", "be"})

	l := map[string]combinator.Parser{
		"a":       fw("a", "an"),
		"article": fw("a", "an", "the"),
		"defined-as": fp(
			[]string{"said", "to", "be"},
			[]string{"defined", "as"},
			[]string{"defined", "to", "be"},
		),
		"is": isPhrase,
		"iff": combinator.Or(
			fp([]string{"iff"}, []string{"if", "and", "only", "if"}),
			combinator.Then(combinator.Then(isPhrase, combinator.Possibly(nw("the"))), nw("predicate")),
		),
		"denote":       fp([]string{"denote"}, []string{"stand", "for"}),
		"do":           fw("do", "does"),
		"equal":        np("equal", "to"),
		"has":          fw("has", "have"),
		"with":         fw("with", "of", "having"),
		"true":         fw("on", "true", "yes"),
		"false":        fw("off", "false", "no"),
		"wrong":        np("it", "is", "wrong", "that"),
		"exist":        nw("exist"),
		"lets":         fp([]string{"let"}, []string{"let", "us"}, []string{"we"}, []string{"we", "can"}),
		"fix":          fw("fix", "let"),
		"assume":       fw("assume", "suppose"),
		"then":         fw("then", "therefore", "hence"),
		"choose":       fw("take", "choose", "pick"),
		"prove":        fw("prove", "show"),
		"say":          fw("say", "write"),
		"assoc":        fw("left", "right", "no"),
		"field-key":    fw("coercion", "notationless", "notation", "parameter", "type", "call"),
		"qed":          fw("end", "qed", "obvious", "literal"),
		"document":     fw("document", "article", "section", "subsection", "subsubsection", "subdivision", "division"),
		"end-document": fw("endsection", "endsubsection", "endsubsubsection", "enddivision", "endsubdivision"),
		"def":          fw("def", "definition"),
		"axiom":        fw("axiom", "conjecture", "hypothesis", "equation", "formula"),
		"with-property": np("with", "property"),
		"param":         np("with", "parameter"),
		"theorem":       fw("proposition", "theorem", "lemma", "corollary"),
	}
	l["we-say"] = combinator.Then(
		combinator.Then(combinator.Possibly(nw("we")), fw("say", "write")),
		combinator.Possibly(nw("that")),
	)
	return l
}

// LitDoc matches a section start or end marker.
func LitDoc(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	l := Lit(sup, reg)
	return combinator.Or(l["document"], l["end-document"]).WithDesc("lit_doc")
}

// LitLocation matches a cross-reference document location keyword.
func LitLocation(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	l := Lit(sup, reg)
	return combinator.First([]combinator.Parser{l["document"], l["theorem"], l["axiom"]}).WithDesc("lit_location")
}

// LitRecord matches a 'record'-type phrase: "we record ... that", with the
// subject, "identification", and "that" all optional.
func LitRecord(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	p := combinator.Then(combinator.Possibly(lexrule.NextWord(sup, reg, "we")),
		lexrule.FirstWord(sup, reg, []string{"record", "register"}))
	p = combinator.Then(p, combinator.Possibly(lexrule.NextWord(sup, reg, "identification")))
	p = combinator.Then(p, combinator.Possibly(lexrule.NextWord(sup, reg, "that")))
	return p.WithDesc("lit_record")
}
