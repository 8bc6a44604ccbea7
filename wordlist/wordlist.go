/*
Package wordlist supplies the fixed vocabularies the grammar layer needs —
transition words, invariable words and filler words — standing in for the
distilled spec's external word-list collaborator. The lists are
representative, not an exhaustive mathematical-English lexicon.
*/
package wordlist

// Transition holds discourse-transition words recognized by
// PhraseListTransition, e.g. "then", "therefore", "thus", "hence".
var Transition = []string{
	"then", "therefore", "thus", "hence", "consequently",
	"moreover", "furthermore", "conversely", "otherwise", "next",
}

// Invariable holds words the synonym registry should never fold into an
// equivalence class — seeded into synonym.Default at init time so they
// always canonicalize to themselves.
var Invariable = []string{
	"let", "be", "is", "are", "if", "then", "that", "the", "a", "an",
	"and", "or", "not", "for", "all", "some", "exists", "define",
	"assume", "suppose", "axiom", "theorem", "proof", "qed",
}

// Filler holds words recognized by PhraseListFiller — parenthetical or
// hedging phrases that carry no semantic weight in the grammar.
var Filler = []string{
	"clearly", "obviously", "trivially", "indeed", "in", "fact",
	"note", "recall", "observe",
}
