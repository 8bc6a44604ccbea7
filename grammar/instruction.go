package grammar

import (
	"strconv"
	"strings"

	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/lexrule"
	"github.com/lab156/cnlcombinator/structural"
	"github.com/lab156/cnlcombinator/synonym"
	"github.com/lab156/cnlcombinator/token"
	"github.com/lab156/cnlcombinator/wordshape"
)

var instructionKeywords = []string{
	"exit", "timelimit", "printgoal", "dump", "ontored", "read", "library", "error", "warning",
}

var structuralPunctuation = map[string]bool{
	",": true, "(": true, ")": true, "[": true, "]": true, "{": true, "}": true, ";": true,
}

// synPred resolves the distilled source's syn() predicate (which omits a
// return and so always yields false): a token qualifies for a synonym
// group if it is a slash-dash marker, or if it can be wordified and is
// not one of the punctuation characters used to structure the directive
// itself.
func synPred(tok token.Token) bool {
	if tok.Value == "/" || tok.Value == "/-" {
		return true
	}
	if structuralPunctuation[tok.Value] {
		return false
	}
	return wordshape.CanWordify(tok)
}

// expandSlashDash expands the `word/-suffix` shorthand into `word/wordsuffix`,
// e.g. ["work","/-","ing","/","effort"] -> ["work","working","effort"].
func expandSlashDash(vs []string) []string {
	out := append([]string{}, vs...)
	for i := 0; i < len(out); i++ {
		if out[i] == "/-" {
			out[i] = "/"
			if i+1 < len(out) && i-1 >= 0 {
				out[i+1] = out[i-1] + out[i+1]
			}
		}
	}
	result := make([]string, 0, len(out))
	for _, v := range out {
		if v != "/" {
			result = append(result, v)
		}
	}
	return result
}

// synGroup parses a single maximal run of tokens eligible to form one
// member of a synonym equivalence class.
func synGroup(sup combinator.Support) combinator.Parser {
	tok := combinator.IfTest(combinator.NextToken(sup), func(acc any) bool {
		return synPred(acc.(token.Token))
	})
	return combinator.Plus(tok)
}

// synClass parses one equivalence class: a comma-separated list of
// members, each member itself a (possibly slash-dash-joined) token run.
func synClass(sup combinator.Support) combinator.Parser {
	return structural.CommaNonemptyList(sup, synGroup(sup)).WithDesc("syn_class")
}

// syn parses `w1, w2, ... ; w3, ...`: one or more semicolon-separated
// equivalence classes, each a comma-separated list of members.
func syn(sup combinator.Support) combinator.Parser {
	return combinator.SeparatedNonemptyList(synClass(sup), lexrule.NextValue(sup, ";")).WithDesc("syn")
}

func paramValue(ls []any) any {
	if len(ls) == 0 {
		return ""
	}
	tok := ls[0].(token.Token)
	if tok.Type == token.INTEGER {
		if n, err := strconv.Atoi(tok.Value); err == nil {
			return n
		}
		return tok.Value
	}
	switch strings.ToLower(tok.Value) {
	case "yes", "true", "on":
		return true
	case "no", "false", "off":
		return false
	}
	return tok.Value
}

// Instruction parses a bracketed directive: either the synonym form
// `[synonym w1 w2, w3, ...]`, which registers one or more equivalence
// classes, or the `[keyword value]` form, which records keyword -> value
// in store.
func Instruction(sup combinator.Support, reg *synonym.Registry, store *Instructions) combinator.Parser {
	synForm := combinator.Treat(
		combinator.Then(lexrule.NextWord(sup, reg, "synonym"), syn(sup)),
		func(acc any) any {
			pair := acc.(combinator.Pair)
			classes := pair.Second.([]any)
			for _, cls := range classes {
				groups := cls.([]any)
				var vs []string
				for _, g := range groups {
					toks := g.([]any)
					for _, tk := range toks {
						vs = append(vs, tk.(token.Token).Value)
					}
				}
				expanded := expandSlashDash(vs)
				if err := reg.Add(expanded, sup); err != nil {
					continue
				}
			}
			return []any{}
		},
	)

	keywordArg := combinator.IfTest(combinator.NextToken(sup), func(acc any) bool {
		return acc.(token.Token).Value != "]"
	})
	keywordInstruct := combinator.Then(
		lexrule.FirstWord(sup, reg, instructionKeywords),
		combinator.Possibly(keywordArg),
	)
	instructForm := combinator.Treat(keywordInstruct, func(acc any) any {
		pair := acc.(combinator.Pair)
		keyword := pair.First.(token.Token)
		ls := pair.Second.([]any)
		store.Set(keyword.Value, paramValue(ls))
		return []any{}
	})

	return structural.Bracket(sup, combinator.Or(synForm, instructForm)).WithDesc("instruction")
}
