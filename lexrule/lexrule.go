/*
Package lexrule builds token- and phrase-level parsers on top of the
combinator kernel, the synonym registry and the word-shape adapters: the
first layer of the grammar that actually looks at token values.
*/
package lexrule

import (
	"strings"

	"github.com/lab156/cnlcombinator/combinator"
	"github.com/lab156/cnlcombinator/synonym"
	"github.com/lab156/cnlcombinator/token"
	"github.com/lab156/cnlcombinator/wordshape"
)

// NextAnyWord matches any token that can be wordified (a WORD, or a VAR
// holding a single alphabetic character) and coerces it to WORD shape,
// with its value normalized to the synonym class representative.
func NextAnyWord(sup combinator.Support, reg *synonym.Registry) combinator.Parser {
	p := combinator.IfTest(combinator.NextToken(sup), func(acc any) bool {
		return wordshape.CanWordify(acc.(token.Token))
	})
	return combinator.Treat(p, func(acc any) any {
		return wordshape.Wordify(acc.(token.Token), reg)
	}).WithDesc("next_any_word")
}

// NextValue matches the next token iff its raw Value equals v, with no
// word-shape coercion or synonym lookup. Used for punctuation and
// structural keywords.
func NextValue(sup combinator.Support, v string) combinator.Parser {
	return combinator.IfValue(combinator.NextToken(sup), v).WithDesc("next_value(" + v + ")")
}

// NextWord matches a wordifiable token whose canonical form (singularized,
// lowercased, synonym-resolved) equals the canonical form of w.
func NextWord(sup combinator.Support, reg *synonym.Registry, w string) combinator.Parser {
	target := reg.Canonical(strings.ToLower(sup.Singularize(w)))
	p := combinator.IfTest(NextAnyWord(sup, reg), func(acc any) bool {
		v := acc.(token.Token).Value
		return reg.Canonical(strings.ToLower(sup.Singularize(v))) == target
	})
	return p.WithDesc("next_word(" + w + ")")
}

// NextAnyWordExcept matches any wordifiable token whose canonical form is
// not among excluded.
func NextAnyWordExcept(sup combinator.Support, reg *synonym.Registry, excluded []string) combinator.Parser {
	bad := make(map[string]bool, len(excluded))
	for _, w := range excluded {
		bad[reg.Canonical(strings.ToLower(sup.Singularize(w)))] = true
	}
	p := combinator.IfTest(NextAnyWord(sup, reg), func(acc any) bool {
		v := acc.(token.Token).Value
		return !bad[reg.Canonical(strings.ToLower(sup.Singularize(v)))]
	})
	return p.WithDesc("next_any_word_except")
}

// NextPhrase matches a fixed sequence of words (each resolved through
// NextWord) and produces a single space-joined string accumulator instead
// of a nested Pair chain.
func NextPhrase(sup combinator.Support, reg *synonym.Registry, phrase []string) combinator.Parser {
	if len(phrase) == 0 {
		return combinator.Nil()
	}
	p := combinator.Treat(NextWord(sup, reg, phrase[0]), func(acc any) any {
		return acc.(token.Token).Value
	})
	for _, w := range phrase[1:] {
		word := w
		p = combinator.Treat(combinator.Then(p, NextWord(sup, reg, word)), func(acc any) any {
			pair := acc.(combinator.Pair)
			return pair.First.(string) + " " + pair.Second.(token.Token).Value
		})
	}
	return p.WithDesc("next_phrase(" + strings.Join(phrase, " ") + ")")
}

// FirstWord tries each word in words in order via NextWord, matching S.
func FirstWord(sup combinator.Support, reg *synonym.Registry, words []string) combinator.Parser {
	prs := make([]combinator.Parser, len(words))
	for i, w := range words {
		prs[i] = NextWord(sup, reg, w)
	}
	return combinator.First(prs).WithDesc("first_word")
}

// FirstPhrase tries each phrase in phrases in order via NextPhrase.
func FirstPhrase(sup combinator.Support, reg *synonym.Registry, phrases [][]string) combinator.Parser {
	prs := make([]combinator.Parser, len(phrases))
	for i, ph := range phrases {
		prs[i] = NextPhrase(sup, reg, ph)
	}
	return combinator.First(prs).WithDesc("first_phrase")
}
