/*
Package synonym implements the process-wide word-canonicalization table: a
mapping from canonical singular-lowercase word to a canonical, space-joined
representative of its equivalence class.

For a discussion of symbol-table-like registries attached to a parsing
session, see the combinator package's Support interface, which this
registry is deliberately decoupled from — callers inject a Registry rather
than reach for ambient global state, except through Default for the
process-wide case the data model describes.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package synonym

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/lab156/cnlcombinator/diag"
	"github.com/lab156/cnlcombinator/wordlist"
)

// MinLen is the minimum token length eligible for synonym registration and
// lookup; shorter words always canonicalize to themselves.
const MinLen = 4

// Singularizer mirrors the one method of combinator.Support the registry
// needs, so this package doesn't have to import combinator just to share
// an interface with an identical single method.
type Singularizer interface {
	Singularize(word string) string
}

// Registry maps a canonical singular-lowercase word to the space-joined,
// lexicographically sorted representative of its equivalence class.
// Safe for concurrent use: the combinator layer is single-threaded per
// parse, but a Registry may be shared by multiple parses running on
// separate goroutines.
type Registry struct {
	mu         sync.RWMutex
	table      map[string]string
	seenHashes map[string]bool
}

// New constructs an empty, isolated Registry.
func New() *Registry {
	return &Registry{table: make(map[string]string), seenHashes: make(map[string]bool)}
}

// Default is a process-wide registry for callers that want one shared
// table; the parsers use only the Registry passed to them and never fall
// back to it. Seeded from wordlist.Invariable so common function
// words never accidentally fold into a caller's equivalence class.
var Default = New()

func init() {
	for _, w := range wordlist.Invariable {
		Default.table[strings.ToLower(w)] = strings.ToLower(w)
	}
}

func isSingleAlphabeticToken(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if unicode.IsSpace(r) {
			return false
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Add validates and registers an equivalence class of words. Each member
// must be a single whitespace-free alphabetic token of length >= MinLen and
// must not already be registered. On validation failure, a diagnostic is
// emitted through diag.Warnf and the registry is left unchanged for the
// whole batch.
func (r *Registry) Add(words []string, sup Singularizer) error {
	if len(words) == 0 {
		return fmt.Errorf("synonym: empty batch")
	}
	singulars := make([]string, 0, len(words))
	r.mu.RLock()
	for _, w := range words {
		if !isSingleAlphabeticToken(w) {
			r.mu.RUnlock()
			diag.Warnf("synonym: rejected %q: not a single alphabetic token", w)
			return fmt.Errorf("synonym: %q is not a single alphabetic token", w)
		}
		if len(w) < MinLen {
			r.mu.RUnlock()
			diag.Warnf("synonym: rejected %q: shorter than %d characters", w, MinLen)
			return fmt.Errorf("synonym: %q is shorter than %d characters", w, MinLen)
		}
		singular := strings.ToLower(sup.Singularize(w))
		if _, ok := r.table[singular]; ok {
			r.mu.RUnlock()
			diag.Warnf("synonym: rejected batch %v: %q is already registered", words, singular)
			return fmt.Errorf("synonym: %q is already registered", singular)
		}
		singulars = append(singulars, singular)
	}
	r.mu.RUnlock()

	if r.alreadyMerged(singulars) {
		return nil
	}

	set := treeset.NewWith(utils.StringComparator)
	for _, s := range singulars {
		set.Add(s)
	}
	sorted := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		sorted = append(sorted, v.(string))
	}
	representative := strings.Join(sorted, " ")

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range singulars {
		r.table[s] = representative
	}
	return nil
}

// alreadyMerged reports whether this exact equivalence class (by sorted,
// deduplicated member set) has already been merged into r, guarding
// against a caller accidentally doubling up a class by passing the same
// words twice across separate Add calls.
func (r *Registry) alreadyMerged(singulars []string) bool {
	cp := append([]string{}, singulars...)
	sort.Strings(cp)
	h, err := structhash.Hash(cp, 1)
	if err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seenHashes[h] {
		return true
	}
	r.seenHashes[h] = true
	return false
}

// Canonical returns the registered representative for s, or s itself if s
// is shorter than MinLen or not registered. Idempotent: Canonical(Canonical(s)) == Canonical(s).
func (r *Registry) Canonical(s string) string {
	if len(s) < MinLen {
		return s
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rep, ok := r.table[strings.ToLower(s)]; ok {
		return rep
	}
	return s
}
