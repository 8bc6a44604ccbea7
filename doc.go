/*
Package cnlcombinator is a parser-combinator library, together with a
controlled-natural-language grammar layer built on top of it. Package
structure is as follows:

■ token: the lexeme record shared by every layer.

■ combinator: the cursor/Parser kernel and its algebraic combinators
(Then, Or, Many, Plus, commit points, lazy generator-driven alternation).

■ synonym, wordshape, lexrule, structural: supporting layers — synonym-class
canonicalization, token-shape coercion, lexical matching rules, and
delimiter-balanced/structural combinators — all built from the kernel.

■ grammar: the CNL production set (instructions, identifiers, assumptions,
axioms, let-annotations, phrase lists) assembled from the layers above.

■ lex: a small lexmachine-based demo tokenizer feeding the grammar layer.

■ diag: terminal diagnostics (warnings/errors), styled with pterm.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnlcombinator
