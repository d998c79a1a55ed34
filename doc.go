/*
Package gopeg is a PEG parser generator toolbox.

GoPEG strives to be a smart and lightweight tool to generate
recursive-descent parsers for DSLs. It implements Parsing Expression
Grammars (scannerless, with ordered choice and unlimited lookahead via
syntactic predicates) and emits Go source code for a parser from a
textual grammar. Package structure is as follows:

■ peg: Package peg implements the combinator runtime: primitive and
composite matchers sharing a uniform apply-contract over a borrowed
byte slice.

■ grammar: Package grammar implements the meta-grammar, i.e. the PEG
describing the PEG grammar language itself, built on top of package
peg, together with the escape-sequence decoder for grammar literals.

■ interp: Package interp interprets a parsed grammar directly, without
a code generation step.

■ codegen: Package codegen translates a parsed grammar into Go source
code over the peg runtime and drives the compile-and-run pipeline.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gopeg
