/*
Package codegen translates a parsed PEG grammar into Go source code.

The emitter walks the syntax tree the meta-grammar produced and
rewrites it, by node-name dispatch, into an invocation tree over the
combinator runtime: one rule function per grammar definition, composed
of peg constructor calls. The prelude template contributes the parse
entry point and a printer main; the first defined rule becomes the
generated parser's entry rule.

The package also drives the external compile-and-run pipeline: it
materializes the generated parser as a temporary Go module, builds it
with the Go toolchain, runs it on an input file and forwards output and
exit status.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codegen

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gopeg.codegen'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.codegen")
}
