/*
Package grammar implements the PEG meta-grammar.

The meta-grammar is the grammar of the PEG grammar language itself. It
exists twice in this package, and that is the point: once as
hand-written rule functions over the combinator runtime (the bootstrap
parser), and once as its own textual representation in the Language
constant. The code generator can re-process Language into the rule
functions, which is the module's primary self-hosting correctness
check.

The package also holds the escape-sequence decoder for grammar literals
and character classes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gopeg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.grammar")
}
