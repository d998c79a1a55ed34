/*
Package peg implements the PEG combinator runtime.

Matchers are small immutable values sharing a uniform contract: given a
parse state, either succeed with a list of syntax-tree nodes and an
advanced state, or decline. Primitive matchers (Lit, Dot, Class) consume
input and produce anonymous leaf nodes; combinators (Seq, Or, Opt, Star,
Plus, And, Not, Fuse) compose inner matchers with PEG semantics: ordered
choice, greedy repetition and syntactic predicates. Named rules are
plain Go functions adapted into expression position with R, and perform
the node-labeling step through Apply.

Matching operates on a borrowed byte slice; all node contents alias that
slice, no copies are made during parsing. Failure is ordinary, not
exceptional: a matcher that declines reports ok == false and leaves no
trace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package peg
