package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Language is the meta-grammar in its own grammar language: the PEG for
// PEG. It describes exactly what the hand-written rules in bootstrap.go
// accept, and feeding it through the code generator reproduces those
// rules. Based on the grammar from Ford's "Parsing Expression Grammars"
// paper, extended with the fuse forms ('<~' and '~') and with the hex
// and unicode escapes of the grammar-literal escape set.
const Language = `# Parsing Expression Grammar for the PEG grammar language.

# Hierarchical syntax
Grammar    <- Spacing Definition+ EndOfFile
Definition <- Identifier (FUSEARROW / LEFTARROW) Expression
Expression <- Sequence (SLASH Sequence)*
Sequence   <- Prefix*
Prefix     <- (AND / NOT / FUSE)? Suffix
Suffix     <- Primary (QUESTION / STAR / PLUS)?
Primary    <- Identifier !(FUSEARROW / LEFTARROW)
            / OPEN Expression CLOSE
            / Literal
            / Class
            / DOT

# Lexical syntax
Identifier <- IdentName Spacing
IdentName  <~ IdentStart IdentCont*
IdentStart <- [a-zA-Z_]
IdentCont  <- IdentStart / [0-9]
Literal    <- ['] (!['] Char)* ['] Spacing
            / ["] (!["] Char)* ["] Spacing
Class      <- '[' (!']' Range)* ']' Spacing
Range      <- Char '-' Char / Char
Char       <- '\\' [abfnrtv'"\[\]\\]
            / '\\x' Hex Hex
            / '\\u' Hex Hex Hex Hex
            / '\\' [0-2] [0-7] [0-7]
            / '\\' [0-7] [0-7]?
            / !'\\' .
Hex        <- [0-9a-fA-F]
FUSEARROW  <- '<~' Spacing
LEFTARROW  <- '<-' Spacing
SLASH      <- '/' Spacing
AND        <- '&' Spacing
NOT        <- '!' Spacing
FUSE       <- '~' Spacing
QUESTION   <- '?' Spacing
STAR       <- '*' Spacing
PLUS       <- '+' Spacing
OPEN       <- '(' Spacing
CLOSE      <- ')' Spacing
DOT        <- '.' Spacing
Spacing    <- (Space / Comment)*
Comment    <- '#' (!EndOfLine .)* EndOfLine
Space      <- ' ' / '\t' / EndOfLine
EndOfLine  <- '\r\n' / '\n' / '\r'
EndOfFile  <- !.
`
