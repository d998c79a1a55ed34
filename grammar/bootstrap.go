package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/peg"
)

// The hand-written bootstrap parser for the grammar language. Each rule
// function below has the exact shape the code generator emits, so that
// regenerating this parser from the Language text reproduces it.

// Parse applies the meta-grammar to a PEG grammar source. On success it
// returns the syntax tree rooted at the Grammar node. The meta-grammar
// ends in an end-of-file predicate, so trailing garbage fails the parse.
func Parse(input []byte) (*gopeg.Node, bool) {
	result, ok := ruleGrammar(peg.NewState(input))
	if !ok {
		tracer().Debugf("meta-grammar did not match input")
		return nil, false
	}
	return result.Nodes[0], true
}

func ruleGrammar(st peg.State) (peg.Result, bool) {
	return peg.Apply("Grammar", peg.Seq(peg.R(ruleSpacing), peg.Plus(peg.R(ruleDefinition)), peg.R(ruleEndOfFile)), st)
}

func ruleDefinition(st peg.State) (peg.Result, bool) {
	return peg.Apply("Definition", peg.Seq(peg.R(ruleIdentifier), peg.Or(peg.R(ruleFUSEARROW), peg.R(ruleLEFTARROW)), peg.R(ruleExpression)), st)
}

func ruleExpression(st peg.State) (peg.Result, bool) {
	return peg.Apply("Expression", peg.Seq(peg.R(ruleSequence), peg.Star(peg.Seq(peg.R(ruleSLASH), peg.R(ruleSequence)))), st)
}

func ruleSequence(st peg.State) (peg.Result, bool) {
	return peg.Apply("Sequence", peg.Star(peg.R(rulePrefix)), st)
}

func rulePrefix(st peg.State) (peg.Result, bool) {
	return peg.Apply("Prefix", peg.Seq(peg.Opt(peg.Or(peg.R(ruleAND), peg.R(ruleNOT), peg.R(ruleFUSE))), peg.R(ruleSuffix)), st)
}

func ruleSuffix(st peg.State) (peg.Result, bool) {
	return peg.Apply("Suffix", peg.Seq(peg.R(rulePrimary), peg.Opt(peg.Or(peg.R(ruleQUESTION), peg.R(ruleSTAR), peg.R(rulePLUS)))), st)
}

func rulePrimary(st peg.State) (peg.Result, bool) {
	return peg.Apply("Primary", peg.Or(peg.Seq(peg.R(ruleIdentifier), peg.Not(peg.Or(peg.R(ruleFUSEARROW), peg.R(ruleLEFTARROW)))), peg.Seq(peg.R(ruleOPEN), peg.R(ruleExpression), peg.R(ruleCLOSE)), peg.R(ruleLiteral), peg.R(ruleClass), peg.R(ruleDOT)), st)
}

func ruleIdentifier(st peg.State) (peg.Result, bool) {
	return peg.Apply("Identifier", peg.Seq(peg.R(ruleIdentName), peg.R(ruleSpacing)), st)
}

func ruleIdentName(st peg.State) (peg.Result, bool) {
	return peg.Apply("IdentName", peg.Fuse(peg.Seq(peg.R(ruleIdentStart), peg.Star(peg.R(ruleIdentCont)))), st)
}

func ruleIdentStart(st peg.State) (peg.Result, bool) {
	return peg.Apply("IdentStart", peg.Class("a-zA-Z_"), st)
}

func ruleIdentCont(st peg.State) (peg.Result, bool) {
	return peg.Apply("IdentCont", peg.Or(peg.R(ruleIdentStart), peg.Class("0-9")), st)
}

func ruleLiteral(st peg.State) (peg.Result, bool) {
	return peg.Apply("Literal", peg.Or(peg.Seq(peg.Class("'"), peg.Star(peg.Seq(peg.Not(peg.Class("'")), peg.R(ruleChar))), peg.Class("'"), peg.R(ruleSpacing)), peg.Seq(peg.Class("\""), peg.Star(peg.Seq(peg.Not(peg.Class("\"")), peg.R(ruleChar))), peg.Class("\""), peg.R(ruleSpacing))), st)
}

func ruleClass(st peg.State) (peg.Result, bool) {
	return peg.Apply("Class", peg.Seq(peg.Lit("["), peg.Star(peg.Seq(peg.Not(peg.Lit("]")), peg.R(ruleRange))), peg.Lit("]"), peg.R(ruleSpacing)), st)
}

func ruleRange(st peg.State) (peg.Result, bool) {
	return peg.Apply("Range", peg.Or(peg.Seq(peg.R(ruleChar), peg.Lit("-"), peg.R(ruleChar)), peg.R(ruleChar)), st)
}

func ruleChar(st peg.State) (peg.Result, bool) {
	return peg.Apply("Char", peg.Or(peg.Seq(peg.Lit("\\"), peg.Class("abfnrtv'\"[]\\")), peg.Seq(peg.Lit("\\x"), peg.R(ruleHex), peg.R(ruleHex)), peg.Seq(peg.Lit("\\u"), peg.R(ruleHex), peg.R(ruleHex), peg.R(ruleHex), peg.R(ruleHex)), peg.Seq(peg.Lit("\\"), peg.Class("0-2"), peg.Class("0-7"), peg.Class("0-7")), peg.Seq(peg.Lit("\\"), peg.Class("0-7"), peg.Opt(peg.Class("0-7"))), peg.Seq(peg.Not(peg.Lit("\\")), peg.Dot)), st)
}

func ruleHex(st peg.State) (peg.Result, bool) {
	return peg.Apply("Hex", peg.Class("0-9a-fA-F"), st)
}

func ruleFUSEARROW(st peg.State) (peg.Result, bool) {
	return peg.Apply("FUSEARROW", peg.Seq(peg.Lit("<~"), peg.R(ruleSpacing)), st)
}

func ruleLEFTARROW(st peg.State) (peg.Result, bool) {
	return peg.Apply("LEFTARROW", peg.Seq(peg.Lit("<-"), peg.R(ruleSpacing)), st)
}

func ruleSLASH(st peg.State) (peg.Result, bool) {
	return peg.Apply("SLASH", peg.Seq(peg.Lit("/"), peg.R(ruleSpacing)), st)
}

func ruleAND(st peg.State) (peg.Result, bool) {
	return peg.Apply("AND", peg.Seq(peg.Lit("&"), peg.R(ruleSpacing)), st)
}

func ruleNOT(st peg.State) (peg.Result, bool) {
	return peg.Apply("NOT", peg.Seq(peg.Lit("!"), peg.R(ruleSpacing)), st)
}

func ruleFUSE(st peg.State) (peg.Result, bool) {
	return peg.Apply("FUSE", peg.Seq(peg.Lit("~"), peg.R(ruleSpacing)), st)
}

func ruleQUESTION(st peg.State) (peg.Result, bool) {
	return peg.Apply("QUESTION", peg.Seq(peg.Lit("?"), peg.R(ruleSpacing)), st)
}

func ruleSTAR(st peg.State) (peg.Result, bool) {
	return peg.Apply("STAR", peg.Seq(peg.Lit("*"), peg.R(ruleSpacing)), st)
}

func rulePLUS(st peg.State) (peg.Result, bool) {
	return peg.Apply("PLUS", peg.Seq(peg.Lit("+"), peg.R(ruleSpacing)), st)
}

func ruleOPEN(st peg.State) (peg.Result, bool) {
	return peg.Apply("OPEN", peg.Seq(peg.Lit("("), peg.R(ruleSpacing)), st)
}

func ruleCLOSE(st peg.State) (peg.Result, bool) {
	return peg.Apply("CLOSE", peg.Seq(peg.Lit(")"), peg.R(ruleSpacing)), st)
}

func ruleDOT(st peg.State) (peg.Result, bool) {
	return peg.Apply("DOT", peg.Seq(peg.Lit("."), peg.R(ruleSpacing)), st)
}

func ruleSpacing(st peg.State) (peg.Result, bool) {
	return peg.Apply("Spacing", peg.Star(peg.Or(peg.R(ruleSpace), peg.R(ruleComment))), st)
}

func ruleComment(st peg.State) (peg.Result, bool) {
	return peg.Apply("Comment", peg.Seq(peg.Lit("#"), peg.Star(peg.Seq(peg.Not(peg.R(ruleEndOfLine)), peg.Dot)), peg.R(ruleEndOfLine)), st)
}

func ruleSpace(st peg.State) (peg.Result, bool) {
	return peg.Apply("Space", peg.Or(peg.Lit(" "), peg.Lit("\t"), peg.R(ruleEndOfLine)), st)
}

func ruleEndOfLine(st peg.State) (peg.Result, bool) {
	return peg.Apply("EndOfLine", peg.Or(peg.Lit("\r\n"), peg.Lit("\n"), peg.Lit("\r")), st)
}

func ruleEndOfFile(st peg.State) (peg.Result, bool) {
	return peg.Apply("EndOfFile", peg.Not(peg.Dot), st)
}
