package codegen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Placeholders substituted by Generate. The entry placeholder is a
// valid rule name on purpose: the prelude stays parseable as Go source
// even before substitution.
const (
	entryPlaceholder       = "GopegEntryRule"
	fingerprintPlaceholder = "GopegFingerprint"
)

// prelude is the fixed head of every generated parser: file header,
// imports, the parse entry point and a printer main. The emitted rule
// functions are appended below it.
const prelude = `// Code generated by gopeg. DO NOT EDIT.
// grammar fingerprint: GopegFingerprint
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/peg"
)

// parse applies the grammar's first rule to input. The returned root
// node is named after that rule. A partial match still returns a tree;
// end a grammar with '!.' to reject trailing input.
func parse(input []byte) (*gopeg.Node, bool) {
	result, ok := ruleGopegEntryRule(peg.NewState(input))
	if !ok {
		return nil, false
	}
	return result.Nodes[0], true
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: printer <input-file>")
		os.Exit(1)
	}
	input, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read input file: %v\n", err)
		os.Exit(1)
	}
	root, ok := parse(input)
	if !ok {
		fmt.Fprintln(os.Stderr, "could not parse input")
		os.Exit(1)
	}
	fmt.Print(root.TreeString())
}
`
