package codegen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/gopeg"
)

// grammarSpec is the hashable shape of a parsed grammar: rule names
// with their emitted bodies, in definition order.
type grammarSpec struct {
	Rules []ruleSpec
}

type ruleSpec struct {
	Name string
	Code string
}

// Fingerprint returns a stable hex digest of the grammar tree's emitted
// form. Generated sources carry it in their header, so regenerating an
// unchanged grammar is byte-stable and changed grammars are detectable.
func Fingerprint(root *gopeg.Node) (string, error) {
	spec := grammarSpec{}
	for _, child := range root.Children {
		if child.Name != "Definition" {
			continue
		}
		code, err := definitionOutput(child)
		if err != nil {
			return "", err
		}
		spec.Rules = append(spec.Rules, ruleSpec{
			Name: identifierName(child.Children[0]),
			Code: code,
		})
	}
	return fmt.Sprintf("%x", structhash.Sha1(spec, 1)), nil
}
