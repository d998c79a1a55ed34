package codegen

import (
	"strings"
	"testing"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, src string) *gopeg.Node {
	t.Helper()
	root, ok := grammar.Parse([]byte(src))
	if !ok {
		t.Fatalf("grammar %q did not parse", src)
	}
	return root
}

func mustGenerate(t *testing.T, src string) string {
	t.Helper()
	code, err := Generate(mustParse(t, src))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return code
}

func expectFragments(t *testing.T, code string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated code misses %q", fragment)
		}
	}
}

func TestGenerateMinimalParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	code := mustGenerate(t, "S <- 'foo'\n")
	expectFragments(t, code,
		"package main",
		"func ruleS(st peg.State) (peg.Result, bool) {",
		`return peg.Apply("S", peg.Lit("foo"), st)`,
		"ruleS(peg.NewState(input))", // entry rule substituted into the prelude
		"// grammar fingerprint: ",
	)
	if strings.Contains(code, entryPlaceholder) {
		t.Errorf("entry placeholder left unsubstituted")
	}
}

func TestGenerateOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	code := mustGenerate(t, "S <- !'x' (A / B)* 'y'? &C ~D .\nA <- 'a'\nB <- 'b'\nC <- 'c'\nD <- 'd'\n")
	expectFragments(t, code,
		`peg.Not(peg.Lit("x"))`,
		"peg.Star(peg.Or(peg.R(ruleA), peg.R(ruleB)))",
		`peg.Opt(peg.Lit("y"))`,
		"peg.And(peg.R(ruleC))",
		"peg.Fuse(peg.R(ruleD))",
		"peg.Seq(", "peg.Dot",
	)
}

func TestGenerateFuseArrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	code := mustGenerate(t, "S <~ [a-z]+\n")
	expectFragments(t, code,
		`return peg.Apply("S", peg.Fuse(peg.Plus(peg.Class("a-z"))), st)`,
	)
}

func TestGenerateStringEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	code := mustGenerate(t, `S <- '\n\t"' [\[\]] '\x41'`+"\n")
	expectFragments(t, code,
		`peg.Lit("\n\t\"")`, // decoded, then re-escaped for Go
		`peg.Class("[]")`,   // bracket escapes revert to literal form
		`peg.Lit("A")`,      // hex escape decoded
	)
}

func TestGenerateEscapeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	// the decoder is the left inverse of the re-escaper over the
	// canonicalized character set
	for _, s := range []string{"\n", "\t", "\r", `\`, `"`, "a\nb\\c"} {
		escaped := escapeGoString(s)
		decoded, err := grammar.Unescape([]byte(escaped))
		if err != nil {
			t.Fatalf("Unescape(%q) failed: %v", escaped, err)
		}
		if string(decoded) != s {
			t.Errorf("round trip of %q via %q gave %q", s, escaped, decoded)
		}
	}
}

func TestFirstRuleName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	name, err := FirstRuleName(mustParse(t, "Top <- Sub\nSub <- 'x'\n"))
	if err != nil || name != "Top" {
		t.Errorf("expected entry rule Top, got %q (%v)", name, err)
	}
}

func TestFingerprintStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	a1, err := Fingerprint(mustParse(t, "S <- 'a'\n"))
	if err != nil {
		t.Fatalf("fingerprint failed: %v", err)
	}
	a2, _ := Fingerprint(mustParse(t, "S <- 'a'  # same grammar, new spacing\n"))
	if a1 != a2 {
		t.Errorf("fingerprint must be stable over lexical noise: %s vs %s", a1, a2)
	}
	b, _ := Fingerprint(mustParse(t, "S <- 'b'\n"))
	if a1 == b {
		t.Errorf("different grammars must fingerprint differently")
	}
	code1 := mustGenerate(t, "S <- 'a'\n")
	code2 := mustGenerate(t, "S <- 'a'\n")
	if code1 != code2 {
		t.Errorf("regeneration over an unchanged grammar must be byte-stable")
	}
}

// The self-hosting check: generating a parser from the meta-grammar's
// own textual representation must reproduce the hand-written bootstrap
// rules.
func TestBootstrapRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	root := mustParse(t, grammar.Language)
	code, err := Generate(root)
	if err != nil {
		t.Fatalf("Generate over Language failed: %v", err)
	}
	entry, _ := FirstRuleName(root)
	if entry != "Grammar" {
		t.Errorf("Language entry rule should be Grammar, got %q", entry)
	}
	allRules := []string{
		"Grammar", "Definition", "Expression", "Sequence", "Prefix", "Suffix",
		"Primary", "Identifier", "IdentName", "IdentStart", "IdentCont",
		"Literal", "Class", "Range", "Char", "Hex",
		"FUSEARROW", "LEFTARROW", "SLASH", "AND", "NOT", "FUSE",
		"QUESTION", "STAR", "PLUS", "OPEN", "CLOSE", "DOT",
		"Spacing", "Comment", "Space", "EndOfLine", "EndOfFile",
	}
	for _, rule := range allRules {
		if !strings.Contains(code, "func rule"+rule+"(st peg.State) (peg.Result, bool) {") {
			t.Errorf("generated parser misses rule %s", rule)
		}
	}
	// spot-check that emitted bodies match the bootstrap composition
	expectFragments(t, code,
		`return peg.Apply("Grammar", peg.Seq(peg.R(ruleSpacing), peg.Plus(peg.R(ruleDefinition)), peg.R(ruleEndOfFile)), st)`,
		`return peg.Apply("Definition", peg.Seq(peg.R(ruleIdentifier), peg.Or(peg.R(ruleFUSEARROW), peg.R(ruleLEFTARROW)), peg.R(ruleExpression)), st)`,
		`return peg.Apply("IdentName", peg.Fuse(peg.Seq(peg.R(ruleIdentStart), peg.Star(peg.R(ruleIdentCont)))), st)`,
		`return peg.Apply("Space", peg.Or(peg.Lit(" "), peg.Lit("\t"), peg.R(ruleEndOfLine)), st)`,
		`return peg.Apply("EndOfFile", peg.Not(peg.Dot), st)`,
		`return peg.Apply("Char", peg.Or(peg.Seq(peg.Lit("\\"), peg.Class("abfnrtv'\"[]\\")), peg.Seq(peg.Lit("\\x"), peg.R(ruleHex), peg.R(ruleHex)), peg.Seq(peg.Lit("\\u"), peg.R(ruleHex), peg.R(ruleHex), peg.R(ruleHex), peg.R(ruleHex)), peg.Seq(peg.Lit("\\"), peg.Class("0-2"), peg.Class("0-7"), peg.Class("0-7")), peg.Seq(peg.Lit("\\"), peg.Class("0-7"), peg.Opt(peg.Class("0-7"))), peg.Seq(peg.Not(peg.Lit("\\")), peg.Dot)), st)`,
	)
}

func TestCodeForNodeLexicalNodesAreSilent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.codegen")
	defer teardown()
	//
	root := mustParse(t, "S <- 'a'   # comment\n")
	code, err := CodeForNode(root)
	if err != nil {
		t.Fatalf("CodeForNode failed: %v", err)
	}
	if strings.Contains(code, "#") || strings.Contains(code, "comment") {
		t.Errorf("lexical nodes must emit nothing, got %q", code)
	}
}
