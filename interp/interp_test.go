package interp

import (
	"testing"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustGrammar(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := NewGrammar([]byte(src))
	if err != nil {
		t.Fatalf("grammar %q: %v", src, err)
	}
	return g
}

func TestParseLiteralRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- 'foo'\n")
	root, ok := g.Parse([]byte("foo"))
	if !ok {
		t.Fatalf("no match")
	}
	// the lone anonymous leaf collapsed into the rule node
	if root.Name != "S" || !root.IsLeaf() || string(root.Data) != "foo" {
		t.Errorf("expected leaf S \"foo\", got %v", root)
	}
	if root.Span != gopeg.MakeSpan(0, 3) {
		t.Errorf("expected span (0…3), got %s", root.Span)
	}
	if _, ok := g.Parse([]byte("bar")); ok {
		t.Errorf("expected no match on \"bar\"")
	}
}

func TestParseClassRepetition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- [a-z]+\n")
	root, ok := g.Parse([]byte("abc"))
	if !ok {
		t.Fatalf("no match")
	}
	if root.Name != "S" || len(root.Children) != 3 {
		t.Fatalf("expected S with 3 leaves, got %v", root)
	}
	for i, child := range root.Children {
		if child.Span != gopeg.MakeSpan(i, i+1) {
			t.Errorf("leaf %d has span %s", i, child.Span)
		}
	}
}

func TestParseNotPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- !'x' .\n")
	root, ok := g.Parse([]byte("y"))
	if !ok {
		t.Fatalf("no match")
	}
	if root.Name != "S" || string(root.MatchedData()) != "y" || root.Span != gopeg.MakeSpan(0, 1) {
		t.Errorf("expected S leaf \"y\", got %v", root)
	}
	if _, ok := g.Parse([]byte("x")); ok {
		t.Errorf("\"x\" must fail the not-predicate")
	}
}

func TestParseFuseArrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <~ [a-z]+\n")
	root, ok := g.Parse([]byte("abc"))
	if !ok {
		t.Fatalf("no match")
	}
	if !root.IsLeaf() || string(root.Data) != "abc" || root.Span != gopeg.MakeSpan(0, 3) {
		t.Errorf("expected children fused into one leaf, got %v", root)
	}
}

func TestParseOrderedChoice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- 'a' / 'b'\n")
	root, ok := g.Parse([]byte("b"))
	if !ok {
		t.Fatalf("no match")
	}
	if root.Name != "S" || string(root.MatchedData()) != "b" || root.Span != gopeg.MakeSpan(0, 1) {
		t.Errorf("expected S leaf \"b\", got %v", root)
	}
}

func TestParseRuleReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- A\nA <- 'x'\n")
	root, ok := g.Parse([]byte("x"))
	if !ok {
		t.Fatalf("no match")
	}
	if root.Name != "S" || len(root.Children) != 1 {
		t.Fatalf("expected S wrapping the referenced rule, got %v", root)
	}
	inner := root.Children[0]
	if inner.Name != "A" || string(inner.MatchedData()) != "x" {
		t.Errorf("expected child A with leaf \"x\", got %v", inner)
	}
}

func TestParseUndefinedRuleReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	// an undefined reference is a lookup that simply won't resolve
	g := mustGrammar(t, "S <- B\n")
	if _, ok := g.Parse([]byte("x")); ok {
		t.Errorf("reference to undefined rule must fail to match")
	}
}

func TestParseWideChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- .\n")
	root, ok := g.Parse([]byte("葉"))
	if !ok {
		t.Fatalf("no match")
	}
	if root.Span.Len() != 3 {
		t.Errorf("dot over a wide char consumes its full UTF-8 length, got %s", root.Span)
	}
	g = mustGrammar(t, "S <- [α-ω]\n")
	if _, ok := g.Parse([]byte("η")); !ok {
		t.Errorf("unicode range should match")
	}
}

func TestParsePartialInputStillReturnsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "S <- 'ab'\n")
	root, ok := g.Parse([]byte("abzzz"))
	if !ok || root.Span.To() != 2 {
		t.Errorf("a partial match still returns a tree")
	}
	// whole-input matching is the grammar's business
	g = mustGrammar(t, "S <- 'ab' !.\n")
	if _, ok := g.Parse([]byte("abzzz")); ok {
		t.Errorf("the end-of-file idiom must reject trailing input")
	}
	if _, ok := g.Parse([]byte("ab")); !ok {
		t.Errorf("the end-of-file idiom accepts exact input")
	}
}

func TestEntryRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, "First <- Second\nSecond <- 'x'\n")
	if g.EntryRule() != "First" {
		t.Errorf("entry rule is the first defined rule, got %q", g.EntryRule())
	}
}

func TestParseClassWithEscapedBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	g := mustGrammar(t, `S <- [\[\]]+`+"\n")
	root, ok := g.Parse([]byte("[]"))
	if !ok || root.Span.Len() != 2 {
		t.Errorf("escaped brackets should be class members")
	}
}

func TestNewGrammarRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.interp")
	defer teardown()
	//
	if _, err := NewGrammar([]byte("not a grammar at all %%%")); err == nil {
		t.Errorf("expected an error for unparseable grammar source")
	}
}
