package parse

import (
	"reflect"
	"testing"

	"github.com/cognicore/syllog/pkg/syllog/logic"
)

func TestSplitCalls(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"parent(X,Z), parent(Z,Y)", []string{"parent(X,Z)", "parent(Z,Y)"}},
		{"p(a,(b,c)), q(d)", []string{"p(a,(b,c))", "q(d)"}},
		{"single(X)", []string{"single(X)"}},
		{"  spaced(a) ,  spaced(b) ", []string{"spaced(a)", "spaced(b)"}},
	}

	for _, c := range cases {
		got := SplitCalls(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitCalls(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseAtom(t *testing.T) {
	atom, err := ParseAtom("parent(john, mary)")
	if err != nil {
		t.Fatalf("ParseAtom: %v", err)
	}
	if atom.Predicate != "parent" {
		t.Errorf("predicate = %q", atom.Predicate)
	}
	want := []logic.Term{"john", "mary"}
	if !reflect.DeepEqual(atom.Args, want) {
		t.Errorf("args = %v, want %v", atom.Args, want)
	}
}

func TestParseAtomRejectsMissingParens(t *testing.T) {
	for _, in := range []string{"parent", "parent(john", "parent john)", ""} {
		if _, err := ParseAtom(in); err == nil {
			t.Errorf("ParseAtom(%q) should fail", in)
		}
	}
}

func TestParseFactRoundTrip(t *testing.T) {
	res := Parse("parent(john, mary).")
	if len(res.Facts) != 1 || len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Facts[0].String() != "parent(john, mary)." {
		t.Errorf("round trip: %s", res.Facts[0])
	}
}

func TestParseRule(t *testing.T) {
	res := Parse("grandparent(X,Y) :- parent(X,Z), parent(Z,Y).")
	if len(res.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %+v", res)
	}
	r := res.Rules[0]
	if r.Head.Predicate != "grandparent" || len(r.Body) != 2 {
		t.Errorf("unexpected rule: %s", r)
	}
	if r.Body[1].Predicate != "parent" || r.Body[1].Args[1] != "Y" {
		t.Errorf("unexpected body: %s", r)
	}
}

func TestParseMultiLineRule(t *testing.T) {
	text := "uncle(X, Y) :-\n    sibling(X, Z),\n    parent(Z, Y).\n"
	res := Parse(text)
	if len(res.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d (%v)", len(res.Rules), res.Diagnostics)
	}
	if len(res.Rules[0].Body) != 2 {
		t.Errorf("body = %v", res.Rules[0].Body)
	}
}

func TestParseParenthesizedBody(t *testing.T) {
	res := Parse("gp(X,Y) :- (parent(X,Z), parent(Z,Y)).")
	if len(res.Rules) != 1 || len(res.Rules[0].Body) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestParseSkipsMalformedLineAndContinues(t *testing.T) {
	text := "parent(john, mary).\nthis is not logic\nparent(mary, susan).\n"
	res := Parse(text)
	if len(res.Facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(res.Facts))
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Kind != MalformedLine || d.Line != 2 {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}

func TestParseDiscardsRuleWithNoParsableBody(t *testing.T) {
	res := Parse("broken(X) :- nonsense without parens.")
	if len(res.Rules) != 0 {
		t.Fatalf("rule should be discarded: %+v", res.Rules)
	}
	found := false
	for _, d := range res.Diagnostics {
		if d.Kind == EmptyRuleBody {
			found = true
		}
	}
	if !found {
		t.Errorf("expected EmptyRuleBody diagnostic, got %v", res.Diagnostics)
	}
}

func TestParsePartialRuleBody(t *testing.T) {
	res := Parse("r(X) :- good(X), oops, alsogood(X).")
	if len(res.Rules) != 1 {
		t.Fatalf("expected rule to survive, got %+v", res)
	}
	if len(res.Rules[0].Body) != 2 {
		t.Errorf("body = %v", res.Rules[0].Body)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != MalformedLine {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestParseSkipsCommentsAndFences(t *testing.T) {
	text := "```prolog\n% family facts\nparent(john, mary).\n```\n"
	res := Parse(text)
	if len(res.Facts) != 1 || len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestParseUnterminatedRuleReported(t *testing.T) {
	res := Parse("gp(X,Y) :- parent(X,Z),\nparent(Z,Y)")
	if len(res.Rules) != 0 {
		t.Fatalf("unterminated rule should not parse: %+v", res.Rules)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != MalformedLine {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestParseEmptyInput(t *testing.T) {
	res := Parse("")
	if !res.Empty() {
		t.Errorf("expected empty result: %+v", res)
	}
}
