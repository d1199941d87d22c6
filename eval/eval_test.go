package eval

import (
	"errors"
	"testing"

	"github.com/adk-format/adk/ir"

	"github.com/google/go-cmp/cmp"
)

func lineNode(t *testing.T) *ir.Node {
	t.Helper()
	a, _ := ir.FromStruct("a", "Point", ir.FromLeaf("x", "0"), ir.FromLeaf("y", "0"))
	b, _ := ir.FromStruct("b", "Point", ir.FromLeaf("x", "3"), ir.FromLeaf("y", "4"))
	n, err := ir.FromStruct("", "Line", a, b, ir.FromLeaf("label", "diag"))
	if err != nil {
		t.Fatal(err)
	}
	return n.AsRoot()
}

func TestEnv(t *testing.T) {
	want := map[string]any{
		"a":     map[string]any{"x": "0", "y": "0"},
		"b":     map[string]any{"x": "3", "y": "4"},
		"label": "diag",
	}
	if diff := cmp.Diff(want, Env(lineNode(t))); diff != "" {
		t.Errorf("Env (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"value": "7"}, Env(ir.FromLeaf("", "7"))); diff != "" {
		t.Errorf("Env leaf (-want +got):\n%s", diff)
	}
}

func TestEval(t *testing.T) {
	node := lineNode(t)
	tests := []struct {
		src  string
		want any
	}{
		{`label`, "diag"},
		{`b.x + "," + b.y`, "3,4"},
		{`int(b.x) * int(b.y)`, 12},
		{`ident("")`, "Line"},
		{`ident("b")`, "Point"},
		{`getpath("b.y")`, "4"},
		{`getpath("a")`, map[string]any{"x": "0", "y": "0"}},
		{`haspath("b.x")`, true},
		{`haspath("c")`, false},
		{`haspath("label.x")`, false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(node, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Eval (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalLeafRoot(t *testing.T) {
	got, err := Eval(ir.FromLeaf("", "7").AsRoot(), `int(value) + 1`)
	if err != nil {
		t.Fatal(err)
	}
	if got != 8 {
		t.Errorf("got %v, want 8", got)
	}
}

func TestMatch(t *testing.T) {
	node := lineNode(t)
	tests := []struct {
		src  string
		want bool
	}{
		{`label == "diag"`, true},
		{`label startsWith "di" && b.x == "3"`, true},
		{`int(a.x) > 0`, false},
		{`ident("a") == ident("b")`, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Match(node, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	node := lineNode(t)
	for _, src := range []string{`label ==`, `nosuch + 1`, `ident("label")`, `getpath("c")`} {
		if _, err := Eval(node, src); !errors.Is(err, ErrEval) {
			t.Errorf("Eval(%q) error = %v, want ErrEval", src, err)
		}
	}
	if _, err := Match(node, `1 + 2`); !errors.Is(err, ErrEval) {
		t.Errorf("Match on int expression: %v", err)
	}
}

func TestEvalWith(t *testing.T) {
	node := lineNode(t)
	ok, err := MatchWith(node, map[string]any{"limit": 3}, `int(b.x) >= limit`)
	if err != nil || !ok {
		t.Errorf("MatchWith = %v, %v", ok, err)
	}
	got, err := EvalWith(node, map[string]any{"label": "shadow"}, `label`)
	if err != nil || got != "shadow" {
		t.Errorf("EvalWith = %v, %v", got, err)
	}
}
