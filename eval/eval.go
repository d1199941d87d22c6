package eval

import (
	"errors"
	"fmt"

	"github.com/adk-format/adk/debug"
	"github.com/adk-format/adk/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrEval wraps every error returned by this package.
var ErrEval = errors.New("eval")

// RootValue is the variable holding the text of a root leaf.
const RootValue = "value"

// Env returns the variables an expression over node sees.
func Env(node *ir.Node) map[string]any {
	if node == nil {
		return map[string]any{}
	}
	if node.Type == ir.LeafType {
		return map[string]any{RootValue: node.Value}
	}
	return toMap(node)
}

// ToAny converts node to a string (leaves) or a map of members
// (structures).
func ToAny(node *ir.Node) any {
	if node.Type == ir.LeafType {
		return node.Value
	}
	return toMap(node)
}

func toMap(node *ir.Node) map[string]any {
	res := make(map[string]any, len(node.Children))
	for _, c := range node.Children {
		res[c.Name] = ToAny(c)
	}
	return res
}

func envWith(node *ir.Node, vars map[string]any) map[string]any {
	env := Env(node)
	for k, v := range vars {
		env[k] = v
	}
	return env
}

// Compile compiles src for evaluation against node.  vars are extra
// variables; they shadow members of the same name.
func Compile(node *ir.Node, vars map[string]any, src string, opts ...expr.Option) (*vm.Program, error) {
	copts := append([]expr.Option{expr.Env(envWith(node, vars))}, exprOpts(node)...)
	copts = append(copts, opts...)
	prg, err := expr.Compile(src, copts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrEval, src, err)
	}
	return prg, nil
}

// Eval evaluates src against node and returns its value.
func Eval(node *ir.Node, src string) (any, error) {
	return EvalWith(node, nil, src)
}

// EvalWith is Eval with extra variables.
func EvalWith(node *ir.Node, vars map[string]any, src string) (any, error) {
	prg, err := Compile(node, vars, src)
	if err != nil {
		return nil, err
	}
	return run(node, vars, prg, src)
}

// Match evaluates the boolean expression src against node.
func Match(node *ir.Node, src string) (bool, error) {
	return MatchWith(node, nil, src)
}

// MatchWith is Match with extra variables.
func MatchWith(node *ir.Node, vars map[string]any, src string) (bool, error) {
	prg, err := Compile(node, vars, src, expr.AsBool())
	if err != nil {
		return false, err
	}
	res, err := run(node, vars, prg, src)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q evaluated to %T, want bool", ErrEval, src, res)
	}
	return b, nil
}

func run(node *ir.Node, vars map[string]any, prg *vm.Program, src string) (any, error) {
	res, err := expr.Run(prg, envWith(node, vars))
	if err != nil {
		return nil, fmt.Errorf("%w: run %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s: %v\n", src, node, res)
	}
	return res, nil
}
