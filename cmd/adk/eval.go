package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/adk-format/adk/eval"
	"github.com/adk-format/adk/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return eachDoc(cc, args[1:], cfg.parseOpts(), func(_ string, node *ir.Node) error {
		v, err := eval.EvalWith(node, cfg.Vars, src)
		if err != nil {
			return err
		}
		return printValue(cc.Out, v)
	})
}

// printValue writes scalars plainly and everything else as yaml.
func printValue(w io.Writer, v any) error {
	switch v.(type) {
	case nil, string, bool, int, int64, uint64, float64:
		_, err := fmt.Fprintln(w, v)
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func varOptFunc(vars map[string]any) func(*cli.Context, string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		if err := varFunc(vars, a); err != nil {
			return nil, err
		}
		return vars, nil
	}
}

// varFunc sets the dotted key of a "key=val" argument in vars.
func varFunc(vars map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmp := vars
	for i, part := range parts {
		if i == n-1 {
			tmp[part] = v
			break
		}
		next := tmp[part]
		if next == nil {
			next = map[string]any{}
			tmp[part] = next
		}
		nextVars, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, not a map", strings.Join(parts[:i+1], "."))
		}
		tmp = nextVars
	}
	return nil
}
