package main

import (
	"fmt"

	"github.com/adk-format/adk/eval"
	"github.com/adk-format/adk/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires an expression", cli.ErrUsage)
	}
	src := args[0]
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	n := 0
	err = eachDoc(cc, args[1:], cfg.parseOpts(), func(_ string, node *ir.Node) error {
		ok, err := eval.MatchWith(node, cfg.Vars, src)
		if err != nil {
			return err
		}
		if ok == cfg.Invert {
			return nil
		}
		n++
		if cfg.Count {
			return nil
		}
		return dw.write(node)
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, n)
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
