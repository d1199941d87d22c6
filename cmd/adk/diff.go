package main

import (
	"fmt"

	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/libdiff"
	"github.com/adk-format/adk/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	opts := cfg.parseOpts()
	a, err := readOne(cc, args[0], opts)
	if err != nil {
		return err
	}
	b, err := readOne(cc, args[1], opts)
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	changes := libdiff.Diff(a, b)
	if cfg.Merge {
		p, err := patch.CreateMerge(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", p)
	} else {
		printChanges(cfg.MainConfig, cc, changes)
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printChanges(cfg *MainConfig, cc *cli.Context, changes []libdiff.Change) {
	color := cfg.colorOut(cc.Out)
	for i := range changes {
		c := &changes[i]
		if color && c.Kind == libdiff.Replace && isLeaf(c.From) && isLeaf(c.To) {
			fmt.Fprintf(cc.Out, "~ %s %s\n", c.PathString(), c.PrettyText())
			continue
		}
		fmt.Fprintln(cc.Out, c.String())
	}
}

func isLeaf(n *ir.Node) bool {
	return n != nil && n.Type != ir.StructType
}
