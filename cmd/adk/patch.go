package main

import (
	"fmt"
	"os"

	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	return eachDoc(cc, args[1:], cfg.parseOpts(), func(_ string, node *ir.Node) error {
		var res *ir.Node
		if cfg.Merge {
			res, err = patch.Merge(node, p)
		} else {
			res, err = patch.Apply(node, p)
		}
		if err != nil {
			return err
		}
		return dw.write(res)
	})
}
