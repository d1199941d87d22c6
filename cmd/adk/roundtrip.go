package main

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/adk-format/adk/gomap"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/libdiff"
	"github.com/adk-format/adk/meta"

	"github.com/scott-cotton/cli"
)

func roundtrip(cfg *RoundtripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Roundtrip.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	dw := newDocWriter(cfg.MainConfig, cc.Out)
	err = eachDoc(cc, args, cfg.parseOpts(), func(file string, node *ir.Node) error {
		res, err := roundtripNode(meta.Default, node, cfg.Strict)
		if err != nil {
			theLog.Error("roundtrip failed", "file", file, "error", err)
			failed++
			return nil
		}
		if changes := libdiff.Diff(node, res); len(changes) != 0 {
			for i := range changes {
				theLog.Warn("roundtrip changed", "file", file, "change", changes[i].String())
			}
			failed++
		}
		if cfg.Quiet {
			return nil
		}
		return dw.write(res)
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// roundtripNode decodes node into a new value of the type registered under
// its identifier and encodes that value again.
func roundtripNode(r *meta.Registry, node *ir.Node, strict bool) (*ir.Node, error) {
	if node.Type != ir.StructType {
		return nil, errors.New("root is a leaf, no type to decode into")
	}
	ti, ok := r.LookupName(node.Identifier)
	if !ok {
		return nil, fmt.Errorf("no registered type %q", node.Identifier)
	}
	ptr := reflect.New(ti.Type)
	if err := gomap.Decode(node, ptr.Interface(), gomap.Strict(strict), gomap.WithRegistry(r)); err != nil {
		return nil, err
	}
	return gomap.Encode(ptr.Elem().Interface(), gomap.WithRegistry(r))
}
