package main

import (
	"fmt"

	"github.com/adk-format/adk/meta"

	"github.com/scott-cotton/cli"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Types.Parse(cc, args); err != nil {
		return err
	}
	for _, ti := range meta.Default.Types() {
		fmt.Fprintf(cc.Out, "%s (%s)\n", ti.Name, ti.Type)
		for _, m := range ti.Members {
			fmt.Fprintf(cc.Out, "\t%s\n", m)
		}
	}
	for _, e := range meta.Default.Enums() {
		fmt.Fprintf(cc.Out, "enum %s (%s)\n", e.Name, e.Type)
		for _, it := range e.Items {
			fmt.Fprintf(cc.Out, "\t%s = %d\n", it.Name, it.Value)
		}
	}
	return nil
}
