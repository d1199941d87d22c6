package main

import (
	"context"
	"fmt"

	"github.com/adk-format/adk/meta/codegen"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Command, "adk-codegen").
		WithSynopsis("adk-codegen [opts]").
		WithDescription("Generate registration code for types annotated with //adk:reflect and //adk:enum.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	Dir        string `cli:"name=dir desc='package directory (default: current directory)'"`
	OutputFile string `cli:"name=o desc='output file, relative to -dir (default: adk_gen.go)'"`
	Func       string `cli:"name=func desc='name of the generated registration function (default: Register)'"`

	Command *cli.Command
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	if _, err := cfg.Command.Parse(cc, args); err != nil {
		return err
	}
	out, err := codegen.Run(&codegen.Config{
		Dir:    cfg.Dir,
		Output: cfg.OutputFile,
		Func:   cfg.Func,
	})
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Fprintf(cc.Out, "no annotated types\n")
		return nil
	}
	fmt.Fprintf(cc.Out, "wrote %s\n", out)
	return nil
}
