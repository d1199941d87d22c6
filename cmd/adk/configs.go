package main

import (
	"fmt"
	"io"
	"os"

	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/format"
	"github.com/adk-format/adk/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Indent   int  `cli:"name=indent desc='indent output by n spaces per level'"`
	Verbatim bool `cli:"name=verbatim desc='write text output without escaping strings'"`
	Gops     bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	T bool `cli:"name=t aliases=text desc='do i/o in text format'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat() format.Format {
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fmat := cfg.ioFormat()
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := cfg.ioFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeEscape(!cfg.Verbatim),
		encode.EncodeNewline(true),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOut reports whether encOpts(w) writes colors.
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	es := &encode.EncState{}
	for _, opt := range cfg.encOpts(w) {
		opt(es)
	}
	return es.Color != nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=merge desc='print a json merge patch instead of the changes'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Vars map[string]any

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Vars   map[string]any
	Invert bool `cli:"name=v desc='print documents which do not match'"`
	Count  bool `cli:"name=c desc='print the number of matching documents'"`
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='the patch is a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}

type DemoConfig struct {
	*MainConfig
	Type string `cli:"name=type desc='sample type: Line, Point or Pixel'"`

	Demo *cli.Command
}

type RoundtripConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail on missing or unknown members'"`
	Quiet  bool `cli:"name=q desc='only report failures'"`

	Roundtrip *cli.Command
}
