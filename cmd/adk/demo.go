package main

import (
	"fmt"

	"github.com/adk-format/adk/gomap"
	"github.com/adk-format/adk/internal/shapes"

	"github.com/scott-cotton/cli"
)

var samples = map[string]any{
	"Point": shapes.Point{X: 3, Y: 4},
	"Line": shapes.Line{
		B:     shapes.Point{X: 3, Y: 4},
		Label: "diagonal",
	},
	"Pixel": shapes.Pixel{
		Glyph:  'é',
		Mark:   '#',
		Color:  shapes.Blue,
		Lit:    true,
		Alpha:  0.5,
		Depth:  -0.25,
		Small:  -8,
		Medium: 300,
		Large:  -1 << 40,
		Count:  7,
		Tiny:   255,
		Wide:   65535,
		Huge:   1 << 63,
		Index:  -1,
		Note:   `say "hi"`,
	},
}

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Demo.Parse(cc, args); err != nil {
		return err
	}
	v, ok := samples[cfg.Type]
	if !ok {
		return fmt.Errorf("%w: unknown sample type %q", cli.ErrUsage, cfg.Type)
	}
	node, err := gomap.Encode(v)
	if err != nil {
		return err
	}
	return newDocWriter(cfg.MainConfig, cc.Out).write(node)
}
