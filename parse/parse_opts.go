package parse

import (
	"github.com/adk-format/adk/format"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/token"
)

// DefaultMaxDepth bounds the nesting of structures in parsed documents.
const DefaultMaxDepth = 512

type parseOpts struct {
	format    format.Format
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	switch o.format {
	case format.JSONFormat:
		return []token.TokenOpt{token.TokenJSON()}
	case format.TextFormat:
		return []token.TokenOpt{token.TokenText()}
	}
	return nil
}

type ParseOption func(*parseOpts)

func ParseText() ParseOption {
	return ParseFormat(format.TextFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseIR() ParseOption {
	return ParseFormat(format.IRFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMaxDepth sets the deepest structure nesting accepted.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records the position of every node parsed from the text
// or json formats in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
