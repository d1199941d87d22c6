package gomap

import (
	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/meta"
	"github.com/adk-format/adk/parse"
)

// MapOption is an option for controlling the mapping process from Go values
// to value trees.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for controlling the unmapping process from value
// trees to Go values.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

// Option applies in both directions.
type Option interface {
	MapOption
	UnmapOption
}

// mapConfig holds configuration for the mapping process.
type mapConfig struct {
	Registry *meta.Registry

	// EncodeOptions to pass through to encode.Encode
	EncodeOptions []encode.EncodeOption
}

// unmapConfig holds configuration for the unmapping process.
type unmapConfig struct {
	Registry *meta.Registry

	// ParseOptions to pass through to parse.Parse
	ParseOptions []parse.ParseOption

	// Strict makes missing and unknown children errors.
	Strict bool
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{Registry: meta.Default}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

func newUnmapConfig(opts ...UnmapOption) *unmapConfig {
	cfg := &unmapConfig{Registry: meta.Default}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg
}

type registryOption struct{ r *meta.Registry }

func (o registryOption) applyMap(c *mapConfig)     { c.Registry = o.r }
func (o registryOption) applyUnmap(c *unmapConfig) { c.Registry = o.r }

// WithRegistry selects the registry consulted for type metadata.  The
// default is meta.Default.
func WithRegistry(r *meta.Registry) Option {
	return registryOption{r: r}
}

type encodeOptions []encode.EncodeOption

func (o encodeOptions) applyMap(c *mapConfig) {
	c.EncodeOptions = append(c.EncodeOptions, o...)
}

// WithEncodeOptions passes options to encode.Encode in ToText.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return encodeOptions(opts)
}

type parseOptions []parse.ParseOption

func (o parseOptions) applyUnmap(c *unmapConfig) {
	c.ParseOptions = append(c.ParseOptions, o...)
}

// WithParseOptions passes options to parse.Parse in FromText.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return parseOptions(opts)
}

type strictOption bool

func (o strictOption) applyUnmap(c *unmapConfig) { c.Strict = bool(o) }

// Strict controls whether decoding fails on a missing member or on an
// unknown child.  By default missing members keep their zero value and
// unknown children are ignored.
func Strict(v bool) UnmapOption {
	return strictOption(v)
}

// ToEncodeOptions extracts EncodeOptions from a slice of MapOptions.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapConfig(opts...).EncodeOptions
}

// ToParseOptions extracts ParseOptions from a slice of UnmapOptions.
func ToParseOptions(opts ...UnmapOption) []parse.ParseOption {
	return newUnmapConfig(opts...).ParseOptions
}
