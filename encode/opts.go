package encode

import "github.com/adk-format/adk/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent sets the number of spaces per nesting level.  Zero, the
// default, writes everything on one line without spaces.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeEscape controls escaping of quotes, backslashes and control
// characters in names and values.  It is on by default.  With escaping off
// a value containing '"' produces a document which cannot be parsed.
func EncodeEscape(v bool) EncodeOption {
	return func(es *EncState) { es.escape = v }
}

// EncodeNewline terminates the output with a newline.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
