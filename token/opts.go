package token

import "github.com/adk-format/adk/format"

type tokenOpts struct {
	format format.Format
}

type TokenOpt func(*tokenOpts)

// TokenText tokenizes the strict text format: every scalar is quoted.
func TokenText() TokenOpt {
	return func(o *tokenOpts) { o.format = format.TextFormat }
}

// TokenJSON additionally accepts bare literals such as numbers, true,
// false and null.
func TokenJSON() TokenOpt {
	return func(o *tokenOpts) { o.format = format.JSONFormat }
}
