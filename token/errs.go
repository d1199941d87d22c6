package token

import "errors"

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrUnicodeControl = errors.New("unicode control")
	ErrEmptyDoc       = errors.New("empty document")
	ErrLiteral        = errors.New("bad literal")
	ErrBareLiteral    = errors.New("unquoted literal")
)
