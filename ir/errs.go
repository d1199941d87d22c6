package ir

import (
	"errors"
)

var (
	ErrDuplicateChild = errors.New("duplicate child name")
	ErrNotStruct      = errors.New("not a structure")
	ErrMalformed      = errors.New("malformed node")
)
