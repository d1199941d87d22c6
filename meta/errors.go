package meta

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrDuplicate    = errors.New("duplicate registration")
	ErrNotReflected = errors.New("type not reflected")
	ErrBadMember    = errors.New("bad member")
	ErrBadInstance  = errors.New("bad instance")
)

// UnsupportedTypeError reports a type which is neither a primitive nor
// registered with the registry in use.
type UnsupportedTypeError struct {
	FieldPath string // Field path (e.g., "line.a.x")
	Type      reflect.Type
	Message   string
}

func (e *UnsupportedTypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("unsupported type %s", typeString(e.Type))
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("%s at %s", msg, e.FieldPath)
	}
	return msg
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrNotReflected
}

// LookupError reports an enum value or name with no registered item.
type LookupError struct {
	Enum  string
	Value int64
	Name  string // set when looking up by name
}

func (e *LookupError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("enum %s has no item named %q", e.Enum, e.Name)
	}
	return fmt.Sprintf("enum %s has no item with value %d", e.Enum, e.Value)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
