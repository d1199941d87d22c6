package gomap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/adk-format/adk/ir"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrUnknownField = errors.New("unknown field")
)

// MarshalError represents an error during encoding
type MarshalError struct {
	FieldPath string // Field path (e.g., "line.a.x")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during decoding
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// MalformedLeafError reports leaf text which does not parse as the
// primitive type it is decoded into.
type MalformedLeafError struct {
	FieldPath string
	Text      string
	Type      reflect.Type
	Err       error
}

func (e *MalformedLeafError) Error() string {
	msg := fmt.Sprintf("cannot parse %q as %s", e.Text, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("malformed leaf at %s: %s", e.FieldPath, msg)
	}
	return "malformed leaf: " + msg
}

func (e *MalformedLeafError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports a leaf where a structure is expected or the
// reverse.
type TypeMismatchError struct {
	FieldPath string
	Expected  ir.Type
	Actual    ir.Type
	GoType    reflect.Type
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("expected %s for %s, got %s", e.Expected, e.GoType, e.Actual)
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return "type error: " + msg
}

// MissingFieldError reports, in strict mode, a member with no child in the
// structure being decoded.
type MissingFieldError struct {
	FieldPath  string
	Identifier string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s in %s", e.FieldPath, e.Identifier)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UnknownFieldError reports, in strict mode, a child which names no member
// of the type being decoded.
type UnknownFieldError struct {
	FieldPath  string
	Identifier string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %s in %s", e.FieldPath, e.Identifier)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
