package gomap

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/adk-format/adk/debug"
	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/meta"
)

// ToText encodes v and writes the resulting tree with encode.Encode.
func ToText(v any, opts ...MapOption) ([]byte, error) {
	node, err := Encode(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, ToEncodeOptions(opts...)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode converts v to a root value tree.  v must be a primitive, a
// registered enum or a registered aggregate, or a non-nil pointer to one.
func Encode(v any, opts ...MapOption) (*ir.Node, error) {
	return EncodeField(v, "", true, opts...)
}

// EncodeField converts v to a value tree named name.
func EncodeField(v any, name string, root bool, opts ...MapOption) (*ir.Node, error) {
	cfg := newMapConfig(opts...)
	val := reflect.ValueOf(v)
	if !val.IsValid() {
		return nil, &meta.UnsupportedTypeError{Message: "cannot encode nil"}
	}
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, &meta.UnsupportedTypeError{Type: val.Type(), Message: "cannot encode nil pointer"}
		}
		val = val.Elem()
	} else if val.Kind() == reflect.Struct {
		// members are reached through their address
		cp := reflect.New(val.Type()).Elem()
		cp.Set(val)
		val = cp
	}
	node, err := encodeValue(val, false, "", cfg)
	if err != nil {
		return nil, err
	}
	node.Name = name
	if root {
		node.AsRoot()
	}
	if debug.Encode() {
		debug.Logf("encoded %s: %s\n", val.Type(), node)
	}
	return node, nil
}

func encodeValue(val reflect.Value, char bool, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	typ := val.Type()
	switch cfg.Registry.Classify(typ) {
	case meta.EnumCategory:
		return encodeEnum(val, fieldPath, cfg)
	case meta.Primitive:
		s, err := formatLeaf(val, char)
		if err != nil {
			var me *MarshalError
			if errors.As(err, &me) {
				me.FieldPath = fieldPath
			}
			return nil, err
		}
		return ir.FromLeaf("", s), nil
	case meta.Aggregate:
		return encodeStruct(val, fieldPath, cfg)
	default:
		return nil, &meta.UnsupportedTypeError{FieldPath: fieldPath, Type: typ}
	}
}

func encodeEnum(val reflect.Value, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	e, _ := cfg.Registry.EnumOf(val.Type())
	var v int64
	if val.CanInt() {
		v = val.Int()
	} else {
		v = int64(val.Uint())
	}
	name, err := e.NameOf(v)
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	return ir.FromLeaf("", name), nil
}

func encodeStruct(val reflect.Value, fieldPath string, cfg *mapConfig) (*ir.Node, error) {
	ti, ok := cfg.Registry.Lookup(val.Type())
	if !ok {
		return nil, &meta.UnsupportedTypeError{FieldPath: fieldPath, Type: val.Type()}
	}
	res := ir.NewStruct("", ti.Name)
	res.Children = make([]*ir.Node, 0, len(ti.Members))
	for _, m := range ti.Members {
		memberPath := joinPath(fieldPath, m.Name)
		f, err := m.RefValue(val)
		if err != nil {
			return nil, &MarshalError{FieldPath: memberPath, Message: err.Error(), Err: err}
		}
		child, err := encodeValue(f, m.Char, memberPath, cfg)
		if err != nil {
			return nil, err
		}
		child.Name = m.Name
		if err := res.Append(child); err != nil {
			return nil, &MarshalError{FieldPath: memberPath, Message: fmt.Sprintf("cannot add member: %v", err), Err: err}
		}
	}
	return res, nil
}
