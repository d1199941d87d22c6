package gomap

import (
	"errors"
	"reflect"

	"github.com/adk-format/adk/debug"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/meta"
	"github.com/adk-format/adk/parse"
)

// FromText parses d with parse.Parse and decodes the result into v.
func FromText(d []byte, v any, opts ...UnmapOption) error {
	node, err := parse.Parse(d, ToParseOptions(opts...)...)
	if err != nil {
		return err
	}
	return Decode(node, v, opts...)
}

// Decode converts node into the value v points to.  The value is replaced
// only when the whole tree decodes; on error it is left untouched.
func Decode(node *ir.Node, v any, opts ...UnmapOption) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if node == nil {
		return &UnmarshalError{Message: "nil node"}
	}
	if err := node.Validate(); err != nil {
		return &UnmarshalError{Message: err.Error(), Err: err}
	}
	cfg := newUnmapConfig(opts...)
	tmp := reflect.New(val.Elem().Type()).Elem()
	if err := decodeValue(node, tmp, false, "", cfg); err != nil {
		return err
	}
	val.Elem().Set(tmp)
	return nil
}

// DecodeAs decodes node into a new T.
func DecodeAs[T any](node *ir.Node, opts ...UnmapOption) (T, error) {
	var res T
	err := Decode(node, &res, opts...)
	return res, err
}

func decodeValue(node *ir.Node, val reflect.Value, char bool, fieldPath string, cfg *unmapConfig) error {
	typ := val.Type()
	switch cfg.Registry.Classify(typ) {
	case meta.EnumCategory:
		if err := wantType(node, ir.LeafType, typ, fieldPath); err != nil {
			return err
		}
		return decodeEnum(node, val, fieldPath, cfg)
	case meta.Primitive:
		if err := wantType(node, ir.LeafType, typ, fieldPath); err != nil {
			return err
		}
		pv, err := parseLeaf(node.Value, typ, char)
		if err != nil {
			var mle *MalformedLeafError
			if errors.As(err, &mle) {
				mle.FieldPath = fieldPath
			}
			return err
		}
		val.Set(pv)
		return nil
	case meta.Aggregate:
		if err := wantType(node, ir.StructType, typ, fieldPath); err != nil {
			return err
		}
		return decodeStruct(node, val, fieldPath, cfg)
	default:
		return &meta.UnsupportedTypeError{FieldPath: fieldPath, Type: typ}
	}
}

func wantType(node *ir.Node, want ir.Type, typ reflect.Type, fieldPath string) error {
	if node.Type == want {
		return nil
	}
	return &TypeMismatchError{
		FieldPath: fieldPath,
		Expected:  want,
		Actual:    node.Type,
		GoType:    typ,
	}
}

func decodeEnum(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	e, _ := cfg.Registry.EnumOf(val.Type())
	v, err := e.ValueOf(node.Value)
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	if val.CanInt() {
		val.SetInt(v)
	} else {
		val.SetUint(uint64(v))
	}
	return nil
}

func decodeStruct(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	ti, ok := cfg.Registry.Lookup(val.Type())
	if !ok {
		return &meta.UnsupportedTypeError{FieldPath: fieldPath, Type: val.Type()}
	}
	if node.Identifier != ti.Name && debug.Decode() {
		debug.Logf("decoding %q into %s registered as %q at %q\n", node.Identifier, val.Type(), ti.Name, fieldPath)
	}
	for _, m := range ti.Members {
		memberPath := joinPath(fieldPath, m.Name)
		child, ok := node.Lookup(m.Name)
		if !ok {
			if cfg.Strict {
				return &MissingFieldError{FieldPath: memberPath, Identifier: ti.Name}
			}
			if debug.Decode() {
				debug.Logf("missing field %q, keeping zero value\n", memberPath)
			}
			continue
		}
		f, err := m.RefValue(val)
		if err != nil {
			return &UnmarshalError{FieldPath: memberPath, Message: err.Error(), Err: err}
		}
		if err := decodeValue(child, f, m.Char, memberPath, cfg); err != nil {
			return err
		}
	}
	if cfg.Strict {
		for _, child := range node.Children {
			if _, ok := ti.Member(child.Name); !ok {
				return &UnknownFieldError{FieldPath: joinPath(fieldPath, child.Name), Identifier: ti.Name}
			}
		}
	}
	return nil
}
