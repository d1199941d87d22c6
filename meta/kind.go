package meta

import "reflect"

// Category classifies a Go type for encoding.
type Category int

const (
	Unsupported Category = iota
	Primitive
	EnumCategory
	Aggregate
)

func (c Category) String() string {
	switch c {
	case Primitive:
		return "primitive"
	case EnumCategory:
		return "enum"
	case Aggregate:
		return "aggregate"
	default:
		return "unsupported"
	}
}

// IsPrimitiveKind reports whether values of kind k are encoded as leaves.
func IsPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

func isCharKind(k reflect.Kind) bool {
	return k == reflect.Int32 || k == reflect.Uint8
}

// memberKindOK reports whether a member of kind k may be registered.  Struct
// members are accepted here and resolved against the registry later.
func memberKindOK(k reflect.Kind) bool {
	return IsPrimitiveKind(k) || k == reflect.Struct
}
