package gomap

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"
)

var (
	errNotOneChar = errors.New("want exactly one character")
	errBadBool    = errors.New("want true or false")
)

// FormatLeaf returns the leaf text of the primitive v.  Integers are written
// in decimal, floats in the shortest form which reads back to the same value
// ("NaN", "+Inf" and "-Inf" for the special values) and strings verbatim.
func FormatLeaf(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "", &MarshalError{Message: "nil is not a primitive"}
	}
	return formatLeaf(rv, false)
}

// ParseLeaf parses leaf text written by FormatLeaf into a T.
func ParseLeaf[T any](s string) (T, error) {
	var res T
	rv, err := parseLeaf(s, reflect.TypeFor[T](), false)
	if err != nil {
		return res, err
	}
	return rv.Interface().(T), nil
}

// FormatChar returns the leaf text of a character member.
func FormatChar(r rune) (string, error) {
	return formatLeaf(reflect.ValueOf(r), true)
}

// ParseChar parses the leaf text of a character member.
func ParseChar(s string) (rune, error) {
	rv, err := parseLeaf(s, reflect.TypeFor[rune](), true)
	if err != nil {
		return 0, err
	}
	return rune(rv.Int()), nil
}

func formatLeaf(v reflect.Value, char bool) (string, error) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if char {
			r := rune(v.Int())
			if !utf8.ValidRune(r) {
				return "", &MarshalError{Message: fmt.Sprintf("invalid character %U", r)}
			}
			return string(r), nil
		}
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if char {
			return string(rune(v.Uint())), nil
		}
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.String:
		return v.String(), nil
	default:
		return "", &MarshalError{Message: fmt.Sprintf("%s is not a primitive", v.Type())}
	}
}

func parseLeaf(s string, t reflect.Type, char bool) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	malformed := func(err error) (reflect.Value, error) {
		return reflect.Value{}, &MalformedLeafError{Text: s, Type: t, Err: err}
	}
	switch t.Kind() {
	case reflect.Bool:
		switch s {
		case "true":
			res.SetBool(true)
		case "false":
		default:
			return malformed(errBadBool)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if char {
			r, ok := oneRune(s)
			if !ok {
				return malformed(errNotOneChar)
			}
			res.SetInt(int64(r))
			break
		}
		i, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return malformed(err)
		}
		res.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if char {
			r, ok := oneRune(s)
			if !ok || uint64(r) > (uint64(1)<<t.Bits())-1 {
				return malformed(errNotOneChar)
			}
			res.SetUint(uint64(r))
			break
		}
		u, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return malformed(err)
		}
		res.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return malformed(err)
		}
		res.SetFloat(f)
	case reflect.String:
		res.SetString(s)
	default:
		return reflect.Value{}, &UnmarshalError{Message: fmt.Sprintf("%s is not a primitive", t)}
	}
	return res, nil
}

func oneRune(s string) (rune, bool) {
	r, sz := utf8.DecodeRuneInString(s)
	if sz == 0 || sz != len(s) || (r == utf8.RuneError && sz == 1) {
		return 0, false
	}
	return r, true
}
