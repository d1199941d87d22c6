package meta

import (
	"fmt"
	"reflect"
)

// Member describes one field of a reflected type: its name, its declared
// type and an accessor reaching the field inside an instance.  Members are
// created with Field and are not modified after registration.
type Member struct {
	Owner reflect.Type
	Name  string
	Type  reflect.Type

	// Char marks an int32 or uint8 field holding a single character.
	Char bool

	// Index is the position of the member in declaration order.
	Index int

	ref func(any) (any, bool)
}

type FieldOption func(*Member)

// AsChar declares that a rune or byte field holds one character, to be
// encoded as that character rather than as its code point.
func AsChar() FieldOption {
	return func(m *Member) { m.Char = true }
}

// Field declares member name of T, reached through ref.  ref must return a
// pointer into the instance it is given, typically
//
//	meta.Field("x", func(p *Point) *int32 { return &p.X })
func Field[T, F any](name string, ref func(*T) *F, opts ...FieldOption) *Member {
	m := &Member{
		Owner: reflect.TypeFor[T](),
		Name:  name,
		Type:  reflect.TypeFor[F](),
	}
	if ref != nil {
		m.ref = func(inst any) (any, bool) {
			p, ok := inst.(*T)
			if !ok || p == nil {
				return nil, false
			}
			f := ref(p)
			if f == nil {
				return nil, false
			}
			return f, true
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ref returns the addressable field of instance described by m.  instance
// must be a non-nil pointer to the owning type.
func (m *Member) Ref(instance any) (reflect.Value, error) {
	fp, ok := m.ref(instance)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: member %s.%s needs *%s, got %T", ErrBadInstance, m.Owner, m.Name, m.Owner, instance)
	}
	return reflect.ValueOf(fp).Elem(), nil
}

// RefValue is Ref for an addressable reflect.Value of the owning type.
func (m *Member) RefValue(v reflect.Value) (reflect.Value, error) {
	if !v.CanAddr() {
		return reflect.Value{}, fmt.Errorf("%w: member %s.%s on unaddressable value", ErrBadInstance, m.Owner, m.Name)
	}
	return m.Ref(v.Addr().Interface())
}

// Read returns the name and current value of the field.
func (m *Member) Read(instance any) (string, any, error) {
	f, err := m.Ref(instance)
	if err != nil {
		return "", nil, err
	}
	return m.Name, f.Interface(), nil
}

// Write stores v into the field.  v must be assignable to the field type.
func (m *Member) Write(instance any, v any) error {
	f, err := m.Ref(instance)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !rv.Type().AssignableTo(m.Type) {
		return fmt.Errorf("%w: cannot assign %T to %s.%s (%s)", ErrBadInstance, v, m.Owner, m.Name, m.Type)
	}
	f.Set(rv)
	return nil
}

func (m *Member) String() string {
	return fmt.Sprintf("%s.%s %s", m.Owner, m.Name, m.Type)
}
