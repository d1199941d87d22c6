package meta

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/adk-format/adk/debug"

	"golang.org/x/exp/constraints"
)

// EnumItem is one named value of a registered enum.
type EnumItem struct {
	Enum  string
	Name  string
	Value int64
}

// QualifiedName returns the item name prefixed with its enum name.
func (it EnumItem) QualifiedName() string {
	return it.Enum + "." + it.Name
}

// ItemDef is an enum item awaiting registration.
type ItemDef[E constraints.Integer] struct {
	Name  string
	Value E
}

func Item[E constraints.Integer](name string, v E) ItemDef[E] {
	return ItemDef[E]{Name: name, Value: v}
}

// Enum is the registered metadata of an integer enumeration.
type Enum struct {
	Name  string
	Type  reflect.Type
	Items []EnumItem

	names  map[int64]string
	values map[string]int64
}

// NameOf returns the name of the item with value v.
func (e *Enum) NameOf(v int64) (string, error) {
	name, ok := e.names[v]
	if !ok {
		return "", &LookupError{Enum: e.Name, Value: v}
	}
	return name, nil
}

// ValueOf returns the value of the item called name.  Qualified names
// ("Color.Red") are accepted as well.
func (e *Enum) ValueOf(name string) (int64, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if short, ok := strings.CutPrefix(name, e.Name+"."); ok {
		if v, ok := e.values[short]; ok {
			return v, nil
		}
	}
	return 0, &LookupError{Enum: e.Name, Name: name}
}

// RegisterEnum records the items of E in the given order.  Item names and
// values must be unique within the enum; a repeated name or value is an
// ErrDuplicate error.
func RegisterEnum[E constraints.Integer](r *Registry, name string, items ...ItemDef[E]) (*Enum, error) {
	t := reflect.TypeFor[E]()
	if name == "" {
		name = t.Name()
	}
	if name == "" {
		return nil, fmt.Errorf("%w: enum type %s needs a name", ErrBadMember, t)
	}
	e := &Enum{
		Name:   name,
		Type:   t,
		Items:  make([]EnumItem, 0, len(items)),
		names:  make(map[int64]string, len(items)),
		values: make(map[string]int64, len(items)),
	}
	for _, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("%w: unnamed item in enum %s", ErrBadMember, name)
		}
		v := int64(it.Value)
		if prev, ok := e.names[v]; ok {
			return nil, fmt.Errorf("%w: enum %s items %q and %q share value %d", ErrDuplicate, name, prev, it.Name, v)
		}
		if _, ok := e.values[it.Name]; ok {
			return nil, fmt.Errorf("%w: enum %s item %q", ErrDuplicate, name, it.Name)
		}
		e.names[v] = it.Name
		e.values[it.Name] = v
		e.Items = append(e.Items, EnumItem{Enum: name, Name: it.Name, Value: v})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.enums[t]; ok {
		return nil, fmt.Errorf("%w: enum type %s already registered as %q", ErrDuplicate, t, prev.Name)
	}
	if prev, ok := r.enumNames[name]; ok {
		return nil, fmt.Errorf("%w: enum name %q already used by %s", ErrDuplicate, name, prev.Type)
	}
	r.enums[t] = e
	r.enumNames[name] = e
	r.enumOrder = append(r.enumOrder, e)
	if debug.Register() {
		debug.Logf("registered enum %s as %q with %d items\n", t, name, len(e.Items))
	}
	return e, nil
}

func MustRegisterEnum[E constraints.Integer](r *Registry, name string, items ...ItemDef[E]) *Enum {
	e, err := RegisterEnum(r, name, items...)
	if err != nil {
		panic(err)
	}
	return e
}

// EnumOf returns the enum registered for t.
func (r *Registry) EnumOf(t reflect.Type) (*Enum, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enums[t]
	return e, ok
}

// Enums returns the registered enums in registration order.
func (r *Registry) Enums() []*Enum {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Enum(nil), r.enumOrder...)
}

// EnumItemsOf returns the items of the enum registered for t in
// registration order.
func (r *Registry) EnumItemsOf(t reflect.Type) ([]EnumItem, error) {
	e, ok := r.EnumOf(t)
	if !ok {
		return nil, &UnsupportedTypeError{Type: t, Message: fmt.Sprintf("%s is not a registered enum", typeString(t))}
	}
	return e.Items, nil
}

// NameOf returns the name registered for value v of enum type t.
func (r *Registry) NameOf(t reflect.Type, v int64) (string, error) {
	e, ok := r.EnumOf(t)
	if !ok {
		return "", &UnsupportedTypeError{Type: t, Message: fmt.Sprintf("%s is not a registered enum", typeString(t))}
	}
	return e.NameOf(v)
}

// NameOf returns the registered name of v.
func NameOf[E constraints.Integer](r *Registry, v E) (string, error) {
	return r.NameOf(reflect.TypeFor[E](), int64(v))
}

// ValueOf returns the value of the item of E called name.
func ValueOf[E constraints.Integer](r *Registry, name string) (E, error) {
	t := reflect.TypeFor[E]()
	e, ok := r.EnumOf(t)
	if !ok {
		return 0, &UnsupportedTypeError{Type: t, Message: fmt.Sprintf("%s is not a registered enum", t)}
	}
	v, err := e.ValueOf(name)
	if err != nil {
		return 0, err
	}
	return E(v), nil
}
