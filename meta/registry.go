package meta

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/adk-format/adk/debug"

	"go.uber.org/multierr"
)

// Default is the registry used when none is given explicitly.  Generated
// registration code registers with Default.
var Default = NewRegistry()

// TypeInfo is the registered metadata of one aggregate type.
type TypeInfo struct {
	// Name is the identifier written into encoded structures.
	Name    string
	Type    reflect.Type
	Members []*Member

	byName map[string]*Member
}

// Member returns the member called name.
func (ti *TypeInfo) Member(name string) (*Member, bool) {
	m, ok := ti.byName[name]
	return m, ok
}

// Registry maps Go types to their registered metadata.  Registration is
// expected to complete before any encoding or decoding with the types
// involved; lookups are safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	types map[reflect.Type]*TypeInfo
	names map[string]*TypeInfo
	order []*TypeInfo

	enums     map[reflect.Type]*Enum
	enumNames map[string]*Enum
	enumOrder []*Enum
}

func NewRegistry() *Registry {
	return &Registry{
		types:     map[reflect.Type]*TypeInfo{},
		names:     map[string]*TypeInfo{},
		enums:     map[reflect.Type]*Enum{},
		enumNames: map[string]*Enum{},
	}
}

// Register records the members of T, in declaration order, under name.  If
// name is empty the Go type name is used.
func Register[T any](r *Registry, name string, members ...*Member) (*TypeInfo, error) {
	return r.RegisterType(reflect.TypeFor[T](), name, members...)
}

// MustRegister is like Register but panics on error.  It is intended for
// init functions.
func MustRegister[T any](r *Registry, name string, members ...*Member) *TypeInfo {
	ti, err := Register[T](r, name, members...)
	if err != nil {
		panic(err)
	}
	return ti
}

// RegisterType is the non generic form of Register.
func (r *Registry) RegisterType(t reflect.Type, name string, members ...*Member) (*TypeInfo, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, &UnsupportedTypeError{Type: t, Message: fmt.Sprintf("cannot reflect non struct type %s", typeString(t))}
	}
	if name == "" {
		name = t.Name()
	}
	if name == "" {
		return nil, fmt.Errorf("%w: anonymous type %s needs a name", ErrBadMember, t)
	}
	ti := &TypeInfo{
		Name:    name,
		Type:    t,
		Members: make([]*Member, 0, len(members)),
		byName:  make(map[string]*Member, len(members)),
	}
	for i, m := range members {
		if err := checkMember(t, name, m); err != nil {
			return nil, err
		}
		if _, dup := ti.byName[m.Name]; dup {
			return nil, fmt.Errorf("%w: member %q of %s", ErrDuplicate, m.Name, name)
		}
		m.Index = i
		ti.Members = append(ti.Members, m)
		ti.byName[m.Name] = m
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.types[t]; ok {
		return nil, fmt.Errorf("%w: type %s already registered as %q", ErrDuplicate, t, prev.Name)
	}
	if prev, ok := r.names[name]; ok {
		return nil, fmt.Errorf("%w: name %q already used by %s", ErrDuplicate, name, prev.Type)
	}
	r.types[t] = ti
	r.names[name] = ti
	r.order = append(r.order, ti)
	if debug.Register() {
		debug.Logf("registered %s as %q with %d members\n", t, name, len(ti.Members))
	}
	return ti, nil
}

func checkMember(owner reflect.Type, ownerName string, m *Member) error {
	if m == nil {
		return fmt.Errorf("%w: nil member of %s", ErrBadMember, ownerName)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: unnamed member of %s", ErrBadMember, ownerName)
	}
	if m.ref == nil {
		return fmt.Errorf("%w: member %s.%s has no accessor", ErrBadMember, ownerName, m.Name)
	}
	if m.Owner != owner {
		return fmt.Errorf("%w: member %q belongs to %s, not %s", ErrBadMember, m.Name, m.Owner, owner)
	}
	path := ownerName + "." + m.Name
	if !memberKindOK(m.Type.Kind()) {
		return &UnsupportedTypeError{FieldPath: path, Type: m.Type}
	}
	if m.Char && !isCharKind(m.Type.Kind()) {
		return &UnsupportedTypeError{
			FieldPath: path,
			Type:      m.Type,
			Message:   fmt.Sprintf("character member must be int32 or uint8, got %s", m.Type),
		}
	}
	return nil
}

// Lookup returns the metadata registered for t.
func (r *Registry) Lookup(t reflect.Type) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ti, ok := r.types[t]
	return ti, ok
}

// LookupName returns the metadata registered under name.
func (r *Registry) LookupName(name string) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ti, ok := r.names[name]
	return ti, ok
}

func (r *Registry) IsReflected(t reflect.Type) bool {
	_, ok := r.Lookup(t)
	return ok
}

// MembersOf returns the members of t in declaration order.  The returned
// slice must not be modified.
func (r *Registry) MembersOf(t reflect.Type) ([]*Member, error) {
	ti, ok := r.Lookup(t)
	if !ok {
		return nil, &UnsupportedTypeError{Type: t}
	}
	return ti.Members, nil
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []*TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*TypeInfo(nil), r.order...)
}

// Classify tells how values of type t are encoded with r.
func (r *Registry) Classify(t reflect.Type) Category {
	if t == nil {
		return Unsupported
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.enums[t]; ok {
		return EnumCategory
	}
	if IsPrimitiveKind(t.Kind()) {
		return Primitive
	}
	if _, ok := r.types[t]; ok {
		return Aggregate
	}
	return Unsupported
}

// Check verifies that every member of every registered type can be
// encoded, reporting all the members that cannot.
func (r *Registry) Check() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var err error
	for _, ti := range r.order {
		for _, m := range ti.Members {
			if m.Type.Kind() != reflect.Struct {
				continue
			}
			if _, ok := r.types[m.Type]; ok {
				continue
			}
			err = multierr.Append(err, &UnsupportedTypeError{
				FieldPath: ti.Name + "." + m.Name,
				Type:      m.Type,
			})
		}
	}
	return err
}
