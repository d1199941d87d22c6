package meta

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type point struct {
	X, Y int32
}

type segment struct {
	A, B  point
	Label string
}

type pixel struct {
	Glyph rune
	Lit   bool
	Alpha float32
}

type holder struct {
	Items []int
	Inner point
}

func pointMembers() []*Member {
	return []*Member{
		Field("x", func(p *point) *int32 { return &p.X }),
		Field("y", func(p *point) *int32 { return &p.Y }),
	}
}

func TestRegisterMembersInOrder(t *testing.T) {
	r := NewRegistry()
	ti, err := Register[point](r, "Point", pointMembers()...)
	require.NoError(t, err)
	require.Equal(t, "Point", ti.Name)

	ms, err := r.MembersOf(reflect.TypeFor[point]())
	require.NoError(t, err)
	require.Len(t, ms, 2)
	require.Equal(t, "x", ms[0].Name)
	require.Equal(t, "y", ms[1].Name)
	require.Equal(t, 0, ms[0].Index)
	require.Equal(t, 1, ms[1].Index)
	require.Equal(t, reflect.TypeFor[int32](), ms[1].Type)

	// repeated queries give the same order
	again, err := r.MembersOf(reflect.TypeFor[point]())
	require.NoError(t, err)
	require.Equal(t, ms, again)

	byName, ok := r.LookupName("Point")
	require.True(t, ok)
	require.Same(t, ti, byName)
	require.True(t, r.IsReflected(reflect.TypeFor[point]()))
	require.False(t, r.IsReflected(reflect.TypeFor[segment]()))
}

func TestRegisterDefaultName(t *testing.T) {
	r := NewRegistry()
	ti, err := Register[point](r, "", pointMembers()...)
	require.NoError(t, err)
	require.Equal(t, "point", ti.Name)
}

func TestRegisterEmptyType(t *testing.T) {
	r := NewRegistry()
	ti, err := Register[struct{}](r, "Empty")
	require.NoError(t, err)
	require.Empty(t, ti.Members)
}

func TestRegisterRejects(t *testing.T) {
	tests := []struct {
		name    string
		reg     func(*Registry) error
		wantErr error
	}{
		{
			name: "non struct",
			reg: func(r *Registry) error {
				_, err := Register[int](r, "Int")
				return err
			},
			wantErr: ErrNotReflected,
		},
		{
			name: "slice member",
			reg: func(r *Registry) error {
				_, err := Register[holder](r, "Holder",
					Field("items", func(h *holder) *[]int { return &h.Items }))
				return err
			},
			wantErr: ErrNotReflected,
		},
		{
			name: "char on float",
			reg: func(r *Registry) error {
				_, err := Register[pixel](r, "Pixel",
					Field("alpha", func(p *pixel) *float32 { return &p.Alpha }, AsChar()))
				return err
			},
			wantErr: ErrNotReflected,
		},
		{
			name: "duplicate member",
			reg: func(r *Registry) error {
				_, err := Register[point](r, "Point",
					Field("x", func(p *point) *int32 { return &p.X }),
					Field("x", func(p *point) *int32 { return &p.Y }))
				return err
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "nil accessor",
			reg: func(r *Registry) error {
				_, err := Register[point](r, "Point", Field[point, int32]("x", nil))
				return err
			},
			wantErr: ErrBadMember,
		},
		{
			name: "foreign member",
			reg: func(r *Registry) error {
				_, err := Register[segment](r, "Segment", pointMembers()...)
				return err
			},
			wantErr: ErrBadMember,
		},
		{
			name: "type twice",
			reg: func(r *Registry) error {
				if _, err := Register[point](r, "Point", pointMembers()...); err != nil {
					return err
				}
				_, err := Register[point](r, "Point2", pointMembers()...)
				return err
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "name twice",
			reg: func(r *Registry) error {
				if _, err := Register[point](r, "Shape", pointMembers()...); err != nil {
					return err
				}
				_, err := Register[struct{}](r, "Shape")
				return err
			},
			wantErr: ErrDuplicate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg(NewRegistry())
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterCharMember(t *testing.T) {
	r := NewRegistry()
	ti, err := Register[pixel](r, "Pixel",
		Field("glyph", func(p *pixel) *rune { return &p.Glyph }, AsChar()),
		Field("lit", func(p *pixel) *bool { return &p.Lit }),
	)
	require.NoError(t, err)
	m, ok := ti.Member("glyph")
	require.True(t, ok)
	require.True(t, m.Char)
	m, ok = ti.Member("lit")
	require.True(t, ok)
	require.False(t, m.Char)
}

func TestMemberReadWrite(t *testing.T) {
	x := Field("x", func(p *point) *int32 { return &p.X })
	p := &point{X: 3, Y: 4}

	name, v, err := x.Read(p)
	require.NoError(t, err)
	require.Equal(t, "x", name)
	require.Equal(t, int32(3), v)

	require.NoError(t, x.Write(p, int32(7)))
	require.Equal(t, point{X: 7, Y: 4}, *p)

	require.ErrorIs(t, x.Write(p, "seven"), ErrBadInstance)
	require.ErrorIs(t, x.Write(p, nil), ErrBadInstance)

	_, _, err = x.Read(point{})
	require.ErrorIs(t, err, ErrBadInstance)
	_, _, err = x.Read((*point)(nil))
	require.ErrorIs(t, err, ErrBadInstance)

	f, err := x.RefValue(reflect.ValueOf(p).Elem())
	require.NoError(t, err)
	f.SetInt(11)
	require.Equal(t, int32(11), p.X)

	_, err = x.RefValue(reflect.ValueOf(*p))
	require.ErrorIs(t, err, ErrBadInstance)
}

func TestClassify(t *testing.T) {
	r := NewRegistry()
	MustRegister[point](r, "Point", pointMembers()...)
	MustRegisterEnum(r, "Color", Item("Red", color(0)))

	require.Equal(t, Primitive, r.Classify(reflect.TypeFor[float64]()))
	require.Equal(t, Primitive, r.Classify(reflect.TypeFor[string]()))
	require.Equal(t, Aggregate, r.Classify(reflect.TypeFor[point]()))
	require.Equal(t, EnumCategory, r.Classify(reflect.TypeFor[color]()))
	require.Equal(t, Unsupported, r.Classify(reflect.TypeFor[segment]()))
	require.Equal(t, Unsupported, r.Classify(reflect.TypeFor[[]int]()))
	require.Equal(t, Unsupported, r.Classify(nil))
}

func TestCheckReportsAllUnresolved(t *testing.T) {
	r := NewRegistry()
	MustRegister[segment](r, "Segment",
		Field("a", func(s *segment) *point { return &s.A }),
		Field("b", func(s *segment) *point { return &s.B }),
		Field("label", func(s *segment) *string { return &s.Label }),
	)
	err := r.Check()
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	var ute *UnsupportedTypeError
	require.True(t, errors.As(errs[1], &ute))
	require.Equal(t, "Segment.b", ute.FieldPath)

	MustRegister[point](r, "Point", pointMembers()...)
	require.NoError(t, r.Check())
}

func TestTypesInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	MustRegister[segment](r, "Segment")
	MustRegister[point](r, "Point", pointMembers()...)
	var names []string
	for _, ti := range r.Types() {
		names = append(names, ti.Name)
	}
	require.Equal(t, []string{"Segment", "Point"}, names)
}

func TestConcurrentLookup(t *testing.T) {
	r := NewRegistry()
	MustRegister[point](r, "Point", pointMembers()...)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := r.MembersOf(reflect.TypeFor[point]()); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMustRegisterPanics(t *testing.T) {
	require.Panics(t, func() {
		MustRegister[int](NewRegistry(), "Int")
	})
}
