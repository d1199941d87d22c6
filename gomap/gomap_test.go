package gomap

import (
	"errors"
	"math"
	"testing"

	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/internal/shapes"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/meta"
	"github.com/adk-format/adk/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const lineText = `{"identifier":"Line","a":{"identifier":"Point","x":"0","y":"0"},"b":{"identifier":"Point","x":"3","y":"4"},"label":"diag"}`

var diag = shapes.Line{A: shapes.Point{X: 0, Y: 0}, B: shapes.Point{X: 3, Y: 4}, Label: "diag"}

func TestLineText(t *testing.T) {
	d, err := ToText(diag)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lineText, string(d)); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
	var back shapes.Line
	if err := FromText(d, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(diag, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTree(t *testing.T) {
	node, err := Encode(&diag)
	if err != nil {
		t.Fatal(err)
	}
	if !node.Root || node.Identifier != "Line" {
		t.Errorf("root node = %s root=%v", node, node.Root)
	}
	if diff := cmp.Diff([]string{"a", "b", "label"}, node.Names()); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	b := node.Get("b")
	if b.Type != ir.StructType || b.Identifier != "Point" || b.Get("y").Value != "4" {
		t.Errorf("b = %s", encode.MustString(b))
	}
}

func TestEncodeField(t *testing.T) {
	node, err := EncodeField(shapes.Point{X: 1, Y: 2}, "a", false)
	if err != nil {
		t.Fatal(err)
	}
	if node.Root || node.Name != "a" {
		t.Errorf("node name=%q root=%v", node.Name, node.Root)
	}
	if got := encode.MustString(node); got != `"a":{"identifier":"Point","x":"1","y":"2"}` {
		t.Errorf("got %s", got)
	}
	leaf, err := Encode(int32(-7))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(leaf); got != `"-7"` {
		t.Errorf("root leaf %s", got)
	}
}

func pixels() []shapes.Pixel {
	return []shapes.Pixel{
		{},
		{
			Glyph: 'é', Mark: 'A', Color: shapes.Blue, Lit: true,
			Alpha: math.SmallestNonzeroFloat32, Depth: -math.MaxFloat64,
			Small: math.MinInt8, Medium: math.MaxInt16, Large: math.MinInt64,
			Count: math.MaxUint, Tiny: math.MaxUint8, Wide: math.MaxUint16, Huge: math.MaxUint64,
			Index: -1, Note: `say "hi"` + "\n\ttab \\ ",
		},
		{
			Glyph: '😀', Mark: 0xff, Color: shapes.Green,
			Alpha: -math.MaxFloat32, Depth: math.SmallestNonzeroFloat64,
			Small: math.MaxInt8, Medium: math.MinInt16, Large: math.MaxInt64,
			Note: "日本語",
		},
		{
			Alpha: float32(math.Inf(1)), Depth: math.Inf(-1), Glyph: '"',
		},
		{
			Alpha: float32(math.NaN()), Depth: math.Copysign(0, -1), Glyph: 'x',
		},
	}
}

func TestPixelRoundTrip(t *testing.T) {
	for i, px := range pixels() {
		d, err := ToText(px)
		if err != nil {
			t.Fatalf("pixel %d: %v", i, err)
		}
		var back shapes.Pixel
		if err := FromText(d, &back, Strict(true)); err != nil {
			t.Fatalf("pixel %d from %s: %v", i, d, err)
		}
		if diff := cmp.Diff(px, back, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("pixel %d mismatch (-want +got):\n%s", i, diff)
		}
		if math.Signbit(px.Depth) != math.Signbit(back.Depth) {
			t.Errorf("pixel %d lost sign of %v", i, px.Depth)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, px := range pixels() {
		a, err := ToText(px)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			b, _ := ToText(px)
			if string(a) != string(b) {
				t.Fatalf("outputs differ:\n%s\n%s", a, b)
			}
		}
		n1, _ := Encode(px)
		n2, _ := Encode(px)
		if n1.Hash() != n2.Hash() {
			t.Errorf("hashes differ for %s", a)
		}
	}
}

func TestMissingField(t *testing.T) {
	node, err := parse.Parse([]byte(`{"identifier":"Line","a":{"identifier":"Point","y":"5"},"label":"l"}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeAs[shapes.Line](node)
	if err != nil {
		t.Fatal(err)
	}
	want := shapes.Line{A: shapes.Point{Y: 5}, Label: "l"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = DecodeAs[shapes.Line](node, Strict(true))
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) || mfe.FieldPath != "a.x" {
		t.Errorf("strict decode error = %v", err)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("%v is not ErrMissingField", err)
	}
}

func TestUnknownField(t *testing.T) {
	d := []byte(`{"identifier":"Point","x":"1","y":"2","z":"3"}`)
	var p shapes.Point
	if err := FromText(d, &p); err != nil {
		t.Fatalf("lenient decode: %v", err)
	}
	if p != (shapes.Point{X: 1, Y: 2}) {
		t.Errorf("p = %+v", p)
	}
	err := FromText(d, &p, Strict(true))
	var ufe *UnknownFieldError
	if !errors.As(err, &ufe) || ufe.FieldPath != "z" {
		t.Errorf("strict decode error = %v", err)
	}
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("%v is not ErrUnknownField", err)
	}
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		into     func(*ir.Node) error
		wantPath string
		want     ir.Type
	}{
		{
			name: "leaf as aggregate",
			in:   `"diag"`,
			into: func(n *ir.Node) error {
				_, err := DecodeAs[shapes.Line](n)
				return err
			},
			want: ir.StructType,
		},
		{
			name: "structure as primitive",
			in:   `{"identifier":"Point","x":{"identifier":"Point"},"y":"0"}`,
			into: func(n *ir.Node) error {
				_, err := DecodeAs[shapes.Point](n)
				return err
			},
			wantPath: "x",
			want:     ir.LeafType,
		},
		{
			name: "leaf member as aggregate",
			in:   `{"identifier":"Line","a":"0"}`,
			into: func(n *ir.Node) error {
				_, err := DecodeAs[shapes.Line](n)
				return err
			},
			wantPath: "a",
			want:     ir.StructType,
		},
		{
			name: "structure as enum",
			in:   `{"identifier":"Pixel","color":{"identifier":"Color"}}`,
			into: func(n *ir.Node) error {
				_, err := DecodeAs[shapes.Pixel](n)
				return err
			},
			wantPath: "color",
			want:     ir.LeafType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := parse.Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			err = tt.into(node)
			var tme *TypeMismatchError
			if !errors.As(err, &tme) {
				t.Fatalf("error %v is not a *TypeMismatchError", err)
			}
			if tme.FieldPath != tt.wantPath || tme.Expected != tt.want {
				t.Errorf("path=%q expected=%s", tme.FieldPath, tme.Expected)
			}
		})
	}
}

func TestMalformedLeaf(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantPath string
	}{
		{name: "not a number", in: `{"identifier":"Line","b":{"identifier":"Point","x":"abc"}}`, wantPath: "b.x"},
		{name: "int32 overflow", in: `{"identifier":"Line","a":{"identifier":"Point","y":"2147483648"}}`, wantPath: "a.y"},
		{name: "space", in: `{"identifier":"Line","a":{"identifier":"Point","y":" 1"}}`, wantPath: "a.y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l shapes.Line
			err := FromText([]byte(tt.in), &l)
			var mle *MalformedLeafError
			if !errors.As(err, &mle) {
				t.Fatalf("error %v is not a *MalformedLeafError", err)
			}
			if mle.FieldPath != tt.wantPath {
				t.Errorf("path = %q, want %q", mle.FieldPath, tt.wantPath)
			}
		})
	}

	for _, in := range []string{
		`{"identifier":"Pixel","glyph":"ab"}`,
		`{"identifier":"Pixel","glyph":""}`,
		`{"identifier":"Pixel","mark":"日"}`,
		`{"identifier":"Pixel","lit":"yes"}`,
		`{"identifier":"Pixel","tiny":"256"}`,
		`{"identifier":"Pixel","huge":"-1"}`,
		`{"identifier":"Pixel","alpha":"1e39"}`,
	} {
		var px shapes.Pixel
		var mle *MalformedLeafError
		if err := FromText([]byte(in), &px); !errors.As(err, &mle) {
			t.Errorf("%s: error %v is not a *MalformedLeafError", in, err)
		}
	}
}

func TestEnumErrors(t *testing.T) {
	_, err := Encode(shapes.Pixel{Color: shapes.Color(7)})
	var le *meta.LookupError
	if !errors.As(err, &le) || le.Value != 7 {
		t.Fatalf("encode error = %v", err)
	}
	var me *MarshalError
	if !errors.As(err, &me) || me.FieldPath != "color" {
		t.Errorf("encode error path: %v", err)
	}

	var px shapes.Pixel
	err = FromText([]byte(`{"identifier":"Pixel","color":"Purple"}`), &px)
	if !errors.As(err, &le) || le.Name != "Purple" {
		t.Fatalf("decode error = %v", err)
	}

	if err := FromText([]byte(`{"identifier":"Pixel","color":"Color.Green"}`), &px); err != nil || px.Color != shapes.Green {
		t.Errorf("qualified item: %v %v", err, px.Color)
	}
}

func TestInvalidChar(t *testing.T) {
	_, err := Encode(shapes.Pixel{Glyph: 0xD800})
	var me *MarshalError
	if !errors.As(err, &me) || me.FieldPath != "glyph" {
		t.Errorf("error = %v", err)
	}
}

type unregistered struct{ N int }

type outer struct {
	In unregistered
}

func TestUnsupported(t *testing.T) {
	for _, v := range []any{nil, unregistered{}, []int{1}, map[string]int{}, (*shapes.Line)(nil), new(*shapes.Line)} {
		_, err := Encode(v)
		var ute *meta.UnsupportedTypeError
		if !errors.As(err, &ute) {
			t.Errorf("Encode(%T): error %v", v, err)
		}
		if !errors.Is(err, meta.ErrNotReflected) {
			t.Errorf("Encode(%T): %v is not ErrNotReflected", v, err)
		}
	}

	r := meta.NewRegistry()
	meta.MustRegister[outer](r, "Outer",
		meta.Field("in", func(o *outer) *unregistered { return &o.In }))
	_, err := Encode(outer{}, WithRegistry(r))
	var ute *meta.UnsupportedTypeError
	if !errors.As(err, &ute) || ute.FieldPath != "in" {
		t.Errorf("nested unregistered: %v", err)
	}
	node, _ := parse.Parse([]byte(`{"identifier":"Outer","in":{"identifier":"X"}}`))
	var o outer
	err = Decode(node, &o, WithRegistry(r))
	if !errors.As(err, &ute) || ute.FieldPath != "in" {
		t.Errorf("nested unregistered decode: %v", err)
	}

	// a leaf member missing from the tree never reaches the unregistered type
	node, _ = parse.Parse([]byte(`{"identifier":"Outer"}`))
	if err := Decode(node, &o, WithRegistry(r)); err != nil {
		t.Errorf("missing unregistered member: %v", err)
	}
}

func TestPrivateRegistry(t *testing.T) {
	r := meta.NewRegistry()
	meta.MustRegister[shapes.Point](r, "P",
		meta.Field("horizontal", func(p *shapes.Point) *int32 { return &p.X }))
	d, err := ToText(shapes.Point{X: 9, Y: 9}, WithRegistry(r))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"identifier":"P","horizontal":"9"}` {
		t.Errorf("got %s", d)
	}
	var p shapes.Point
	if err := FromText(d, &p, WithRegistry(r)); err != nil {
		t.Fatal(err)
	}
	if p != (shapes.Point{X: 9}) {
		t.Errorf("p = %+v", p)
	}
	if err := FromText(d, &p); err != nil {
		t.Errorf("default registry ignores foreign identifier: %v", err)
	}
}

func TestDecodeAllOrNothing(t *testing.T) {
	l := diag
	err := FromText([]byte(`{"identifier":"Line","a":{"identifier":"Point","x":"1"},"b":"oops"}`), &l)
	if err == nil {
		t.Fatal("expected error")
	}
	if diff := cmp.Diff(diag, l); diff != "" {
		t.Errorf("destination modified on error (-want +got):\n%s", diff)
	}
}

func TestDecodeOverwrites(t *testing.T) {
	l := diag
	if err := FromText([]byte(`{"identifier":"Line","label":"new"}`), &l); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shapes.Line{Label: "new"}, l); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeDestination(t *testing.T) {
	node, _ := Encode(diag)
	var l shapes.Line
	for _, dst := range []any{nil, l, (*shapes.Line)(nil)} {
		var ue *UnmarshalError
		if err := Decode(node, dst); !errors.As(err, &ue) {
			t.Errorf("Decode into %T: %v", dst, err)
		}
	}
	bad := &ir.Node{Type: ir.StructType, Identifier: "Line", Children: []*ir.Node{ir.FromLeaf("label", "a"), ir.FromLeaf("label", "b")}}
	if err := Decode(bad, &l); !errors.Is(err, ir.ErrDuplicateChild) {
		t.Errorf("invalid tree: %v", err)
	}
}

func TestIdentifierMismatchIgnored(t *testing.T) {
	var p shapes.Point
	if err := FromText([]byte(`{"identifier":"Vector","x":"1","y":"2"}`), &p); err != nil {
		t.Fatal(err)
	}
	if p != (shapes.Point{X: 1, Y: 2}) {
		t.Errorf("p = %+v", p)
	}
}

func TestQuoteEscapingGap(t *testing.T) {
	l := shapes.Line{Label: `a "quoted" label`}
	d, err := ToText(l, WithEncodeOptions(encode.EncodeEscape(false)))
	if err != nil {
		t.Fatal(err)
	}
	var back shapes.Line
	if err := FromText(d, &back); !errors.Is(err, parse.ErrParse) {
		t.Errorf("verbatim quotes parsed: %v", err)
	}

	d, err = ToText(l)
	if err != nil {
		t.Fatal(err)
	}
	if err := FromText(d, &back); err != nil || back != l {
		t.Errorf("escaped quotes: %v %+v", err, back)
	}
}

func TestTextOptions(t *testing.T) {
	d, err := ToText(diag, WithEncodeOptions(encode.EncodeIndent(2)))
	if err != nil {
		t.Fatal(err)
	}
	var back shapes.Line
	if err := FromText(d, &back, WithParseOptions(parse.ParseText())); err != nil {
		t.Fatal(err)
	}
	if back != diag {
		t.Errorf("back = %+v", back)
	}
	if n := len(ToEncodeOptions(WithRegistry(meta.Default), WithEncodeOptions(encode.EncodeIndent(2), encode.EncodeNewline(true)))); n != 2 {
		t.Errorf("ToEncodeOptions kept %d options", n)
	}
	if n := len(ToParseOptions(Strict(true), WithParseOptions(parse.ParseJSON()))); n != 1 {
		t.Errorf("ToParseOptions kept %d options", n)
	}
}
