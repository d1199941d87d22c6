package gomap

import (
	"errors"
	"math"
	"testing"
)

func leafRoundTrip[T comparable](t *testing.T, v T, want string) {
	t.Helper()
	s, err := FormatLeaf(v)
	if err != nil {
		t.Fatalf("FormatLeaf(%T %v): %v", v, v, err)
	}
	if s != want {
		t.Errorf("FormatLeaf(%T %v) = %q, want %q", v, v, s, want)
	}
	back, err := ParseLeaf[T](s)
	if err != nil {
		t.Fatalf("ParseLeaf[%T](%q): %v", v, s, err)
	}
	if back != v {
		t.Errorf("ParseLeaf[%T](%q) = %v, want %v", v, s, back, v)
	}
}

func TestLeafIntegers(t *testing.T) {
	leafRoundTrip(t, int8(0), "0")
	leafRoundTrip(t, int8(-1), "-1")
	leafRoundTrip(t, int8(math.MinInt8), "-128")
	leafRoundTrip(t, int8(math.MaxInt8), "127")
	leafRoundTrip(t, int16(math.MinInt16), "-32768")
	leafRoundTrip(t, int16(math.MaxInt16), "32767")
	leafRoundTrip(t, int32(math.MinInt32), "-2147483648")
	leafRoundTrip(t, int32(math.MaxInt32), "2147483647")
	leafRoundTrip(t, int64(math.MinInt64), "-9223372036854775808")
	leafRoundTrip(t, int64(math.MaxInt64), "9223372036854775807")
	leafRoundTrip(t, int(-1), "-1")
	leafRoundTrip(t, uint8(0), "0")
	leafRoundTrip(t, uint8(math.MaxUint8), "255")
	leafRoundTrip(t, uint16(math.MaxUint16), "65535")
	leafRoundTrip(t, uint32(math.MaxUint32), "4294967295")
	leafRoundTrip(t, uint64(math.MaxUint64), "18446744073709551615")
}

func TestLeafFloats(t *testing.T) {
	leafRoundTrip(t, float64(0), "0")
	leafRoundTrip(t, float32(0), "0")
	leafRoundTrip(t, float64(-1), "-1")
	leafRoundTrip(t, 0.1, "0.1")
	leafRoundTrip(t, float32(0.1), "0.1")
	leafRoundTrip(t, float32(math.SmallestNonzeroFloat32), "1e-45")
	leafRoundTrip(t, float32(math.MaxFloat32), "3.4028235e+38")
	leafRoundTrip(t, float32(-math.MaxFloat32), "-3.4028235e+38")
	leafRoundTrip(t, math.SmallestNonzeroFloat64, "5e-324")
	leafRoundTrip(t, math.MaxFloat64, "1.7976931348623157e+308")
	leafRoundTrip(t, math.Inf(1), "+Inf")
	leafRoundTrip(t, math.Inf(-1), "-Inf")
	leafRoundTrip(t, float32(math.Inf(-1)), "-Inf")

	negZero := math.Copysign(0, -1)
	s, err := FormatLeaf(negZero)
	if err != nil || s != "-0" {
		t.Fatalf("FormatLeaf(-0) = %q, %v", s, err)
	}
	back, err := ParseLeaf[float64](s)
	if err != nil || back != 0 || !math.Signbit(back) {
		t.Errorf("ParseLeaf(-0) = %v, %v", back, err)
	}
	s32, _ := FormatLeaf(float32(negZero))
	back32, err := ParseLeaf[float32](s32)
	if err != nil || !math.Signbit(float64(back32)) {
		t.Errorf("float32 -0: %q -> %v, %v", s32, back32, err)
	}

	s, err = FormatLeaf(math.NaN())
	if err != nil || s != "NaN" {
		t.Fatalf("FormatLeaf(NaN) = %q, %v", s, err)
	}
	back, err = ParseLeaf[float64](s)
	if err != nil || !math.IsNaN(back) {
		t.Errorf("ParseLeaf(NaN) = %v, %v", back, err)
	}
}

func TestLeafStrings(t *testing.T) {
	leafRoundTrip(t, "", "")
	leafRoundTrip(t, "a", "a")
	leafRoundTrip(t, `a"b`, `a"b`)
	leafRoundTrip(t, "line\nbreak", "line\nbreak")
	leafRoundTrip(t, true, "true")
	leafRoundTrip(t, false, "false")
}

type celsius float64

func TestLeafNamedType(t *testing.T) {
	leafRoundTrip(t, celsius(-40.5), "-40.5")
}

func TestLeafChars(t *testing.T) {
	for _, r := range []rune{'a', '"', 'é', '日', '😀', 0} {
		s, err := FormatChar(r)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ParseChar(s)
		if err != nil || back != r {
			t.Errorf("char %U: %q -> %U, %v", r, s, back, err)
		}
	}
	if _, err := FormatChar(-1); err == nil {
		t.Error("FormatChar(-1) succeeded")
	}
	for _, s := range []string{"", "ab", "\xff"} {
		var mle *MalformedLeafError
		if _, err := ParseChar(s); !errors.As(err, &mle) {
			t.Errorf("ParseChar(%q): %v", s, err)
		}
	}
}

func TestLeafMalformed(t *testing.T) {
	tests := []struct {
		name string
		f    func() error
	}{
		{"int8 overflow", func() error { _, err := ParseLeaf[int8]("128"); return err }},
		{"uint negative", func() error { _, err := ParseLeaf[uint32]("-1"); return err }},
		{"int fraction", func() error { _, err := ParseLeaf[int64]("1.5"); return err }},
		{"int empty", func() error { _, err := ParseLeaf[int](""); return err }},
		{"float32 overflow", func() error { _, err := ParseLeaf[float32]("1e39"); return err }},
		{"float garbage", func() error { _, err := ParseLeaf[float64]("1.2.3"); return err }},
		{"bool", func() error { _, err := ParseLeaf[bool]("TRUE"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mle *MalformedLeafError
			if err := tt.f(); !errors.As(err, &mle) {
				t.Errorf("error %v is not a *MalformedLeafError", err)
			}
		})
	}
	var ue *UnmarshalError
	if _, err := ParseLeaf[[]int]("1"); !errors.As(err, &ue) {
		t.Errorf("ParseLeaf[[]int]: %v", err)
	}
	var me *MarshalError
	if _, err := FormatLeaf(struct{}{}); !errors.As(err, &me) {
		t.Errorf("FormatLeaf(struct): %v", err)
	}
	if _, err := FormatLeaf(nil); !errors.As(err, &me) {
		t.Errorf("FormatLeaf(nil): %v", err)
	}
}
