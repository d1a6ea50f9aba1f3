package normalize

import (
	"math"
	"testing"

	"github.com/amishk599/isntthatodd/internal/model"
)

func TestParse_Integers(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42", 42},
		{"-17", -17},
		{"0", 0},
		{"+8", 8},
		{"10.0", 10},
		{"-0.0", 0},
		{"1e3", 1000},
		{" 12 ", 12},
		{"1_000", 1000},
		{"-1_000_000", -1000000},
		{"1_0.0_0", 10},
	}
	for _, tt := range tests {
		got := Parse(tt.in)
		v, ok := got.Int()
		if !ok {
			t.Errorf("Parse(%q) kind = %v, want integer", tt.in, got.Kind())
			continue
		}
		if v != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, v, tt.want)
		}
	}
}

func TestParse_Floats(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.14", 3.14},
		{"-2.5", -2.5},
		{"10.5", 10.5},
		{"1e-7", 1e-7},
		{"1e19", 1e19}, // whole but beyond int64
		{"1_000.5", 1000.5},
		{"2.5e-0_1", 0.25},
	}
	for _, tt := range tests {
		got := Parse(tt.in)
		v, ok := got.Float()
		if !ok {
			t.Errorf("Parse(%q) kind = %v, want float", tt.in, got.Kind())
			continue
		}
		if v != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, v, tt.want)
		}
	}
}

func TestParse_SpecialFloats(t *testing.T) {
	for _, in := range []string{"inf", "-Infinity", "1e400"} {
		v, ok := Parse(in).Float()
		if !ok || !math.IsInf(v, 0) {
			t.Errorf("Parse(%q) = %v (float=%v), want ±inf", in, v, ok)
		}
	}
	v, ok := Parse("nan").Float()
	if !ok || !math.IsNaN(v) {
		t.Errorf("Parse(nan) = %v (float=%v), want NaN", v, ok)
	}
}

func TestParse_RawStrings(t *testing.T) {
	for _, in := range []string{`"17"`, "hello", "42abc", "", "   ", "0x10", "0x1p4", "4 2", "1__000", "_1", "1_", "1_.5", "1._5", "0x1_0"} {
		got := Parse(in)
		raw, ok := got.Raw()
		if !ok {
			t.Errorf("Parse(%q) kind = %v, want string", in, got.Kind())
			continue
		}
		if raw != in {
			t.Errorf("Parse(%q) raw = %q, want input unchanged", in, raw)
		}
	}
}

func TestParse_RenderedText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"10.0", "10"},
		{"3.14", "3.14"},
		{"1234567.5", "1234567.5"},
		{`"17"`, `"17"`},
		{"inf", "inf"},
	}
	for _, tt := range tests {
		if got := Parse(tt.in).String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_ZeroUnderflowIsInteger(t *testing.T) {
	got := Parse("1e-400")
	if got != model.IntegerNumber(0) {
		t.Errorf("Parse(1e-400) = %#v, want Integer(0)", got)
	}
}
