package model

import (
	"math"
	"strconv"
)

// NumberKind tags which variant a Number holds.
type NumberKind int

const (
	KindInteger NumberKind = iota
	KindFloat
	KindRaw
)

func (k NumberKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindRaw:
		return "string"
	default:
		return "unknown"
	}
}

// Number is the normalized form of a single CLI argument: an integer, a float,
// or the raw text when it did not parse as a numeric literal.
// The zero value is Integer(0).
type Number struct {
	kind NumberKind
	i    int64
	f    float64
	raw  string
}

func IntegerNumber(v int64) Number { return Number{kind: KindInteger, i: v} }
func FloatNumber(v float64) Number { return Number{kind: KindFloat, f: v} }
func RawNumber(text string) Number { return Number{kind: KindRaw, raw: text} }
func (n Number) Kind() NumberKind { return n.kind }

// Int returns the integer value; ok is false for the other variants.
func (n Number) Int() (v int64, ok bool) {
	return n.i, n.kind == KindInteger
}

// Float returns the float value; ok is false for the other variants.
func (n Number) Float() (v float64, ok bool) {
	return n.f, n.kind == KindFloat
}

// Raw returns the unparsed text; ok is false for the numeric variants.
func (n Number) Raw() (text string, ok bool) {
	return n.raw, n.kind == KindRaw
}

// String renders the value as shown to the user and sent to the model.
func (n Number) String() string {
	switch n.kind {
	case KindFloat:
		return formatFloat(n.f)
	case KindRaw:
		return n.raw
	default:
		return strconv.FormatInt(n.i, 10)
	}
}

// formatFloat prints the shortest round-trip decimal, switching to exponent
// notation only outside [1e-4, 1e16).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
