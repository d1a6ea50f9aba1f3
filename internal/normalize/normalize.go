// Package normalize turns a raw command-line argument into a model.Number.
package normalize

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/amishk599/isntthatodd/internal/model"
)

// int64 bounds as float64; 2^63 itself is out of range.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// Parse converts raw into an Integer when it is a numeric literal with no
// fractional part, a Float when it has one, and otherwise keeps the original
// text untouched as a RawString. It never fails.
func Parse(raw string) model.Number {
	s := strings.TrimSpace(raw)

	// ParseFloat accepts hex floats, which are not decimal literals.
	if strings.ContainsAny(s, "xX") {
		return model.RawNumber(raw)
	}
	s, ok := stripDigitSeparators(s)
	if !ok {
		return model.RawNumber(raw)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return model.RawNumber(raw)
	}

	// Out-of-range literals have already been clamped to ±Inf or ±0.
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return model.FloatNumber(f)
	}
	if f == math.Trunc(f) && f >= minInt64Float && f < maxInt64Float {
		return model.IntegerNumber(int64(f))
	}
	return model.FloatNumber(f)
}

// stripDigitSeparators removes underscores that sit between two digits
// ("1_000"). Any other underscore makes the literal invalid.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRangeError(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}
