package values

import (
	"math"
	"strconv"
)

// Number is both the integer and the real value of the language. Integer
// records whether the number has no fractional part; it is not part of the
// value's kind.
type Number struct {
	Value   float64
	Integer bool
}

// NewNumber builds a Number whose Integer flag is computed from v.
func NewNumber(v float64) Number {
	return Number{
		Value:   v,
		Integer: isWhole(v),
	}
}

func (Number) Kind() Kind { return NumberKind }
func (Number) value()     {}

func (n Number) String() string {
	if n.Integer && math.Abs(n.Value) < 1e18 {
		return strconv.FormatInt(int64(n.Value), 10)
	}

	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func isWhole(v float64) bool {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}

	return v == math.Trunc(v)
}
