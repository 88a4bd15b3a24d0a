package value

import (
	"math"
	"strconv"
)

type Number float64

func (Number) Type() Type       { return TypeNumber }
func (n Number) Value() float64 { return float64(n) }

// String formats the number without a fraction if it is integral.
func (n Number) String() string {
	f := float64(n)
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func NewNumber(value float64) Number {
	return Number(value)
}
