package num

import (
	"cmp"
	"math"
)

// Arithmetic returns plain float64 results. They are not re-validated and may fall
// outside Bounds.

func Add(a, b Num) float64 {
	return a.value + b.value
}

func Sub(a, b Num) float64 {
	return a.value - b.value
}

func Mul(a, b Num) float64 {
	return a.value * b.value
}

// Div never divides by zero for Nums obtained from a constructor, which are at
// least Min. The zero Num is not one of them.
func Div(a, b Num) float64 {
	return a.value / b.value
}

func FloorDiv(a, b Num) float64 {
	return math.Floor(a.value / b.value)
}

func Mod(a, b Num) float64 {
	return math.Mod(a.value, b.value)
}

func Pow(a, b Num) float64 {
	return math.Pow(a.value, b.value)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func Compare(a, b Num) int {
	return cmp.Compare(a.value, b.value)
}

func Less(a, b Num) bool {
	return a.value < b.value
}

func LessOrEqual(a, b Num) bool {
	return a.value <= b.value
}

func Greater(a, b Num) bool {
	return a.value > b.value
}

func GreaterOrEqual(a, b Num) bool {
	return a.value >= b.value
}

// Equal compares by value. Since Num holds nothing but its value, a == b is equivalent.
func Equal(a, b Num) bool {
	return a.value == b.value
}

func NotEqual(a, b Num) bool {
	return a.value != b.value
}
