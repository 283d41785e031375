// Package num provides Num, a number that can only be constructed from a finite value
// in the closed range [1, 10].
//
// A Num coerces to a plain float64 with Float64, and the arithmetic and comparison
// helpers in this package operate on that value. Their results are ordinary numbers:
// only construction inputs are range checked, so Add(MustNew(7), MustNew(8)) is 15.
package num

import (
	"log/slog"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const (
	Min = 1
	Max = 10
)

// literalRe is the text Parse accepts: an optional sign, decimal digits with an
// optional fraction, and an optional exponent. Go-only forms such as hex floats
// and '_' digit separators are not numbers here.
var literalRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Bounds is the set of values a Num may hold.
var Bounds = NewClosedInterval[float64](Min, Max)

// Num is an immutable number inside Bounds. The zero Num is not a valid instance;
// obtain one from New, Parse, FromInt or FromFloat.
type Num struct {
	value float64
}

// New validates v and wraps it.
//
// v must be one of Go's integer or float kinds (named types included). Anything else,
// NaN and ±Inf fail with KindNotANumber; finite numbers outside Bounds fail with
// KindOutOfRange. Strings are rejected as the wrong type; use Parse for text.
func New(v any) (Num, error) {
	f, ok := toFloat(v)
	if !ok {
		return Num{}, reject(KindNotANumber, v)
	}
	return validate(f, v)
}

// MustNew is like New but panics on error.
func MustNew(v any) Num {
	n, err := New(v)
	if err != nil {
		panic(err)
	}
	return n
}

func FromInt(v int) (Num, error) {
	return validate(float64(v), v)
}

func FromFloat(v float64) (Num, error) {
	return validate(v, v)
}

// Parse reads a decimal or scientific literal such as "5", " 3.5 " or "5e0".
// Surrounding whitespace is ignored. Text that is not a finite number fails with
// KindNotANumber.
func Parse(s string) (Num, error) {
	text := strings.TrimSpace(s)
	if !literalRe.MatchString(text) {
		return Num{}, reject(KindNotANumber, s)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Num{}, reject(KindNotANumber, s)
	}
	return validate(f, s)
}

// IsValid reports whether New(v) would succeed.
func IsValid(v any) bool {
	_, err := New(v)
	return err == nil
}

func validate(f float64, input any) (Num, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Num{}, reject(KindNotANumber, input)
	}
	if !Bounds.Contains(f) {
		return Num{}, reject(KindOutOfRange, input)
	}
	return Num{value: f}, nil
}

func reject(kind Kind, input any) *Error {
	slog.Debug("num rejected", "input", input, "kind", kind)
	return &Error{Kind: kind, Input: input}
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case nil, bool, string, Num:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Float64 returns the wrapped value.
func (n Num) Float64() float64 {
	return n.value
}

// String returns the shortest decimal form of the value: "5", "3.5", never "5.0".
func (n Num) String() string {
	return FormatFloat(n.value)
}

func (n Num) GoString() string {
	return "num.Num(" + n.String() + ")"
}

// FormatFloat renders f the way Num.String does. It is used for the plain results
// of arithmetic so they print consistently with the operands.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
