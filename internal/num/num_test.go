package num_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vipcxj/num/internal/num"
)

type score int

func TestNew_AcceptsValuesInBounds(t *testing.T) {
	cases := []any{
		1, 10, 5, int8(2), int16(3), int32(4), int64(6), uint(7), uint8(8), uint16(9), uint32(1), uint64(10),
		float32(2.5), 3.5, 1.0, 10.0, 9.999,
	}
	for _, v := range cases {
		t.Run(fmt.Sprintf("%T(%v)", v, v), func(t *testing.T) {
			n, err := num.New(v)
			require.NoError(t, err)
			assert.InDelta(t, v, n.Float64(), 1e-6)
		})
	}
}

func TestNew_NamedNumericType(t *testing.T) {
	n, err := num.New(score(4))
	require.NoError(t, err)
	assert.Equal(t, 4.0, n.Float64())

	_, err = num.New(score(12))
	assert.ErrorIs(t, err, num.ErrOutOfRange)
}

func TestNew_Boundaries(t *testing.T) {
	test := require.New(t)

	lo, err := num.New(1)
	test.NoError(err)
	test.Equal(1.0, lo.Float64())

	hi, err := num.New(10)
	test.NoError(err, "10 is the inclusive upper bound")
	test.Equal(10.0, hi.Float64())
	test.Equal("10", hi.String())

	_, err = num.New(math.Nextafter(1, 0))
	test.ErrorIs(err, num.ErrOutOfRange)
	_, err = num.New(10.000001)
	test.ErrorIs(err, num.ErrOutOfRange)
}

func TestNew_OutOfRange(t *testing.T) {
	for _, v := range []any{0, -5, 11, 20, 0.5, -0.0, 100.25, uint8(255), math.MaxInt64} {
		_, err := num.New(v)
		require.Error(t, err, "input %v", v)
		assert.ErrorIs(t, err, num.ErrOutOfRange)
		assert.EqualError(t, err, "Out of range")
	}
}

func TestNew_NotANumber(t *testing.T) {
	for _, v := range []any{"abc", "5", "test", nil, true, struct{}{}, []int{5}, math.NaN(), math.Inf(1), math.Inf(-1), num.MustNew(5)} {
		_, err := num.New(v)
		require.Error(t, err, "input %#v", v)
		assert.ErrorIs(t, err, num.ErrNotANumber)
		assert.EqualError(t, err, "Not a Number")
	}
}

func TestError_KindAndInput(t *testing.T) {
	_, err := num.New(0)

	var nerr *num.Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, num.KindOutOfRange, nerr.Kind)
	assert.Equal(t, 0, nerr.Input)

	kind, ok := num.KindOf(fmt.Errorf("wrapped: %w", err))
	assert.True(t, ok)
	assert.Equal(t, num.KindOutOfRange, kind)
	assert.NotErrorIs(t, err, num.ErrNotANumber)

	_, ok = num.KindOf(errors.New("other"))
	assert.False(t, ok)
}

func TestKind_Strings(t *testing.T) {
	assert.Equal(t, "NotANumber", num.KindNotANumber.String())
	assert.Equal(t, "OutOfRange", num.KindOutOfRange.String())
	assert.Equal(t, "Not a Number", num.KindNotANumber.Message())
	assert.Equal(t, "Out of range", num.KindOutOfRange.Message())

	k, err := num.KindString("outofrange")
	require.NoError(t, err)
	assert.Equal(t, num.KindOutOfRange, k)
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		kind num.Kind
		ok   bool
	}{
		{"5", 5, 0, true},
		{"3.0", 3, 0, true},
		{"  5  ", 5, 0, true},
		{"5e0", 5, 0, true},
		{"10", 10, 0, true},
		{"2.25", 2.25, 0, true},
		{"0", 0, num.KindOutOfRange, false},
		{"-5", 0, num.KindOutOfRange, false},
		{"11", 0, num.KindOutOfRange, false},
		{"abc", 0, num.KindNotANumber, false},
		{"", 0, num.KindNotANumber, false},
		{"NaN", 0, num.KindNotANumber, false},
		{"Inf", 0, num.KindNotANumber, false},
		{"1e400", 0, num.KindNotANumber, false},
		{"0x1p3", 0, num.KindNotANumber, false},
		{"0x1.4p3", 0, num.KindNotANumber, false},
		{"1_0", 0, num.KindNotANumber, false},
		{"0x_5", 0, num.KindNotANumber, false},
		{"5.", 5, 0, true},
		{".5e1", 5, 0, true},
		{"+7", 7, 0, true},
		{"7E-0", 7, 0, true},
		{"1e", 0, num.KindNotANumber, false},
		{"- 5", 0, num.KindNotANumber, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := num.Parse(tc.in)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.want, n.Float64())
				return
			}
			kind, ok := num.KindOf(err)
			require.True(t, ok, "want a num error, got %v", err)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestFromIntFromFloat(t *testing.T) {
	n, err := num.FromInt(8)
	require.NoError(t, err)
	assert.Equal(t, "8", n.String())

	n, err = num.FromFloat(9.0)
	require.NoError(t, err)
	assert.Equal(t, "9", n.String())

	_, err = num.FromInt(0)
	assert.ErrorIs(t, err, num.ErrOutOfRange)
	_, err = num.FromFloat(math.NaN())
	assert.ErrorIs(t, err, num.ErrNotANumber)
}

func TestIsValid(t *testing.T) {
	assert.True(t, num.IsValid(5))
	assert.False(t, num.IsValid(0))
	assert.False(t, num.IsValid(11))
	assert.False(t, num.IsValid("5"))
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { num.MustNew(0) })
	assert.NotPanics(t, func() { num.MustNew(4) })
}

func TestString(t *testing.T) {
	test := require.New(t)
	test.Equal("5", num.MustNew(5).String())
	test.Equal("3.5", num.MustNew(3.5).String())
	test.Equal("1.125", num.MustNew(1.125).String())
	test.Equal("10", num.MustNew(10.0).String())
	test.Equal("7", fmt.Sprint(num.MustNew(7)))
	test.Equal("num.Num(2.5)", fmt.Sprintf("%#v", num.MustNew(2.5)))
}

func TestArithmetic(t *testing.T) {
	test := require.New(t)
	three, four := num.MustNew(3), num.MustNew(4)

	test.Equal(7.0, num.Add(three, four))
	test.Equal(-1.0, num.Sub(three, four))
	test.Equal(12.0, num.Mul(three, four))
	test.Equal(0.75, num.Div(three, four))
	test.True(math.IsInf(num.Div(three, num.Num{}), 1), "the zero Num is not a constructed value")
	test.Equal(2.0, num.FloorDiv(num.MustNew(7), num.MustNew(3)))
	test.Equal(1.0, num.Mod(num.MustNew(7), num.MustNew(3)))
	test.Equal(8.0, num.Pow(num.MustNew(2), three))

	// results are plain numbers, not re-validated
	test.Equal(20.0, num.Add(num.MustNew(10), num.MustNew(10)))
	test.Equal(100.0, num.Mul(num.MustNew(10), num.MustNew(10)))
}

func TestComparison(t *testing.T) {
	test := require.New(t)
	three, four := num.MustNew(3), num.MustNew(4)

	test.True(num.Less(three, four))
	test.False(num.Greater(three, four))
	test.True(num.LessOrEqual(three, four))
	test.True(num.LessOrEqual(three, three))
	test.False(num.GreaterOrEqual(three, four))
	test.True(num.GreaterOrEqual(four, four))
	test.False(num.Equal(three, four))
	test.True(num.NotEqual(three, four))
	test.Equal(-1, num.Compare(three, four))
	test.Equal(1, num.Compare(four, three))
	test.Equal(0, num.Compare(four, num.MustNew(4.0)))
}

func TestEquality_ByValue(t *testing.T) {
	a, b := num.MustNew(6), num.MustNew(6.0)
	assert.True(t, num.Equal(a, b))
	assert.True(t, a == b)
	assert.False(t, num.NotEqual(a, b))
	assert.False(t, num.MustNew(6) == num.MustNew(7))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, "[1,10]", num.Bounds.String())
	lo, ok := num.Bounds.Lowest()
	assert.True(t, ok)
	assert.Equal(t, float64(num.Min), lo)
	hi, ok := num.Bounds.Highest()
	assert.True(t, ok)
	assert.Equal(t, float64(num.Max), hi)
}
